package repository

import (
	"errors"
	"time"

	checkindomain "gympass-backend/internal/checkin/domain"
	memberrepo "gympass-backend/internal/member/repository"

	"gorm.io/gorm"
)

var (
	// ErrTokenAlreadyUsed is returned by Consume when the token's jti is
	// already in the ledger, including when a concurrent validation won
	// the insert race.
	ErrTokenAlreadyUsed = errors.New("token already used")

	// ErrNoRemainingCredits is returned by Consume when the conditional
	// credit decrement hits no row, i.e. the pool was exhausted between the
	// entitlement check and the commit.
	ErrNoRemainingCredits = errors.New("no remaining credits")
)

// LedgerRepository defines the interface for the replay ledger
type LedgerRepository interface {
	// IsUsed reports whether a jti has already been consumed
	IsUsed(jti string) (bool, error)

	// Consume records the token as used and, for credit-based memberships
	// (creditMembershipID non-empty), decrements the credit pool, both in
	// one transaction. The insert relies on the jti primary key: a unique
	// violation means a concurrent validation already committed, and is
	// surfaced as ErrTokenAlreadyUsed. A failed decrement rolls the replay
	// record back and surfaces ErrNoRemainingCredits.
	Consume(use *checkindomain.CheckinTokenUse, creditMembershipID string) error

	// PurgeExpired deletes replay records whose token expired before the
	// cutoff. Safe at any time: expired tokens are rejected by the time
	// check regardless of ledger state.
	PurgeExpired(before time.Time) (int64, error)
}

// ledgerRepository implements LedgerRepository interface
type ledgerRepository struct {
	db             *gorm.DB
	membershipRepo memberrepo.MembershipRepository
}

// NewLedgerRepository creates a new instance of ledgerRepository
func NewLedgerRepository(db *gorm.DB, membershipRepo memberrepo.MembershipRepository) LedgerRepository {
	return &ledgerRepository{
		db:             db,
		membershipRepo: membershipRepo,
	}
}

func (r *ledgerRepository) IsUsed(jti string) (bool, error) {
	var use checkindomain.CheckinTokenUse
	err := r.db.Where("jti = ?", jti).First(&use).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (r *ledgerRepository) Consume(use *checkindomain.CheckinTokenUse, creditMembershipID string) error {
	if use.UsedAt.IsZero() {
		use.UsedAt = time.Now()
	}
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(use).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return ErrTokenAlreadyUsed
			}
			return err
		}
		if creditMembershipID != "" {
			ok, err := r.membershipRepo.DecrementCredits(tx, creditMembershipID)
			if err != nil {
				return err
			}
			if !ok {
				return ErrNoRemainingCredits
			}
		}
		return nil
	})
}

func (r *ledgerRepository) PurgeExpired(before time.Time) (int64, error) {
	res := r.db.Where("expires_at < ?", before).Delete(&checkindomain.CheckinTokenUse{})
	if res.Error != nil {
		return 0, res.Error
	}
	return res.RowsAffected, nil
}
