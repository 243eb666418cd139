package repository

import (
	"errors"
	"time"

	memberdomain "gympass-backend/internal/member/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MembershipRepository defines the interface for membership access
type MembershipRepository interface {
	// FindCurrentForMember returns the membership that entitles the member
	// to access right now: status active, end_at >= now. When several
	// qualify the one with the latest end_at wins.
	FindCurrentForMember(memberID string, now time.Time) (*memberdomain.Membership, error)

	// FindActiveByID finds a membership by ID, requiring status active.
	// Returns nil when the row is missing or in any other status.
	FindActiveByID(id string) (*memberdomain.Membership, error)

	// DecrementCredits atomically decrements remaining_credits where it is
	// still positive. Returns true when a row was hit; false means the
	// credit pool was already exhausted (or the membership is time-based).
	// Runs on tx so callers can tie it to other writes.
	DecrementCredits(tx *gorm.DB, id string) (bool, error)

	// Create creates a new membership
	Create(membership *memberdomain.Membership) error
}

// membershipRepository implements MembershipRepository interface
type membershipRepository struct {
	db *gorm.DB
}

// NewMembershipRepository creates a new instance of membershipRepository
func NewMembershipRepository(db *gorm.DB) MembershipRepository {
	return &membershipRepository{
		db: db,
	}
}

func (r *membershipRepository) FindCurrentForMember(memberID string, now time.Time) (*memberdomain.Membership, error) {
	var membership memberdomain.Membership
	err := r.db.
		Where("member_id = ? AND status = ? AND end_at >= ?", memberID, memberdomain.MembershipActive, now).
		Order("end_at DESC").
		First(&membership).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &membership, nil
}

func (r *membershipRepository) FindActiveByID(id string) (*memberdomain.Membership, error) {
	var membership memberdomain.Membership
	err := r.db.
		Where("id = ? AND status = ?", id, memberdomain.MembershipActive).
		First(&membership).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &membership, nil
}

func (r *membershipRepository) DecrementCredits(tx *gorm.DB, id string) (bool, error) {
	res := tx.Model(&memberdomain.Membership{}).
		Where("id = ? AND remaining_credits > 0", id).
		Updates(map[string]interface{}{
			"remaining_credits": gorm.Expr("remaining_credits - 1"),
			"updated_at":        time.Now(),
		})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *membershipRepository) Create(membership *memberdomain.Membership) error {
	if membership.ID == "" {
		membership.ID = uuid.New().String()
	}
	membership.CreatedAt = time.Now()
	membership.UpdatedAt = time.Now()
	return r.db.Create(membership).Error
}
