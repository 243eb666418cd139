package repository

import (
	"time"

	checkindomain "gympass-backend/internal/checkin/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CheckinRepository defines the interface for the append-only check-in log
type CheckinRepository interface {
	// Log appends one audit row. Rows are immutable once written.
	Log(entry *checkindomain.Checkin) error

	// CountAllowedSince counts the member's allowed check-ins scanned at or
	// after the given cutoff (the daily-limit query)
	CountAllowedSince(memberID string, since time.Time) (int64, error)

	// FindRecentByMember returns the member's latest check-ins, newest first
	FindRecentByMember(memberID string, limit int) ([]*checkindomain.Checkin, error)
}

// checkinRepository implements CheckinRepository interface
type checkinRepository struct {
	db *gorm.DB
}

// NewCheckinRepository creates a new instance of checkinRepository
func NewCheckinRepository(db *gorm.DB) CheckinRepository {
	return &checkinRepository{
		db: db,
	}
}

func (r *checkinRepository) Log(entry *checkindomain.Checkin) error {
	if entry.ID == "" {
		entry.ID = uuid.New().String()
	}
	if entry.ScannedAt.IsZero() {
		entry.ScannedAt = time.Now()
	}
	entry.CreatedAt = time.Now()
	return r.db.Create(entry).Error
}

func (r *checkinRepository) CountAllowedSince(memberID string, since time.Time) (int64, error) {
	var count int64
	err := r.db.Model(&checkindomain.Checkin{}).
		Where("member_id = ? AND result = ? AND scanned_at >= ?", memberID, checkindomain.ResultAllowed, since).
		Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}

func (r *checkinRepository) FindRecentByMember(memberID string, limit int) ([]*checkindomain.Checkin, error) {
	var entries []*checkindomain.Checkin
	err := r.db.
		Where("member_id = ?", memberID).
		Order("scanned_at DESC").
		Limit(limit).
		Find(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}
