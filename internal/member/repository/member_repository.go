package repository

import (
	"errors"
	"time"

	memberdomain "gympass-backend/internal/member/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MemberRepository defines the interface for member registry access
type MemberRepository interface {
	// FindByUserID finds the non-deleted member linked to a login account
	FindByUserID(userID string) (*memberdomain.Member, error)

	// FindByID finds a member by its ID
	FindByID(id string) (*memberdomain.Member, error)

	// Create creates a new member
	Create(member *memberdomain.Member) error
}

// memberRepository implements MemberRepository interface
type memberRepository struct {
	db *gorm.DB
}

// NewMemberRepository creates a new instance of memberRepository
func NewMemberRepository(db *gorm.DB) MemberRepository {
	return &memberRepository{
		db: db,
	}
}

func (r *memberRepository) FindByUserID(userID string) (*memberdomain.Member, error) {
	var member memberdomain.Member
	err := r.db.Where("user_id = ?", userID).First(&member).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &member, nil
}

func (r *memberRepository) FindByID(id string) (*memberdomain.Member, error) {
	var member memberdomain.Member
	err := r.db.Where("id = ?", id).First(&member).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &member, nil
}

func (r *memberRepository) Create(member *memberdomain.Member) error {
	if member.ID == "" {
		member.ID = uuid.New().String()
	}
	member.CreatedAt = time.Now()
	member.UpdatedAt = time.Now()
	return r.db.Create(member).Error
}
