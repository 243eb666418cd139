package repository

import (
	"errors"

	memberdomain "gympass-backend/internal/member/domain"

	"gorm.io/gorm"
)

// PlanRepository defines the interface for plan access
type PlanRepository interface {
	FindByID(id string) (*memberdomain.Plan, error)
}

// planRepository implements PlanRepository interface
type planRepository struct {
	db *gorm.DB
}

// NewPlanRepository creates a new instance of planRepository
func NewPlanRepository(db *gorm.DB) PlanRepository {
	return &planRepository{
		db: db,
	}
}

func (r *planRepository) FindByID(id string) (*memberdomain.Plan, error) {
	var plan memberdomain.Plan
	err := r.db.Where("id = ?", id).First(&plan).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &plan, nil
}
