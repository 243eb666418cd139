package domain

import (
	"time"

	"gorm.io/gorm"
)

type MembershipStatus string

const (
	MembershipActive    MembershipStatus = "active"
	MembershipFrozen    MembershipStatus = "frozen"
	MembershipCancelled MembershipStatus = "cancelled"
	MembershipExpired   MembershipStatus = "expired"
)

type PlanType string

const (
	PlanDayPass   PlanType = "day_pass"
	PlanEntryPack PlanType = "entry_pack"
	PlanMonthly   PlanType = "monthly"
	PlanQuarterly PlanType = "quarterly"
	PlanYearly    PlanType = "yearly"
)

// Member is the gym member record. UserID links it to the login account of
// the surrounding session layer; members without an account cannot request
// check-in tokens but can still be checked in manually by staff.
type Member struct {
	ID        string         `json:"id" gorm:"primaryKey"`
	UserID    *string        `json:"user_id,omitempty" gorm:"index"`
	FullName  string         `json:"full_name"`
	Email     string         `json:"email"`
	Phone     string         `json:"phone"`
	IsActive  bool           `json:"is_active"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}

type Plan struct {
	ID                string    `json:"id" gorm:"primaryKey"`
	Name              string    `json:"name"`
	Type              PlanType  `json:"type"`
	Price             float64   `json:"price"`
	ValidityDays      int       `json:"validity_days"`
	DailyCheckinLimit int       `json:"daily_checkin_limit"`
	TotalCredits      *int      `json:"total_credits,omitempty"`
	IsActive          bool      `json:"is_active"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// Membership ties a member to a plan for a time window.
// RemainingCredits is nil for time-based plans (unlimited entries) and a
// non-negative counter for credit-based plans.
type Membership struct {
	ID               string           `json:"id" gorm:"primaryKey"`
	MemberID         string           `json:"member_id" gorm:"index"`
	PlanID           string           `json:"plan_id"`
	Status           MembershipStatus `json:"status"`
	StartAt          time.Time        `json:"start_at"`
	EndAt            time.Time        `json:"end_at"`
	RemainingCredits *int             `json:"remaining_credits,omitempty"`
	CreatedAt        time.Time        `json:"created_at"`
	UpdatedAt        time.Time        `json:"updated_at"`
}
