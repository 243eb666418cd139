package domain

import "time"

type CheckinResult string

const (
	ResultAllowed CheckinResult = "allowed"
	ResultDenied  CheckinResult = "denied"
)

// Checkin is one row of the append-only audit trail. Every validation
// attempt that carries a parseable token writes exactly one row, allowed or
// denied. Rows are never updated.
type Checkin struct {
	ID        string        `json:"id" gorm:"primaryKey"`
	MemberID  string        `json:"member_id" gorm:"index"`
	DeviceID  string        `json:"device_id"`
	ScannedAt time.Time     `json:"scanned_at" gorm:"index"`
	Result    CheckinResult `json:"result"`
	Reason    *string       `json:"reason,omitempty"`
	TokenJTI  string        `json:"token_jti"`
	CreatedAt time.Time     `json:"created_at"`
}

// CheckinTokenUse is the replay record: one row per consumed token, keyed by
// the token's jti. The primary key is the replay guard: a second insert for
// the same jti fails with a unique violation, which the ledger reports as
// "already used". Rows past their token's expiry are garbage.
type CheckinTokenUse struct {
	JTI       string    `json:"jti" gorm:"primaryKey"`
	MemberID  string    `json:"member_id"`
	DeviceID  string    `json:"device_id"`
	UsedAt    time.Time `json:"used_at"`
	ExpiresAt time.Time `json:"expires_at" gorm:"index"`
}
