package usecase

import (
	"errors"

	checkindomain "gympass-backend/internal/checkin/domain"
	"gympass-backend/internal/checkin/dto"
)

var (
	// ErrMemberNotFound means no non-deleted member is linked to the
	// authenticated account
	ErrMemberNotFound = errors.New("member not found")

	// ErrNoEntitlement means the member has no active membership valid now
	ErrNoEntitlement = errors.New("no active membership found")

	// ErrNoCredits means the membership is credit-based and exhausted;
	// no token is minted
	ErrNoCredits = errors.New("no remaining credits")

	// ErrInvalidToken covers malformed tokens, bad signatures and tokens
	// outside their validity window. No audit row is written for these:
	// there is no trustworthy subject to attribute the attempt to.
	ErrInvalidToken = errors.New("invalid or expired token")
)

// CheckinUsecase defines the check-in token protocol: issuing a short-lived
// single-use token for an authenticated member, and validating a scanned
// token for a kiosk device.
type CheckinUsecase interface {
	// IssueToken resolves the member's current entitlement and mints a
	// signed, time-boxed, single-use token. Minting has no persistent side
	// effects; all enforcement happens at validation.
	IssueToken(userID string) (*dto.IssueTokenResponse, error)

	// ValidateToken authenticates a scanned token, enforces one-time use,
	// re-checks entitlement and the daily limit, commits the replay record
	// and credit decrement, and returns the allow/deny decision. An error
	// return means the kiosk must deny: ErrInvalidToken for tokens that
	// fail signature or freshness, anything else is an internal failure
	// (fail closed).
	ValidateToken(rawToken, deviceID string) (*dto.ValidateResponse, error)

	// MemberHistory returns the authenticated member's recent check-ins
	MemberHistory(userID string, limit int) ([]*checkindomain.Checkin, error)
}
