package usecase

import (
	"errors"
	"log"
	"time"

	checkindomain "gympass-backend/internal/checkin/domain"
	"gympass-backend/internal/checkin/dto"
	checkinrepo "gympass-backend/internal/checkin/repository"
	devicerepo "gympass-backend/internal/device/repository"
	memberrepo "gympass-backend/internal/member/repository"
	"gympass-backend/pkg/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	reasonTokenUsed  = "Token already used"
	reasonNotActive  = "Membership no longer active"
	reasonDailyLimit = "Daily check-in limit reached"
	reasonNoCredits  = "No remaining credits"
)

// checkinUsecase implements CheckinUsecase interface
type checkinUsecase struct {
	memberRepo     memberrepo.MemberRepository
	membershipRepo memberrepo.MembershipRepository
	planRepo       memberrepo.PlanRepository
	checkinRepo    checkinrepo.CheckinRepository
	ledgerRepo     checkinrepo.LedgerRepository
	deviceRepo     devicerepo.DeviceRepository
	config         *config.Config
}

// NewCheckinUsecase creates a new instance of checkinUsecase
func NewCheckinUsecase(
	memberRepo memberrepo.MemberRepository,
	membershipRepo memberrepo.MembershipRepository,
	planRepo memberrepo.PlanRepository,
	checkinRepo checkinrepo.CheckinRepository,
	ledgerRepo checkinrepo.LedgerRepository,
	deviceRepo devicerepo.DeviceRepository,
	cfg *config.Config,
) CheckinUsecase {
	return &checkinUsecase{
		memberRepo:     memberRepo,
		membershipRepo: membershipRepo,
		planRepo:       planRepo,
		checkinRepo:    checkinRepo,
		ledgerRepo:     ledgerRepo,
		deviceRepo:     deviceRepo,
		config:         cfg,
	}
}

func (u *checkinUsecase) IssueToken(userID string) (*dto.IssueTokenResponse, error) {
	member, err := u.memberRepo.FindByUserID(userID)
	if err != nil {
		return nil, err
	}
	if member == nil {
		return nil, ErrMemberNotFound
	}

	now := time.Now()
	membership, err := u.membershipRepo.FindCurrentForMember(member.ID, now)
	if err != nil {
		return nil, err
	}
	if membership == nil {
		return nil, ErrNoEntitlement
	}

	if membership.RemainingCredits != nil && *membership.RemainingCredits <= 0 {
		return nil, ErrNoCredits
	}

	// jti is the sole replay-protection key; everything else in the token
	// is readable by any holder but tamper-proof.
	jti := uuid.New().String()
	expiresAt := now.Add(u.config.CheckinTokenExpiry)

	claims := jwt.MapClaims{
		"sub":          member.ID,
		"memberName":   member.FullName,
		"membershipId": membership.ID,
		"jti":          jti,
		"iat":          now.Unix(),
		"exp":          expiresAt.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(u.config.JWTSecret))
	if err != nil {
		return nil, err
	}

	return &dto.IssueTokenResponse{
		Token:      signed,
		ExpiresAt:  expiresAt.UTC().Format(time.RFC3339),
		MemberID:   member.ID,
		MemberName: member.FullName,
	}, nil
}

// tokenClaims is the verified payload of a scanned check-in token
type tokenClaims struct {
	MemberID     string
	MemberName   string
	MembershipID string
	JTI          string
	ExpiresAt    time.Time
}

func (u *checkinUsecase) ValidateToken(rawToken, deviceID string) (*dto.ValidateResponse, error) {
	// Step 1: integrity and freshness. Failures produce no audit row:
	// an unverified payload has no trustworthy subject to log against.
	claims, err := u.parseToken(rawToken)
	if err != nil {
		return nil, ErrInvalidToken
	}

	// Step 2: replay pre-check. The authoritative guard is the ledger
	// insert below; this lookup only gives honest replays a cheap answer.
	used, err := u.ledgerRepo.IsUsed(claims.JTI)
	if err != nil {
		return nil, err
	}
	if used {
		return u.deny(claims, deviceID, reasonTokenUsed)
	}

	// Step 3: re-verify entitlement. The membership may have been frozen
	// or cancelled inside the token's validity window.
	membership, err := u.membershipRepo.FindActiveByID(claims.MembershipID)
	if err != nil {
		return nil, err
	}
	if membership == nil {
		return u.deny(claims, deviceID, reasonNotActive)
	}

	// Step 4: daily limit, counted from UTC midnight.
	plan, err := u.planRepo.FindByID(membership.PlanID)
	if err != nil {
		return nil, err
	}
	if plan != nil {
		count, err := u.checkinRepo.CountAllowedSince(claims.MemberID, startOfDayUTC(time.Now()))
		if err != nil {
			return nil, err
		}
		if count >= int64(plan.DailyCheckinLimit) {
			return u.deny(claims, deviceID, reasonDailyLimit)
		}
	}

	// Credits are re-read at validate time, not trusted from issue time:
	// two tokens minted against one remaining credit must not both pass.
	if membership.RemainingCredits != nil && *membership.RemainingCredits <= 0 {
		return u.deny(claims, deviceID, reasonNoCredits)
	}

	// Step 5: commit. The replay insert and the conditional credit
	// decrement share one transaction; losing either race rolls back and
	// denies like any other replay or exhausted pool.
	use := &checkindomain.CheckinTokenUse{
		JTI:       claims.JTI,
		MemberID:  claims.MemberID,
		DeviceID:  deviceID,
		UsedAt:    time.Now(),
		ExpiresAt: claims.ExpiresAt,
	}
	creditMembershipID := ""
	if membership.RemainingCredits != nil {
		creditMembershipID = membership.ID
	}
	if err := u.ledgerRepo.Consume(use, creditMembershipID); err != nil {
		switch {
		case errors.Is(err, checkinrepo.ErrTokenAlreadyUsed):
			return u.deny(claims, deviceID, reasonTokenUsed)
		case errors.Is(err, checkinrepo.ErrNoRemainingCredits):
			return u.deny(claims, deviceID, reasonNoCredits)
		default:
			return nil, err
		}
	}

	if err := u.logAttempt(claims, deviceID, checkindomain.ResultAllowed, ""); err != nil {
		// The entry is already committed; an audit write failure must not
		// flip the decision, only surface to operators.
		log.Printf("[Checkin] failed to log allowed check-in for member %s: %v", claims.MemberID, err)
	}

	if err := u.deviceRepo.Touch(deviceID, time.Now()); err != nil {
		log.Printf("[Checkin] failed to touch device %s: %v", deviceID, err)
	}

	return &dto.ValidateResponse{
		Success:    true,
		Result:     string(checkindomain.ResultAllowed),
		MemberID:   claims.MemberID,
		MemberName: claims.MemberName,
	}, nil
}

func (u *checkinUsecase) MemberHistory(userID string, limit int) ([]*checkindomain.Checkin, error) {
	member, err := u.memberRepo.FindByUserID(userID)
	if err != nil {
		return nil, err
	}
	if member == nil {
		return nil, ErrMemberNotFound
	}
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	return u.checkinRepo.FindRecentByMember(member.ID, limit)
}

// deny writes the audit row and returns the denial decision. An audit write
// failure is an internal error: the caller still denies, but as a 500.
func (u *checkinUsecase) deny(claims *tokenClaims, deviceID, reason string) (*dto.ValidateResponse, error) {
	if err := u.logAttempt(claims, deviceID, checkindomain.ResultDenied, reason); err != nil {
		return nil, err
	}
	return &dto.ValidateResponse{
		Success:    false,
		Result:     string(checkindomain.ResultDenied),
		Reason:     reason,
		MemberName: claims.MemberName,
	}, nil
}

func (u *checkinUsecase) logAttempt(claims *tokenClaims, deviceID string, result checkindomain.CheckinResult, reason string) error {
	entry := &checkindomain.Checkin{
		MemberID:  claims.MemberID,
		DeviceID:  deviceID,
		ScannedAt: time.Now(),
		Result:    result,
		TokenJTI:  claims.JTI,
	}
	if reason != "" {
		entry.Reason = &reason
	}
	return u.checkinRepo.Log(entry)
}

func (u *checkinUsecase) parseToken(rawToken string) (*tokenClaims, error) {
	token, err := jwt.Parse(rawToken, func(token *jwt.Token) (interface{}, error) {
		return []byte(u.config.JWTSecret), nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuedAt(),
		jwt.WithExpirationRequired(),
	)
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidToken
	}

	sub, _ := claims["sub"].(string)
	memberName, _ := claims["memberName"].(string)
	membershipID, _ := claims["membershipId"].(string)
	jti, _ := claims["jti"].(string)
	if sub == "" || membershipID == "" || jti == "" {
		return nil, ErrInvalidToken
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return nil, ErrInvalidToken
	}

	return &tokenClaims{
		MemberID:     sub,
		MemberName:   memberName,
		MembershipID: membershipID,
		JTI:          jti,
		ExpiresAt:    exp.Time,
	}, nil
}

// startOfDayUTC is the calendar-day cutoff for the daily check-in limit.
// The boundary is UTC midnight, matching the counting query in the
// repository and the scanned_at timestamps it compares against.
func startOfDayUTC(now time.Time) time.Time {
	t := now.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
