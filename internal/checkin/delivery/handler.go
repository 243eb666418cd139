package delivery

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	checkindomain "gympass-backend/internal/checkin/domain"
	"gympass-backend/internal/checkin/dto"
	"gympass-backend/internal/checkin/usecase"

	"github.com/gin-gonic/gin"
)

// CheckinHandler handles check-in token HTTP requests
type CheckinHandler struct {
	checkinUsecase usecase.CheckinUsecase
}

// NewCheckinHandler creates a new CheckinHandler
func NewCheckinHandler(checkinUsecase usecase.CheckinUsecase) *CheckinHandler {
	return &CheckinHandler{
		checkinUsecase: checkinUsecase,
	}
}

// IssueToken mints a short-lived check-in token for the authenticated member
// POST /api/checkin/token
func (h *CheckinHandler) IssueToken(c *gin.Context) {
	userID := c.GetString("userID")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	resp, err := h.checkinUsecase.IssueToken(userID)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrMemberNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Member not found"})
		case errors.Is(err, usecase.ErrNoEntitlement):
			c.JSON(http.StatusForbidden, gin.H{"error": "No active membership found"})
		case errors.Is(err, usecase.ErrNoCredits):
			c.JSON(http.StatusForbidden, gin.H{"error": "No remaining credits"})
		default:
			log.Printf("[Checkin] token issue error: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	c.JSON(http.StatusOK, resp)
}

// ValidateToken decides a scanned token for a kiosk device. A well-formed
// decision (allowed or denied) is a 200; only unverifiable tokens are 401
// and internal failures 500; both are still denials from the kiosk's view.
// POST /api/checkin/validate
func (h *CheckinHandler) ValidateToken(c *gin.Context) {
	var req dto.ValidateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Token and deviceId are required"})
		return
	}

	resp, err := h.checkinUsecase.ValidateToken(req.Token, req.DeviceID)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidToken) {
			c.JSON(http.StatusUnauthorized, dto.ValidateResponse{
				Success: false,
				Result:  string(checkindomain.ResultDenied),
				Reason:  "Invalid or expired token",
			})
			return
		}
		log.Printf("[Checkin] validation error: %v", err)
		c.JSON(http.StatusInternalServerError, dto.ValidateResponse{
			Success: false,
			Result:  string(checkindomain.ResultDenied),
			Reason:  "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// History returns the authenticated member's recent check-ins
// GET /api/checkin/history?limit=20
func (h *CheckinHandler) History(c *gin.Context) {
	userID := c.GetString("userID")
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	entries, err := h.checkinUsecase.MemberHistory(userID, limit)
	if err != nil {
		if errors.Is(err, usecase.ErrMemberNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Member not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"checkins": entries,
		"count":    len(entries),
	})
}
