package dto

// IssueTokenResponse is returned to the member app, which renders the token
// as a QR code and a countdown to ExpiresAt.
type IssueTokenResponse struct {
	Token      string `json:"token"`
	ExpiresAt  string `json:"expiresAt"`
	MemberID   string `json:"memberId"`
	MemberName string `json:"memberName"`
}

// ValidateRequest is what a kiosk posts after scanning a QR code. DeviceID
// is an opaque identifier the kiosk picks and persists locally.
type ValidateRequest struct {
	Token    string `json:"token" binding:"required"`
	DeviceID string `json:"deviceId" binding:"required"`
}

// ValidateResponse is the kiosk's accept/deny decision. Both allowed and
// denied are well-formed protocol outcomes.
type ValidateResponse struct {
	Success    bool   `json:"success"`
	Result     string `json:"result"`
	Reason     string `json:"reason,omitempty"`
	MemberID   string `json:"memberId,omitempty"`
	MemberName string `json:"memberName,omitempty"`
}
