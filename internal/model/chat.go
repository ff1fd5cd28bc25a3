package model

const (
	ChatRoleUser  = "user"
	ChatRoleModel = "model"
)

// ChatTurn is one role-tagged entry in a conversation transcript
type ChatTurn struct {
	Role string `json:"role"`
	Text string `json:"text"`
}

// ChatRequest is a single chat message from the caller
type ChatRequest struct {
	Prompt string `json:"prompt" binding:"required"`
}

// AnalyzeBookingRequest asks for an AI analysis of one of the caller's bookings
type AnalyzeBookingRequest struct {
	BookingID int64 `json:"booking_id" binding:"required"`
}
