package dto

// MessageResponse represents a standard success response carrying only a
// status message.
type MessageResponse struct {
	Message string `json:"message" example:"Password updated successfully"`
}
