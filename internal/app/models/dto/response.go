package dto

// MessageResponse is the standard body for errors and confirmation
// messages.
type MessageResponse struct {
	Message string `json:"message" example:"Lecturer not found"`
}

// NewMessage creates a MessageResponse
func NewMessage(message string) MessageResponse {
	return MessageResponse{Message: message}
}
