package models

import "time"

// FlashMessage represents a flash message for user feedback
type FlashMessage struct {
	Type    string `json:"type"` // "success", "error"
	Message string `json:"message"`
}

// SuccessFlash builds a success flash message
func SuccessFlash(message string) *FlashMessage {
	return &FlashMessage{Type: "success", Message: message}
}

// ErrorFlash builds an error flash message
func ErrorFlash(message string) *FlashMessage {
	return &FlashMessage{Type: "error", Message: message}
}

// PageData represents common data passed to templates
type PageData struct {
	Title        string        `json:"title"`
	CurrentPage  string        `json:"current_page"`
	FlashMessage *FlashMessage `json:"flash_message,omitempty"`
	// Authenticated drives the dashboard/logout links in the layout
	Authenticated bool        `json:"authenticated"`
	Data          interface{} `json:"data,omitempty"`
}

// ValidationError represents a rejected form field
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e *ValidationError) Error() string {
	return e.Message
}

// FormatDateTime formats a time as YYYY-MM-DD HH:MM
func FormatDateTime(t time.Time) string {
	return t.Format("2006-01-02 15:04")
}
