package models

// FlashMessage represents a flash message for user feedback
type FlashMessage struct {
	Type    string `json:"type"` // "success", "error", "warning", "info"
	Message string `json:"message"`
}

// PageData represents common data passed to templates
type PageData struct {
	Title       string        `json:"title"`
	CurrentPage string        `json:"current_page"`
	User        string        `json:"user"`
	Flash       *FlashMessage `json:"flash,omitempty"`
	Error       string        `json:"error,omitempty"`
	Data        interface{}   `json:"data,omitempty"`
}
