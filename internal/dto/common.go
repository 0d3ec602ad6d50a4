package dto

// FieldError describes a single field-level validation violation. A 400
// response carries the full list of these, not just the first failure.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ErrorResponse is the uniform error body returned by every failure branch.
type ErrorResponse struct {
	Error   string       `json:"error"`
	Details []FieldError `json:"details,omitempty"`
}

// MessageResponse is the body for confirmations such as deletes.
type MessageResponse struct {
	Message string `json:"message"`
}

// DateLayout is the wire format for invoice and payment dates.
const DateLayout = "2006-01-02"
