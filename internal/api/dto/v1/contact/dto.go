package contact

// ContactRequest represents a contact form submission.
// Email is optional and deliberately not format-validated.
type ContactRequest struct {
	Name    string `json:"name" validate:"required"`
	Phone   string `json:"phone" validate:"required"`
	Email   string `json:"email"`
	Message string `json:"message" validate:"required"`
}

// ContactResponse acknowledges a stored submission
type ContactResponse struct {
	OK bool   `json:"ok"`
	ID string `json:"id"`
}
