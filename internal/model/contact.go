package model

import "time"

// ContactMessage represents a message submitted via the contact form.
// It is constructed only after the request payload passed structural
// validation, and is immutable once handed to the repository.
type ContactMessage struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	Email     string    `json:"email,omitempty"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}
