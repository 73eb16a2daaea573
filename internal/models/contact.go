package models

// ContactMessage is a visitor message submitted through the contact
// form. It is relayed by mail to the site owner, not persisted.
type ContactMessage struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Subject string `json:"subject" validate:"required"`
	Message string `json:"message" validate:"required"`
}
