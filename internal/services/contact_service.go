package services

import (
	"errors"
	"fmt"
	"log"

	"portfolio/internal/models"

	"github.com/google/uuid"
)

// Mailer relays a contact message to the site owner.
type Mailer interface {
	Send(message models.ContactMessage) error
}

// ErrMailerUnavailable is returned when no mail transport is configured.
var ErrMailerUnavailable = errors.New("mail transport not configured")

// ContactService handles the contact form: a synchronous mail relay
// with an explicit failure path. The send happens within the request;
// there is no queue and no retry.
type ContactService struct {
	mailer Mailer
}

// NewContactService creates a new ContactService. A nil mailer is
// allowed; sends then fail with ErrMailerUnavailable.
func NewContactService(mailer Mailer) *ContactService {
	return &ContactService{
		mailer: mailer,
	}
}

// SendMessage relays the message and returns a reference id the sender
// can quote. A transport failure is surfaced to the caller, never
// swallowed behind an unconditional success message.
func (s *ContactService) SendMessage(message models.ContactMessage) (string, error) {
	if s.mailer == nil {
		return "", ErrMailerUnavailable
	}

	reference := uuid.New().String()
	if err := s.mailer.Send(message); err != nil {
		log.Printf("Contact message %s from %s failed: %v", reference, message.Email, err)
		return "", fmt.Errorf("failed to relay contact message: %w", err)
	}

	log.Printf("Contact message %s from %s relayed", reference, message.Email)
	return reference, nil
}
