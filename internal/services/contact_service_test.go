package services_test

import (
	"fmt"
	"testing"

	"portfolio/internal/models"
	"portfolio/internal/services"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockMailer is a mock implementation of services.Mailer
type MockMailer struct {
	mock.Mock
}

func (m *MockMailer) Send(message models.ContactMessage) error {
	args := m.Called(message)
	return args.Error(0)
}

func TestContactService_SendMessage(t *testing.T) {
	mockMailer := new(MockMailer)
	service := services.NewContactService(mockMailer)

	message := models.ContactMessage{
		Name:    "Visitor",
		Email:   "visitor@example.com",
		Subject: "Hello",
		Message: "Nice site",
	}

	// Successful send returns a usable reference id
	mockMailer.On("Send", message).Return(nil).Once()
	reference, err := service.SendMessage(message)
	assert.NoError(t, err)
	_, parseErr := uuid.Parse(reference)
	assert.NoError(t, parseErr)
	mockMailer.AssertExpectations(t)

	// A transport failure surfaces to the caller
	mockMailer.On("Send", message).Return(fmt.Errorf("connection refused")).Once()
	reference, err = service.SendMessage(message)
	assert.Error(t, err)
	assert.Empty(t, reference)
	mockMailer.AssertExpectations(t)
}

func TestContactService_NoMailerConfigured(t *testing.T) {
	service := services.NewContactService(nil)

	_, err := service.SendMessage(models.ContactMessage{
		Name:    "Visitor",
		Email:   "visitor@example.com",
		Subject: "Hello",
		Message: "Nice site",
	})
	assert.ErrorIs(t, err, services.ErrMailerUnavailable)
}
