package services

import (
	"context"

	"github.com/pdlamini/portfolio/models"
	"github.com/pdlamini/portfolio/repositories"
)

// ContactService interface defines contact intake and listing logic
type ContactService interface {
	Submit(ctx context.Context, form *models.ContactForm) (*models.ContactMessage, error)
	ListMessages(ctx context.Context) ([]models.ContactMessage, error)
}

// contactService implements ContactService interface
type contactService struct {
	contactRepo repositories.ContactRepository
}

// NewContactService creates a new contact service
func NewContactService(contactRepo repositories.ContactRepository) ContactService {
	return &contactService{
		contactRepo: contactRepo,
	}
}

// Submit validates the form and stores it as a new contact message.
// It returns a *models.ValidationError for bad input and a *StorageError
// when the insert fails; nothing is written in either case.
func (s *contactService) Submit(ctx context.Context, form *models.ContactForm) (*models.ContactMessage, error) {
	if verr := form.Validate(); verr != nil {
		return nil, verr
	}

	msg := form.ToMessage()
	if err := s.contactRepo.Create(ctx, msg); err != nil {
		return nil, &StorageError{Op: "insert", Err: err}
	}

	return msg, nil
}

// ListMessages returns every stored message, newest first
func (s *contactService) ListMessages(ctx context.Context) ([]models.ContactMessage, error) {
	messages, err := s.contactRepo.GetAll(ctx)
	if err != nil {
		return nil, &StorageError{Op: "list", Err: err}
	}
	return messages, nil
}
