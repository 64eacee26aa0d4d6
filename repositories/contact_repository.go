package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/pdlamini/portfolio/database"
	"github.com/pdlamini/portfolio/models"
)

// ContactRepository interface defines contact message database operations
type ContactRepository interface {
	Create(ctx context.Context, msg *models.ContactMessage) error
	GetAll(ctx context.Context) ([]models.ContactMessage, error)
}

// contactRepository implements ContactRepository interface
type contactRepository struct {
	db  *database.DB
	now func() time.Time
}

// NewContactRepository creates a new contact repository
func NewContactRepository(db *database.DB) ContactRepository {
	return &contactRepository{
		db:  db,
		now: func() time.Time { return time.Now().UTC() },
	}
}

// Create inserts a contact message and fills in its ID and CreatedAt
func (r *contactRepository) Create(ctx context.Context, msg *models.ContactMessage) error {
	query := `
		INSERT INTO contact_messages (name, email, message, created_at)
		VALUES (?, ?, ?, ?)
		RETURNING id
	`

	createdAt := r.now()

	var id int64
	err := r.db.QueryRowContext(ctx, r.db.Rebind(query),
		msg.Name,
		msg.Email,
		msg.Message,
		createdAt,
	).Scan(&id)
	if err != nil {
		return fmt.Errorf("failed to create contact message: %w", err)
	}

	msg.ID = id
	msg.CreatedAt = createdAt
	return nil
}

// GetAll retrieves all contact messages, newest first
func (r *contactRepository) GetAll(ctx context.Context) ([]models.ContactMessage, error) {
	query := `
		SELECT id, name, email, message, created_at
		FROM contact_messages
		ORDER BY created_at DESC, id DESC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query contact messages: %w", err)
	}
	defer rows.Close()

	var messages []models.ContactMessage
	for rows.Next() {
		var msg models.ContactMessage
		err := rows.Scan(
			&msg.ID,
			&msg.Name,
			&msg.Email,
			&msg.Message,
			&msg.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan contact message: %w", err)
		}
		messages = append(messages, msg)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating contact messages: %w", err)
	}

	return messages, nil
}
