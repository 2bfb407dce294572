package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/webfolio/portfolio-backend/internal/db"
	"github.com/webfolio/portfolio-backend/internal/model"

	"github.com/google/uuid"
)

// ContactRepository defines the persistence gateway for contact messages.
type ContactRepository interface {
	// Create stores the message and returns its generated identifier.
	Create(ctx context.Context, msg *model.ContactMessage) (string, error)
}

// postgresContactRepository is the PostgreSQL implementation of
// ContactRepository, writing to the contactmessage table.
type postgresContactRepository struct {
	db *sql.DB
}

// NewContactRepository creates a ContactRepository backed by the given
// database handle.
func NewContactRepository(database *db.Database) ContactRepository {
	return &postgresContactRepository{db: database.Conn()}
}

var _ ContactRepository = (*postgresContactRepository)(nil)

func (r *postgresContactRepository) Create(ctx context.Context, msg *model.ContactMessage) (string, error) {
	if r.db == nil {
		return "", fmt.Errorf("database not initialized")
	}

	id := uuid.NewString()
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO contactmessage (id, name, phone, email, message, created_at)
		VALUES ($1, $2, $3, NULLIF($4, ''), $5, $6)`,
		id, msg.Name, msg.Phone, msg.Email, msg.Message, msg.CreatedAt,
	)
	if err != nil {
		return "", err
	}

	msg.ID = id
	return id, nil
}
