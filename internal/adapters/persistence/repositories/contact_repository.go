package repositories

import (
	"context"
	"errors"

	"shelftrack/internal/adapters/persistence/models"
	"shelftrack/internal/core/domain"

	"gorm.io/gorm"
)

// contactRepository implements ContactRepository interface
type contactRepository struct {
	db *gorm.DB
}

// NewContactRepository creates a new contact repository
func NewContactRepository(db *gorm.DB) ContactRepository {
	return &contactRepository{db: db}
}

// List returns all contact messages, newest first
func (r *contactRepository) List(ctx context.Context) ([]*models.Contact, error) {
	var contacts []*models.Contact
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&contacts).Error
	if err != nil {
		return nil, err
	}
	return contacts, nil
}

// GetByID gets a contact message by ID
func (r *contactRepository) GetByID(ctx context.Context, id uint) (*models.Contact, error) {
	var contact models.Contact
	err := r.db.WithContext(ctx).First(&contact, "contact_id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrContactNotFound
		}
		return nil, err
	}
	return &contact, nil
}

// Create inserts a new contact message
func (r *contactRepository) Create(ctx context.Context, contact *models.Contact) error {
	return r.db.WithContext(ctx).Create(contact).Error
}

// Delete hard-deletes a contact message by ID
func (r *contactRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.Contact{}, "contact_id = ?", id).Error
}
