package repositories

import (
	"context"
	"errors"
	"time"

	"shelftrack/internal/adapters/persistence/models"
	"shelftrack/internal/core/domain"

	"gorm.io/gorm"
)

// issuanceRepository implements IssuanceRepository interface
type issuanceRepository struct {
	db *gorm.DB
}

// NewIssuanceRepository creates a new issuance repository
func NewIssuanceRepository(db *gorm.DB) IssuanceRepository {
	return &issuanceRepository{db: db}
}

// List returns all issuance records with embedded book and member
func (r *issuanceRepository) List(ctx context.Context) ([]*models.Issuance, error) {
	var issuances []*models.Issuance
	err := r.db.WithContext(ctx).
		Preload("Book").
		Preload("Member").
		Find(&issuances).Error
	if err != nil {
		return nil, err
	}
	return issuances, nil
}

// GetByID gets an issuance record by ID with embedded book and member
func (r *issuanceRepository) GetByID(ctx context.Context, id uint) (*models.Issuance, error) {
	var issuance models.Issuance
	err := r.db.WithContext(ctx).
		Preload("Book").
		Preload("Member").
		First(&issuance, "issuance_id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrIssuanceNotFound
		}
		return nil, err
	}
	return &issuance, nil
}

// Create inserts a new issuance record
func (r *issuanceRepository) Create(ctx context.Context, issuance *models.Issuance) error {
	return r.db.WithContext(ctx).Create(issuance).Error
}

// Update saves all fields of an issuance record
func (r *issuanceRepository) Update(ctx context.Context, issuance *models.Issuance) error {
	return r.db.WithContext(ctx).
		Omit("Book", "Member").
		Save(issuance).Error
}

// Delete hard-deletes an issuance record by ID
func (r *issuanceRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.Issuance{}, "issuance_id = ?", id).Error
}

// CountByBookID counts issuance records referencing a book
func (r *issuanceRepository) CountByBookID(ctx context.Context, bookID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Issuance{}).
		Where("book_id = ?", bookID).
		Count(&count).Error
	return count, err
}

// CountByMemberID counts issuance records referencing a member
func (r *issuanceRepository) CountByMemberID(ctx context.Context, memberID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Issuance{}).
		Where("member_id = ?", memberID).
		Count(&count).Error
	return count, err
}

// ListOverdue returns pending issuances past their target return date
func (r *issuanceRepository) ListOverdue(ctx context.Context) ([]*models.Issuance, error) {
	var issuances []*models.Issuance
	err := r.db.WithContext(ctx).
		Preload("Book").
		Preload("Member").
		Where("issuance_status = ? AND target_return_date < ?", "pending", time.Now()).
		Find(&issuances).Error
	if err != nil {
		return nil, err
	}
	return issuances, nil
}
