package repositories

import (
	"context"
	"errors"

	"shelftrack/internal/adapters/persistence/models"
	"shelftrack/internal/core/domain"

	"gorm.io/gorm"
)

// memberRepository implements MemberRepository interface
type memberRepository struct {
	db *gorm.DB
}

// NewMemberRepository creates a new member repository
func NewMemberRepository(db *gorm.DB) MemberRepository {
	return &memberRepository{db: db}
}

// List returns all members
func (r *memberRepository) List(ctx context.Context) ([]*models.Member, error) {
	var members []*models.Member
	err := r.db.WithContext(ctx).Find(&members).Error
	if err != nil {
		return nil, err
	}
	return members, nil
}

// GetByID gets a member by ID
func (r *memberRepository) GetByID(ctx context.Context, id uint) (*models.Member, error) {
	var member models.Member
	err := r.db.WithContext(ctx).First(&member, "mem_id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrMemberNotFound
		}
		return nil, err
	}
	return &member, nil
}

// Create inserts a new member
func (r *memberRepository) Create(ctx context.Context, member *models.Member) error {
	return r.db.WithContext(ctx).Create(member).Error
}

// Update saves all fields of a member
func (r *memberRepository) Update(ctx context.Context, member *models.Member) error {
	return r.db.WithContext(ctx).Save(member).Error
}

// Delete hard-deletes a member by ID
func (r *memberRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.Member{}, "mem_id = ?", id).Error
}

// Exists checks if a member exists
func (r *memberRepository) Exists(ctx context.Context, id uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Member{}).
		Where("mem_id = ?", id).
		Count(&count).Error
	return count > 0, err
}
