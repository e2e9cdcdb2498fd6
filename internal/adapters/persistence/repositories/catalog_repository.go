package repositories

import (
	"context"

	"shelftrack/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// catalogRepository implements CatalogRepository interface.
// Categories and collections are seeded masters with no write routes.
type catalogRepository struct {
	db *gorm.DB
}

// NewCatalogRepository creates a new catalog repository
func NewCatalogRepository(db *gorm.DB) CatalogRepository {
	return &catalogRepository{db: db}
}

// ListCategories returns all categories
func (r *catalogRepository) ListCategories(ctx context.Context) ([]*models.Category, error) {
	var categories []*models.Category
	err := r.db.WithContext(ctx).Find(&categories).Error
	if err != nil {
		return nil, err
	}
	return categories, nil
}

// ListCollections returns all collections
func (r *catalogRepository) ListCollections(ctx context.Context) ([]*models.Collection, error) {
	var collections []*models.Collection
	err := r.db.WithContext(ctx).Find(&collections).Error
	if err != nil {
		return nil, err
	}
	return collections, nil
}

// CategoryExists checks if a category exists
func (r *catalogRepository) CategoryExists(ctx context.Context, id uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Category{}).
		Where("cat_id = ?", id).
		Count(&count).Error
	return count > 0, err
}

// CollectionExists checks if a collection exists
func (r *catalogRepository) CollectionExists(ctx context.Context, id uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Collection{}).
		Where("collection_id = ?", id).
		Count(&count).Error
	return count > 0, err
}
