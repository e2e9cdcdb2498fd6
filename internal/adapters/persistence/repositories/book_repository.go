package repositories

import (
	"context"
	"errors"

	"shelftrack/internal/adapters/persistence/models"
	"shelftrack/internal/core/domain"

	"gorm.io/gorm"
)

// bookRepository implements BookRepository interface
type bookRepository struct {
	db *gorm.DB
}

// NewBookRepository creates a new book repository
func NewBookRepository(db *gorm.DB) BookRepository {
	return &bookRepository{db: db}
}

// List returns all books with embedded category and collection
func (r *bookRepository) List(ctx context.Context) ([]*models.Book, error) {
	var books []*models.Book
	err := r.db.WithContext(ctx).
		Preload("Category").
		Preload("Collection").
		Find(&books).Error
	if err != nil {
		return nil, err
	}
	return books, nil
}

// GetByID gets a book by ID with embedded category and collection
func (r *bookRepository) GetByID(ctx context.Context, id uint) (*models.Book, error) {
	var book models.Book
	err := r.db.WithContext(ctx).
		Preload("Category").
		Preload("Collection").
		First(&book, "book_id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrBookNotFound
		}
		return nil, err
	}
	return &book, nil
}

// Create inserts a new book
func (r *bookRepository) Create(ctx context.Context, book *models.Book) error {
	return r.db.WithContext(ctx).Create(book).Error
}

// Update saves all fields of a book.
// Omit associations so only the FK columns move, never the masters.
func (r *bookRepository) Update(ctx context.Context, book *models.Book) error {
	return r.db.WithContext(ctx).
		Omit("Category", "Collection").
		Save(book).Error
}

// Delete hard-deletes a book by ID
func (r *bookRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.Book{}, "book_id = ?", id).Error
}

// Exists checks if a book exists
func (r *bookRepository) Exists(ctx context.Context, id uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Book{}).
		Where("book_id = ?", id).
		Count(&count).Error
	return count > 0, err
}
