package repositories

import (
	"context"

	"shelftrack/internal/adapters/persistence/models"
)

// MemberRepository defines member repository interface
type MemberRepository interface {
	List(ctx context.Context) ([]*models.Member, error)
	GetByID(ctx context.Context, id uint) (*models.Member, error)
	Create(ctx context.Context, member *models.Member) error
	Update(ctx context.Context, member *models.Member) error
	Delete(ctx context.Context, id uint) error
	Exists(ctx context.Context, id uint) (bool, error)
}

// BookRepository defines book repository interface.
// List and GetByID embed category and collection.
type BookRepository interface {
	List(ctx context.Context) ([]*models.Book, error)
	GetByID(ctx context.Context, id uint) (*models.Book, error)
	Create(ctx context.Context, book *models.Book) error
	Update(ctx context.Context, book *models.Book) error
	Delete(ctx context.Context, id uint) error
	Exists(ctx context.Context, id uint) (bool, error)
}

// IssuanceRepository defines issuance repository interface.
// List and GetByID embed book and member.
type IssuanceRepository interface {
	List(ctx context.Context) ([]*models.Issuance, error)
	GetByID(ctx context.Context, id uint) (*models.Issuance, error)
	Create(ctx context.Context, issuance *models.Issuance) error
	Update(ctx context.Context, issuance *models.Issuance) error
	Delete(ctx context.Context, id uint) error
	CountByBookID(ctx context.Context, bookID uint) (int64, error)
	CountByMemberID(ctx context.Context, memberID uint) (int64, error)
	ListOverdue(ctx context.Context) ([]*models.Issuance, error)
}

// ContactRepository defines contact repository interface
type ContactRepository interface {
	List(ctx context.Context) ([]*models.Contact, error)
	GetByID(ctx context.Context, id uint) (*models.Contact, error)
	Create(ctx context.Context, contact *models.Contact) error
	Delete(ctx context.Context, id uint) error
}

// CatalogRepository defines read-only access to the seeded
// category and collection master tables
type CatalogRepository interface {
	ListCategories(ctx context.Context) ([]*models.Category, error)
	ListCollections(ctx context.Context) ([]*models.Collection, error)
	CategoryExists(ctx context.Context, id uint) (bool, error)
	CollectionExists(ctx context.Context, id uint) (bool, error)
}
