package handlers

import (
	"errors"

	"shelftrack/internal/adapters/persistence/models"
	"shelftrack/internal/adapters/persistence/repositories"
	"shelftrack/internal/core/domain"
	"shelftrack/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// BookHandler handles book endpoints
type BookHandler struct {
	bookRepo     repositories.BookRepository
	catalogRepo  repositories.CatalogRepository
	issuanceRepo repositories.IssuanceRepository
}

// NewBookHandler creates a new book handler
func NewBookHandler(
	bookRepo repositories.BookRepository,
	catalogRepo repositories.CatalogRepository,
	issuanceRepo repositories.IssuanceRepository,
) *BookHandler {
	return &BookHandler{
		bookRepo:     bookRepo,
		catalogRepo:  catalogRepo,
		issuanceRepo: issuanceRepo,
	}
}

// List lists all books
// @Summary List books
// @Description Get all books with embedded category and collection
// @Tags Book
// @Accept json
// @Produce json
// @Success 200 {array} models.Book
// @Router /book [get]
func (h *BookHandler) List(c *fiber.Ctx) error {
	books, err := h.bookRepo.List(c.Context())
	if err != nil {
		return response.InternalServerError(c, "Internal server error")
	}
	return response.OK(c, books)
}

// Get gets a book by ID
// @Summary Get book
// @Description Get a book by ID with embedded category and collection
// @Tags Book
// @Accept json
// @Produce json
// @Param id path int true "Book ID"
// @Success 200 {object} models.Book
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /book/{id} [get]
func (h *BookHandler) Get(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return response.BadRequest(c, "Invalid book ID")
	}

	book, err := h.bookRepo.GetByID(c.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrBookNotFound) {
			return response.NotFound(c, "Book not found")
		}
		return response.InternalServerError(c, "Internal server error")
	}

	return response.OK(c, book)
}

// CreateBookRequest represents create book request
type CreateBookRequest struct {
	BookName         string `json:"book_name" validate:"required"`
	BookCatID        uint   `json:"book_cat_id" validate:"required"`
	BookCollectionID uint   `json:"book_collection_id" validate:"required"`
	BookLaunchDate   string `json:"book_launch_date" validate:"required"`
	BookPublisher    string `json:"book_publisher" validate:"required"`
}

// Create creates a new book
// @Summary Create book
// @Description Create a new book; category and collection must exist
// @Tags Book
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body CreateBookRequest true "Book data"
// @Success 201 {object} models.Book
// @Failure 400 {object} map[string]string
// @Router /book [post]
func (h *BookHandler) Create(c *fiber.Ctx) error {
	var req CreateBookRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if err := validate.Struct(req); err != nil {
		return response.BadRequest(c, "Missing required fields")
	}

	catExists, err := h.catalogRepo.CategoryExists(c.Context(), req.BookCatID)
	if err != nil {
		return response.InternalServerError(c, "Internal server error")
	}
	if !catExists {
		return response.BadRequest(c, "Invalid category ID")
	}

	colExists, err := h.catalogRepo.CollectionExists(c.Context(), req.BookCollectionID)
	if err != nil {
		return response.InternalServerError(c, "Internal server error")
	}
	if !colExists {
		return response.BadRequest(c, "Invalid collection ID")
	}

	launchDate, err := parseDate(req.BookLaunchDate)
	if err != nil {
		return response.BadRequest(c, "Invalid launch date")
	}

	book := &models.Book{
		BookName:         req.BookName,
		BookCatID:        req.BookCatID,
		BookCollectionID: req.BookCollectionID,
		BookLaunchDate:   launchDate,
		BookPublisher:    req.BookPublisher,
	}

	if err := h.bookRepo.Create(c.Context(), book); err != nil {
		return response.InternalServerError(c, "Failed to create book")
	}

	return response.Created(c, book)
}

// UpdateBookRequest represents update book request
type UpdateBookRequest struct {
	BookName         *string `json:"book_name"`
	BookCatID        *uint   `json:"book_cat_id"`
	BookCollectionID *uint   `json:"book_collection_id"`
	BookLaunchDate   *string `json:"book_launch_date"`
	BookPublisher    *string `json:"book_publisher"`
}

// Update updates an existing book
// @Summary Update book
// @Description Update supplied fields of an existing book; FK fields are re-validated
// @Tags Book
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Book ID"
// @Param body body UpdateBookRequest true "Book fields"
// @Success 200 {object} models.Book
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /book/{id} [put]
func (h *BookHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return response.BadRequest(c, "Invalid book ID")
	}

	book, err := h.bookRepo.GetByID(c.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrBookNotFound) {
			return response.NotFound(c, "Book not found")
		}
		return response.InternalServerError(c, "Internal server error")
	}

	var req UpdateBookRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if req.BookName != nil {
		book.BookName = *req.BookName
	}

	if req.BookCatID != nil {
		catExists, err := h.catalogRepo.CategoryExists(c.Context(), *req.BookCatID)
		if err != nil {
			return response.InternalServerError(c, "Internal server error")
		}
		if !catExists {
			return response.BadRequest(c, "Invalid category ID")
		}
		book.BookCatID = *req.BookCatID
		book.Category = nil
	}

	if req.BookCollectionID != nil {
		colExists, err := h.catalogRepo.CollectionExists(c.Context(), *req.BookCollectionID)
		if err != nil {
			return response.InternalServerError(c, "Internal server error")
		}
		if !colExists {
			return response.BadRequest(c, "Invalid collection ID")
		}
		book.BookCollectionID = *req.BookCollectionID
		book.Collection = nil
	}

	if req.BookLaunchDate != nil {
		launchDate, err := parseDate(*req.BookLaunchDate)
		if err != nil {
			return response.BadRequest(c, "Invalid launch date")
		}
		book.BookLaunchDate = launchDate
	}

	if req.BookPublisher != nil {
		book.BookPublisher = *req.BookPublisher
	}

	if err := h.bookRepo.Update(c.Context(), book); err != nil {
		return response.InternalServerError(c, "Failed to update book")
	}

	return response.OK(c, book)
}

// Delete removes a book
// @Summary Delete book
// @Description Delete a book with no issuance history
// @Tags Book
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Book ID"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /book/{id} [delete]
func (h *BookHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return response.BadRequest(c, "Invalid book ID")
	}

	if _, err := h.bookRepo.GetByID(c.Context(), id); err != nil {
		if errors.Is(err, domain.ErrBookNotFound) {
			return response.NotFound(c, "Book not found")
		}
		return response.InternalServerError(c, "Internal server error")
	}

	// Loan history stays intact: a referenced book cannot be deleted
	count, err := h.issuanceRepo.CountByBookID(c.Context(), id)
	if err != nil {
		return response.InternalServerError(c, "Internal server error")
	}
	if count > 0 {
		return response.BadRequest(c, "Cannot delete book: existing issuance records reference this book")
	}

	if err := h.bookRepo.Delete(c.Context(), id); err != nil {
		return response.InternalServerError(c, "Failed to delete book")
	}

	return response.Message(c, "Book deleted successfully")
}
