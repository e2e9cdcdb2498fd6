package handlers

import (
	"errors"
	"time"

	"shelftrack/internal/adapters/persistence/models"
	"shelftrack/internal/adapters/persistence/repositories"
	"shelftrack/internal/core/domain"
	"shelftrack/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// IssuanceHandler handles issuance endpoints
type IssuanceHandler struct {
	issuanceRepo repositories.IssuanceRepository
	bookRepo     repositories.BookRepository
	memberRepo   repositories.MemberRepository
}

// NewIssuanceHandler creates a new issuance handler
func NewIssuanceHandler(
	issuanceRepo repositories.IssuanceRepository,
	bookRepo repositories.BookRepository,
	memberRepo repositories.MemberRepository,
) *IssuanceHandler {
	return &IssuanceHandler{
		issuanceRepo: issuanceRepo,
		bookRepo:     bookRepo,
		memberRepo:   memberRepo,
	}
}

// List lists all issuance records
// @Summary List issuances
// @Description Get all issuance records with embedded book and member
// @Tags Issuance
// @Accept json
// @Produce json
// @Success 200 {array} models.Issuance
// @Router /issuance [get]
func (h *IssuanceHandler) List(c *fiber.Ctx) error {
	issuances, err := h.issuanceRepo.List(c.Context())
	if err != nil {
		return response.InternalServerError(c, "Internal server error")
	}
	return response.OK(c, issuances)
}

// Get gets an issuance record by ID
// @Summary Get issuance
// @Description Get an issuance record by ID with embedded book and member
// @Tags Issuance
// @Accept json
// @Produce json
// @Param id path int true "Issuance ID"
// @Success 200 {object} models.Issuance
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /issuance/{id} [get]
func (h *IssuanceHandler) Get(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return response.BadRequest(c, "Invalid issuance ID")
	}

	issuance, err := h.issuanceRepo.GetByID(c.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrIssuanceNotFound) {
			return response.NotFound(c, "Issuance record not found")
		}
		return response.InternalServerError(c, "Internal server error")
	}

	return response.OK(c, issuance)
}

// CreateIssuanceRequest represents create issuance request.
// issuance_date is never client-settable; the server stamps it.
type CreateIssuanceRequest struct {
	BookID           uint   `json:"book_id" validate:"required"`
	MemberID         uint   `json:"member_id" validate:"required"`
	IssuedBy         string `json:"issued_by" validate:"required"`
	TargetReturnDate string `json:"target_return_date" validate:"required"`
	IssuanceStatus   string `json:"issuance_status" validate:"required"`
}

// Create creates a new issuance record
// @Summary Create issuance
// @Description Create a new issuance record; book and member must exist
// @Tags Issuance
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body CreateIssuanceRequest true "Issuance data"
// @Success 201 {object} models.Issuance
// @Failure 400 {object} map[string]string
// @Router /issuance [post]
func (h *IssuanceHandler) Create(c *fiber.Ctx) error {
	var req CreateIssuanceRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if err := validate.Struct(req); err != nil {
		return response.BadRequest(c, "Missing required fields")
	}

	bookExists, err := h.bookRepo.Exists(c.Context(), req.BookID)
	if err != nil {
		return response.InternalServerError(c, "Internal server error")
	}
	if !bookExists {
		return response.BadRequest(c, "Invalid book ID")
	}

	memberExists, err := h.memberRepo.Exists(c.Context(), req.MemberID)
	if err != nil {
		return response.InternalServerError(c, "Internal server error")
	}
	if !memberExists {
		return response.BadRequest(c, "Invalid member ID")
	}

	targetReturnDate, err := parseDate(req.TargetReturnDate)
	if err != nil {
		return response.BadRequest(c, "Invalid target return date")
	}

	issuance := &models.Issuance{
		BookID:           req.BookID,
		MemberID:         req.MemberID,
		IssuedBy:         req.IssuedBy,
		IssuanceDate:     time.Now(),
		TargetReturnDate: targetReturnDate,
		IssuanceStatus:   req.IssuanceStatus,
	}

	if err := h.issuanceRepo.Create(c.Context(), issuance); err != nil {
		return response.InternalServerError(c, "Failed to create issuance record")
	}

	return response.Created(c, issuance)
}

// UpdateIssuanceRequest represents update issuance request
type UpdateIssuanceRequest struct {
	BookID           *uint   `json:"book_id"`
	MemberID         *uint   `json:"member_id"`
	IssuedBy         *string `json:"issued_by"`
	TargetReturnDate *string `json:"target_return_date"`
	IssuanceStatus   *string `json:"issuance_status"`
}

// Update updates an issuance record.
// The original issuance_date is immutable.
// @Summary Update issuance
// @Description Update supplied fields of an issuance record; FK fields are re-validated
// @Tags Issuance
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Issuance ID"
// @Param body body UpdateIssuanceRequest true "Issuance fields"
// @Success 200 {object} models.Issuance
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /issuance/{id} [put]
func (h *IssuanceHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return response.BadRequest(c, "Invalid issuance ID")
	}

	issuance, err := h.issuanceRepo.GetByID(c.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrIssuanceNotFound) {
			return response.NotFound(c, "Issuance record not found")
		}
		return response.InternalServerError(c, "Internal server error")
	}

	var req UpdateIssuanceRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if req.BookID != nil {
		bookExists, err := h.bookRepo.Exists(c.Context(), *req.BookID)
		if err != nil {
			return response.InternalServerError(c, "Internal server error")
		}
		if !bookExists {
			return response.BadRequest(c, "Invalid book ID")
		}
		issuance.BookID = *req.BookID
		issuance.Book = nil
	}

	if req.MemberID != nil {
		memberExists, err := h.memberRepo.Exists(c.Context(), *req.MemberID)
		if err != nil {
			return response.InternalServerError(c, "Internal server error")
		}
		if !memberExists {
			return response.BadRequest(c, "Invalid member ID")
		}
		issuance.MemberID = *req.MemberID
		issuance.Member = nil
	}

	if req.IssuedBy != nil {
		issuance.IssuedBy = *req.IssuedBy
	}

	if req.TargetReturnDate != nil {
		targetReturnDate, err := parseDate(*req.TargetReturnDate)
		if err != nil {
			return response.BadRequest(c, "Invalid target return date")
		}
		issuance.TargetReturnDate = targetReturnDate
	}

	if req.IssuanceStatus != nil {
		issuance.IssuanceStatus = *req.IssuanceStatus
	}

	if err := h.issuanceRepo.Update(c.Context(), issuance); err != nil {
		return response.InternalServerError(c, "Failed to update issuance record")
	}

	return response.OK(c, issuance)
}

// Delete removes an issuance record
// @Summary Delete issuance
// @Description Delete an issuance record
// @Tags Issuance
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Issuance ID"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /issuance/{id} [delete]
func (h *IssuanceHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return response.BadRequest(c, "Invalid issuance ID")
	}

	if _, err := h.issuanceRepo.GetByID(c.Context(), id); err != nil {
		if errors.Is(err, domain.ErrIssuanceNotFound) {
			return response.NotFound(c, "Issuance record not found")
		}
		return response.InternalServerError(c, "Internal server error")
	}

	if err := h.issuanceRepo.Delete(c.Context(), id); err != nil {
		return response.InternalServerError(c, "Failed to delete issuance record")
	}

	return response.Message(c, "Issuance record deleted successfully")
}
