package handlers

import (
	"errors"

	"shelftrack/internal/adapters/persistence/models"
	"shelftrack/internal/adapters/persistence/repositories"
	"shelftrack/internal/core/domain"
	"shelftrack/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// ContactHandler handles contact message endpoints
type ContactHandler struct {
	contactRepo repositories.ContactRepository
}

// NewContactHandler creates a new contact handler
func NewContactHandler(contactRepo repositories.ContactRepository) *ContactHandler {
	return &ContactHandler{contactRepo: contactRepo}
}

// CreateContactRequest represents create contact request
type CreateContactRequest struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Message string `json:"message" validate:"required"`
}

// Create creates a new contact message
// @Summary Create contact message
// @Description Submit a contact message
// @Tags Contact
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body CreateContactRequest true "Contact data"
// @Success 201 {object} models.Contact
// @Failure 400 {object} map[string]string
// @Router /contacts [post]
func (h *ContactHandler) Create(c *fiber.Ctx) error {
	var req CreateContactRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if err := validate.Struct(req); err != nil {
		return response.BadRequest(c, "Missing required fields")
	}

	contact := &models.Contact{
		Name:    req.Name,
		Email:   req.Email,
		Message: req.Message,
	}

	if err := h.contactRepo.Create(c.Context(), contact); err != nil {
		return response.InternalServerError(c, "Failed to create contact message")
	}

	return response.Created(c, contact)
}

// List lists all contact messages, newest first
// @Summary List contact messages
// @Description Get all contact messages ordered newest-first
// @Tags Contact
// @Accept json
// @Produce json
// @Success 200 {array} models.Contact
// @Router /contacts [get]
func (h *ContactHandler) List(c *fiber.Ctx) error {
	contacts, err := h.contactRepo.List(c.Context())
	if err != nil {
		return response.InternalServerError(c, "Internal server error")
	}
	return response.OK(c, contacts)
}

// Get gets a contact message by ID
// @Summary Get contact message
// @Description Get a contact message by ID
// @Tags Contact
// @Accept json
// @Produce json
// @Param id path int true "Contact ID"
// @Success 200 {object} models.Contact
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /contacts/{id} [get]
func (h *ContactHandler) Get(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return response.BadRequest(c, "Invalid contact id")
	}

	contact, err := h.contactRepo.GetByID(c.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrContactNotFound) {
			return response.NotFound(c, "Contact message not found")
		}
		return response.InternalServerError(c, "Internal server error")
	}

	return response.OK(c, contact)
}

// Delete removes a contact message
// @Summary Delete contact message
// @Description Delete a contact message by ID
// @Tags Contact
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Contact ID"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /contacts/{id} [delete]
func (h *ContactHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return response.BadRequest(c, "Invalid contact id")
	}

	if _, err := h.contactRepo.GetByID(c.Context(), id); err != nil {
		if errors.Is(err, domain.ErrContactNotFound) {
			return response.NotFound(c, "Contact message not found")
		}
		return response.InternalServerError(c, "Internal server error")
	}

	if err := h.contactRepo.Delete(c.Context(), id); err != nil {
		return response.InternalServerError(c, "Failed to delete contact message")
	}

	return response.Message(c, "Contact message deleted successfully")
}
