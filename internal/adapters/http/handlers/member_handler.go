package handlers

import (
	"errors"

	"shelftrack/internal/adapters/persistence/models"
	"shelftrack/internal/adapters/persistence/repositories"
	"shelftrack/internal/core/domain"
	"shelftrack/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// MemberHandler handles member endpoints
type MemberHandler struct {
	memberRepo   repositories.MemberRepository
	issuanceRepo repositories.IssuanceRepository
}

// NewMemberHandler creates a new member handler
func NewMemberHandler(memberRepo repositories.MemberRepository, issuanceRepo repositories.IssuanceRepository) *MemberHandler {
	return &MemberHandler{
		memberRepo:   memberRepo,
		issuanceRepo: issuanceRepo,
	}
}

// List lists all members
// @Summary List members
// @Description Get all members
// @Tags Member
// @Accept json
// @Produce json
// @Success 200 {array} models.Member
// @Router /member [get]
func (h *MemberHandler) List(c *fiber.Ctx) error {
	members, err := h.memberRepo.List(c.Context())
	if err != nil {
		return response.InternalServerError(c, "Internal server error")
	}
	return response.OK(c, members)
}

// Get gets a member by ID
// @Summary Get member
// @Description Get a member by ID
// @Tags Member
// @Accept json
// @Produce json
// @Param id path int true "Member ID"
// @Success 200 {object} models.Member
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /member/{id} [get]
func (h *MemberHandler) Get(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return response.BadRequest(c, "Invalid member ID")
	}

	member, err := h.memberRepo.GetByID(c.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrMemberNotFound) {
			return response.NotFound(c, "Member not found")
		}
		return response.InternalServerError(c, "Internal server error")
	}

	return response.OK(c, member)
}

// CreateMemberRequest represents create member request
type CreateMemberRequest struct {
	MemName  string `json:"mem_name" validate:"required"`
	MemPhone string `json:"mem_phone" validate:"required"`
	MemEmail string `json:"mem_email" validate:"required,email"`
}

// Create creates a new member
// @Summary Create member
// @Description Create a new member
// @Tags Member
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body CreateMemberRequest true "Member data"
// @Success 201 {object} models.Member
// @Failure 400 {object} map[string]string
// @Router /member [post]
func (h *MemberHandler) Create(c *fiber.Ctx) error {
	var req CreateMemberRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if err := validate.Struct(req); err != nil {
		return response.BadRequest(c, "Missing required fields")
	}

	member := &models.Member{
		MemName:  req.MemName,
		MemPhone: req.MemPhone,
		MemEmail: req.MemEmail,
	}

	if err := h.memberRepo.Create(c.Context(), member); err != nil {
		return response.InternalServerError(c, "Failed to create member")
	}

	return response.Created(c, member)
}

// UpdateMemberRequest represents update member request.
// Pointer fields distinguish "absent" from "empty".
type UpdateMemberRequest struct {
	MemName  *string `json:"mem_name"`
	MemPhone *string `json:"mem_phone"`
	MemEmail *string `json:"mem_email" validate:"omitempty,email"`
}

// Update updates an existing member
// @Summary Update member
// @Description Update supplied fields of an existing member
// @Tags Member
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Member ID"
// @Param body body UpdateMemberRequest true "Member fields"
// @Success 200 {object} models.Member
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /member/{id} [put]
func (h *MemberHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return response.BadRequest(c, "Invalid member ID")
	}

	member, err := h.memberRepo.GetByID(c.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrMemberNotFound) {
			return response.NotFound(c, "Member not found")
		}
		return response.InternalServerError(c, "Internal server error")
	}

	var req UpdateMemberRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if err := validate.Struct(req); err != nil {
		return response.BadRequest(c, "Invalid field values")
	}

	if req.MemName != nil {
		member.MemName = *req.MemName
	}
	if req.MemPhone != nil {
		member.MemPhone = *req.MemPhone
	}
	if req.MemEmail != nil {
		member.MemEmail = *req.MemEmail
	}

	if err := h.memberRepo.Update(c.Context(), member); err != nil {
		return response.InternalServerError(c, "Failed to update member")
	}

	return response.OK(c, member)
}

// Delete removes a member
// @Summary Delete member
// @Description Delete a member with no issuance history
// @Tags Member
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Member ID"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /member/{id} [delete]
func (h *MemberHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return response.BadRequest(c, "Invalid member ID")
	}

	if _, err := h.memberRepo.GetByID(c.Context(), id); err != nil {
		if errors.Is(err, domain.ErrMemberNotFound) {
			return response.NotFound(c, "Member not found")
		}
		return response.InternalServerError(c, "Internal server error")
	}

	// Loan history stays intact: a referenced member cannot be deleted
	count, err := h.issuanceRepo.CountByMemberID(c.Context(), id)
	if err != nil {
		return response.InternalServerError(c, "Internal server error")
	}
	if count > 0 {
		return response.BadRequest(c, "Cannot delete member: existing issuance records reference this member")
	}

	if err := h.memberRepo.Delete(c.Context(), id); err != nil {
		return response.InternalServerError(c, "Failed to delete member")
	}

	return response.Message(c, "Member deleted successfully")
}
