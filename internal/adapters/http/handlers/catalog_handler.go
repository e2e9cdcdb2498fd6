package handlers

import (
	"shelftrack/internal/adapters/persistence/repositories"
	"shelftrack/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// CatalogHandler handles the read-only category and collection endpoints
type CatalogHandler struct {
	catalogRepo repositories.CatalogRepository
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(catalogRepo repositories.CatalogRepository) *CatalogHandler {
	return &CatalogHandler{catalogRepo: catalogRepo}
}

// ListCategories lists all categories
// @Summary List categories
// @Description Get all categories
// @Tags Catalog
// @Accept json
// @Produce json
// @Success 200 {array} models.Category
// @Router /categories [get]
func (h *CatalogHandler) ListCategories(c *fiber.Ctx) error {
	categories, err := h.catalogRepo.ListCategories(c.Context())
	if err != nil {
		return response.InternalServerError(c, "Internal Server Error")
	}
	return response.OK(c, categories)
}

// ListCollections lists all collections
// @Summary List collections
// @Description Get all collections
// @Tags Catalog
// @Accept json
// @Produce json
// @Success 200 {array} models.Collection
// @Router /collections [get]
func (h *CatalogHandler) ListCollections(c *fiber.Ctx) error {
	collections, err := h.catalogRepo.ListCollections(c.Context())
	if err != nil {
		return response.InternalServerError(c, "Internal Server Error")
	}
	return response.OK(c, collections)
}
