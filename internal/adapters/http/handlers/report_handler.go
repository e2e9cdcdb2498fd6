package handlers

import (
	"shelftrack/internal/core/services"
	"shelftrack/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// ReportHandler handles the fixed report endpoints
type ReportHandler struct {
	reportService *services.ReportService
}

// NewReportHandler creates a new report handler
func NewReportHandler(reportService *services.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// NeverBorrowed returns books that have never been issued
// @Summary Never-borrowed books
// @Description Get books with zero issuance records
// @Tags Reports
// @Accept json
// @Produce json
// @Success 200 {array} services.NeverBorrowedBook
// @Router /reports/never-borrowed [get]
func (h *ReportHandler) NeverBorrowed(c *fiber.Ctx) error {
	books, err := h.reportService.GetNeverBorrowedBooks(c.Context())
	if err != nil {
		return response.InternalServerError(c, "Internal server error")
	}
	return response.OK(c, books)
}

// OutstandingBooks returns issuances still pending return
// @Summary Outstanding books
// @Description Get pending issuances joined to member and book
// @Tags Reports
// @Accept json
// @Produce json
// @Success 200 {array} services.OutstandingBook
// @Router /reports/outstanding-books [get]
func (h *ReportHandler) OutstandingBooks(c *fiber.Ctx) error {
	books, err := h.reportService.GetOutstandingBooks(c.Context())
	if err != nil {
		return response.InternalServerError(c, "Internal server error")
	}
	return response.OK(c, books)
}

// TopBorrowedBooks returns the 10 most borrowed books
// @Summary Top-10 borrowed books
// @Description Get the most borrowed books by issuance count, descending
// @Tags Reports
// @Accept json
// @Produce json
// @Success 200 {array} services.TopBorrowedBook
// @Router /reports/top-borrowed-books [get]
func (h *ReportHandler) TopBorrowedBooks(c *fiber.Ctx) error {
	books, err := h.reportService.GetTopBorrowedBooks(c.Context())
	if err != nil {
		return response.InternalServerError(c, "Internal server error")
	}
	return response.OK(c, books)
}
