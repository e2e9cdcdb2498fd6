package handlers

import (
	"fmt"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// validate is the shared request-DTO validator
var validate = validator.New()

// parseID parses a numeric route parameter
func parseID(c *fiber.Ctx) (uint, error) {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}

// dateLayouts are the accepted input formats for date fields.
// Responses always carry full timestamps.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02",
}

// parseDate parses an ISO date or full timestamp string
func parseDate(value string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid date value: %q", value)
}
