package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"shelftrack/internal/adapters/http/middleware"
	"shelftrack/internal/adapters/http/routes"
	"shelftrack/internal/adapters/persistence/models"
	"shelftrack/internal/config"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const testAPIKey = "test-secret"

var dbSeq int64

// newTestApp builds a Fiber app wired to a fresh in-memory database.
func newTestApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()

	dsn := fmt.Sprintf("file:testdb_%d?mode=memory&cache=shared", atomic.AddInt64(&dbSeq, 1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, models.AutoMigrate(db))

	cfg := &config.Config{
		AppMode: "dev",
		Port:    "3000",
		APIKey:  testAPIKey,
	}

	app := fiber.New(fiber.Config{
		ErrorHandler: middleware.ErrorHandler,
	})
	routes.Setup(app, db, cfg)

	return app, db
}

// doRequest performs a request against the app. An empty apiKey sends no
// x-api-key header.
func doRequest(t *testing.T, app *fiber.App, method, path string, body interface{}, apiKey string) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(buf)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if apiKey != "" {
		req.Header.Set("x-api-key", apiKey)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeJSON(t *testing.T, resp *http.Response, out interface{}) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}

// ============================================================
// Fixtures
// ============================================================

func seedCategory(t *testing.T, db *gorm.DB) *models.Category {
	t.Helper()
	cat := &models.Category{CatName: "Technology", SubCatName: "Programming"}
	require.NoError(t, db.Create(cat).Error)
	return cat
}

func seedCollection(t *testing.T, db *gorm.DB) *models.Collection {
	t.Helper()
	col := &models.Collection{CollectionName: "Non-Fiction"}
	require.NoError(t, db.Create(col).Error)
	return col
}

func seedMember(t *testing.T, db *gorm.DB, name string) *models.Member {
	t.Helper()
	member := &models.Member{
		MemName:  name,
		MemPhone: "555-0100",
		MemEmail: "member@example.com",
	}
	require.NoError(t, db.Create(member).Error)
	return member
}

func seedBook(t *testing.T, db *gorm.DB, name string, catID, colID uint) *models.Book {
	t.Helper()
	book := &models.Book{
		BookName:         name,
		BookLaunchDate:   time.Date(2020, 6, 1, 0, 0, 0, 0, time.UTC),
		BookPublisher:    "Acme Press",
		BookCatID:        catID,
		BookCollectionID: colID,
	}
	require.NoError(t, db.Create(book).Error)
	return book
}

func seedIssuance(t *testing.T, db *gorm.DB, bookID, memberID uint, status string) *models.Issuance {
	t.Helper()
	issuance := &models.Issuance{
		BookID:           bookID,
		MemberID:         memberID,
		IssuedBy:         "Librarian A",
		IssuanceDate:     time.Now().AddDate(0, 0, -7),
		TargetReturnDate: time.Now().AddDate(0, 0, 7),
		IssuanceStatus:   status,
	}
	require.NoError(t, db.Create(issuance).Error)
	return issuance
}
