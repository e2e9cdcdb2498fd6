package handlers_test

import (
	"testing"
	"time"

	"shelftrack/internal/adapters/persistence/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssuanceCreateServerSetsIssuanceDate(t *testing.T) {
	app, db := newTestApp(t)
	cat := seedCategory(t, db)
	col := seedCollection(t, db)
	member := seedMember(t, db, "Borrower")
	book := seedBook(t, db, "Lend Me", cat.CatID, col.CollectionID)

	payload := map[string]interface{}{
		"book_id":            book.BookID,
		"member_id":          member.MemID,
		"issued_by":          "Librarian A",
		"target_return_date": "2030-01-15",
		"issuance_status":    "pending",
		// issuance_date supplied by the client must be ignored
		"issuance_date": "1999-01-01T00:00:00Z",
	}
	resp := doRequest(t, app, "POST", "/issuance", payload, testAPIKey)
	require.Equal(t, 201, resp.StatusCode)

	var created models.Issuance
	decodeJSON(t, resp, &created)
	assert.NotZero(t, created.IssuanceID)
	assert.WithinDuration(t, time.Now(), created.IssuanceDate, 5*time.Second)
	assert.Equal(t, "pending", created.IssuanceStatus)
	assert.Equal(t, 2030, created.TargetReturnDate.Year())
}

func TestIssuanceCreateInvalidReferences(t *testing.T) {
	app, db := newTestApp(t)
	cat := seedCategory(t, db)
	col := seedCollection(t, db)
	member := seedMember(t, db, "Borrower")
	book := seedBook(t, db, "Lend Me", cat.CatID, col.CollectionID)

	base := map[string]interface{}{
		"issued_by":          "Librarian A",
		"target_return_date": "2030-01-15",
		"issuance_status":    "pending",
	}

	payload := map[string]interface{}{"book_id": 999, "member_id": member.MemID}
	for k, v := range base {
		payload[k] = v
	}
	resp := doRequest(t, app, "POST", "/issuance", payload, testAPIKey)
	require.Equal(t, 400, resp.StatusCode)
	var body map[string]string
	decodeJSON(t, resp, &body)
	assert.Equal(t, "Invalid book ID", body["error"])

	payload = map[string]interface{}{"book_id": book.BookID, "member_id": 999}
	for k, v := range base {
		payload[k] = v
	}
	resp = doRequest(t, app, "POST", "/issuance", payload, testAPIKey)
	require.Equal(t, 400, resp.StatusCode)
	decodeJSON(t, resp, &body)
	assert.Equal(t, "Invalid member ID", body["error"])

	// Nothing persisted
	var count int64
	db.Model(&models.Issuance{}).Count(&count)
	assert.Zero(t, count)
}

func TestIssuanceCreateMissingFields(t *testing.T) {
	app, db := newTestApp(t)
	cat := seedCategory(t, db)
	col := seedCollection(t, db)
	member := seedMember(t, db, "Borrower")
	book := seedBook(t, db, "Lend Me", cat.CatID, col.CollectionID)

	resp := doRequest(t, app, "POST", "/issuance", map[string]interface{}{
		"book_id":   book.BookID,
		"member_id": member.MemID,
	}, testAPIKey)
	assert.Equal(t, 400, resp.StatusCode)
}

func TestIssuanceListAndGetEmbedBookAndMember(t *testing.T) {
	app, db := newTestApp(t)
	cat := seedCategory(t, db)
	col := seedCollection(t, db)
	member := seedMember(t, db, "Reader")
	book := seedBook(t, db, "Read Me", cat.CatID, col.CollectionID)
	seedIssuance(t, db, book.BookID, member.MemID, "pending")

	resp := doRequest(t, app, "GET", "/issuance", nil, "")
	require.Equal(t, 200, resp.StatusCode)

	var issuances []models.Issuance
	decodeJSON(t, resp, &issuances)
	require.Len(t, issuances, 1)
	require.NotNil(t, issuances[0].Book)
	require.NotNil(t, issuances[0].Member)
	assert.Equal(t, book.BookName, issuances[0].Book.BookName)
	assert.Equal(t, member.MemName, issuances[0].Member.MemName)

	resp = doRequest(t, app, "GET", "/issuance/1", nil, "")
	require.Equal(t, 200, resp.StatusCode)

	var fetched models.Issuance
	decodeJSON(t, resp, &fetched)
	require.NotNil(t, fetched.Book)
	require.NotNil(t, fetched.Member)
}

func TestIssuanceUpdateKeepsIssuanceDate(t *testing.T) {
	app, db := newTestApp(t)
	cat := seedCategory(t, db)
	col := seedCollection(t, db)
	member := seedMember(t, db, "Reader")
	book := seedBook(t, db, "Read Me", cat.CatID, col.CollectionID)
	issuance := seedIssuance(t, db, book.BookID, member.MemID, "pending")

	resp := doRequest(t, app, "PUT", "/issuance/1", map[string]interface{}{
		"issuance_status": "returned",
	}, testAPIKey)
	require.Equal(t, 200, resp.StatusCode)

	var updated models.Issuance
	decodeJSON(t, resp, &updated)
	assert.Equal(t, "returned", updated.IssuanceStatus)
	assert.Equal(t, issuance.IssuanceDate.Unix(), updated.IssuanceDate.Unix())
	assert.Equal(t, issuance.TargetReturnDate.Unix(), updated.TargetReturnDate.Unix())
}

func TestIssuanceUpdateRevalidatesReferences(t *testing.T) {
	app, db := newTestApp(t)
	cat := seedCategory(t, db)
	col := seedCollection(t, db)
	member := seedMember(t, db, "Reader")
	book := seedBook(t, db, "Read Me", cat.CatID, col.CollectionID)
	seedIssuance(t, db, book.BookID, member.MemID, "pending")

	resp := doRequest(t, app, "PUT", "/issuance/1", map[string]interface{}{
		"book_id": 999,
	}, testAPIKey)
	require.Equal(t, 400, resp.StatusCode)

	var body map[string]string
	decodeJSON(t, resp, &body)
	assert.Equal(t, "Invalid book ID", body["error"])
}

func TestIssuanceDelete(t *testing.T) {
	app, db := newTestApp(t)
	cat := seedCategory(t, db)
	col := seedCollection(t, db)
	member := seedMember(t, db, "Reader")
	book := seedBook(t, db, "Read Me", cat.CatID, col.CollectionID)
	seedIssuance(t, db, book.BookID, member.MemID, "pending")

	resp := doRequest(t, app, "DELETE", "/issuance/xyz", nil, testAPIKey)
	assert.Equal(t, 400, resp.StatusCode)

	resp = doRequest(t, app, "DELETE", "/issuance/50", nil, testAPIKey)
	assert.Equal(t, 404, resp.StatusCode)

	resp = doRequest(t, app, "DELETE", "/issuance/1", nil, testAPIKey)
	require.Equal(t, 200, resp.StatusCode)

	resp = doRequest(t, app, "GET", "/issuance/1", nil, "")
	assert.Equal(t, 404, resp.StatusCode)
}
