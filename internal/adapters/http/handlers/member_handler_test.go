package handlers_test

import (
	"testing"

	"shelftrack/internal/adapters/persistence/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemberCreateAndGet(t *testing.T) {
	app, _ := newTestApp(t)

	payload := map[string]interface{}{
		"mem_name":  "Ada Lovelace",
		"mem_phone": "555-0199",
		"mem_email": "ada@example.com",
	}
	resp := doRequest(t, app, "POST", "/member", payload, testAPIKey)
	require.Equal(t, 201, resp.StatusCode)

	var created models.Member
	decodeJSON(t, resp, &created)
	assert.NotZero(t, created.MemID)
	assert.Equal(t, "Ada Lovelace", created.MemName)
	assert.Equal(t, "555-0199", created.MemPhone)
	assert.Equal(t, "ada@example.com", created.MemEmail)

	resp = doRequest(t, app, "GET", "/member/1", nil, "")
	require.Equal(t, 200, resp.StatusCode)

	var fetched models.Member
	decodeJSON(t, resp, &fetched)
	assert.Equal(t, created, fetched)
}

func TestMemberCreateMissingFields(t *testing.T) {
	app, _ := newTestApp(t)

	resp := doRequest(t, app, "POST", "/member", map[string]interface{}{
		"mem_name": "No Phone",
	}, testAPIKey)
	assert.Equal(t, 400, resp.StatusCode)

	var body map[string]string
	decodeJSON(t, resp, &body)
	assert.Contains(t, body, "error")
}

func TestMemberList(t *testing.T) {
	app, db := newTestApp(t)
	seedMember(t, db, "First Member")
	seedMember(t, db, "Second Member")

	resp := doRequest(t, app, "GET", "/member", nil, "")
	require.Equal(t, 200, resp.StatusCode)

	var members []models.Member
	decodeJSON(t, resp, &members)
	assert.Len(t, members, 2)
}

func TestMemberGetInvalidID(t *testing.T) {
	app, _ := newTestApp(t)

	resp := doRequest(t, app, "GET", "/member/abc", nil, "")
	assert.Equal(t, 400, resp.StatusCode)
}

func TestMemberGetNotFound(t *testing.T) {
	app, _ := newTestApp(t)

	resp := doRequest(t, app, "GET", "/member/999", nil, "")
	assert.Equal(t, 404, resp.StatusCode)
}

func TestMemberPartialUpdate(t *testing.T) {
	app, db := newTestApp(t)
	member := seedMember(t, db, "Original Name")

	payload := map[string]interface{}{"mem_name": "Renamed"}

	resp := doRequest(t, app, "PUT", "/member/1", payload, testAPIKey)
	require.Equal(t, 200, resp.StatusCode)

	var updated models.Member
	decodeJSON(t, resp, &updated)
	assert.Equal(t, "Renamed", updated.MemName)
	assert.Equal(t, member.MemPhone, updated.MemPhone)
	assert.Equal(t, member.MemEmail, updated.MemEmail)

	// Same payload twice yields the same final state
	resp = doRequest(t, app, "PUT", "/member/1", payload, testAPIKey)
	require.Equal(t, 200, resp.StatusCode)

	var again models.Member
	decodeJSON(t, resp, &again)
	assert.Equal(t, updated, again)
}

func TestMemberUpdateNotFound(t *testing.T) {
	app, _ := newTestApp(t)

	resp := doRequest(t, app, "PUT", "/member/42", map[string]interface{}{
		"mem_name": "Ghost",
	}, testAPIKey)
	assert.Equal(t, 404, resp.StatusCode)
}

func TestMemberDelete(t *testing.T) {
	app, db := newTestApp(t)
	seedMember(t, db, "Doomed Member")

	resp := doRequest(t, app, "DELETE", "/member/1", nil, testAPIKey)
	require.Equal(t, 200, resp.StatusCode)

	var body map[string]string
	decodeJSON(t, resp, &body)
	assert.Equal(t, "Member deleted successfully", body["message"])

	resp = doRequest(t, app, "GET", "/member/1", nil, "")
	assert.Equal(t, 404, resp.StatusCode)

	resp = doRequest(t, app, "GET", "/member", nil, "")
	var members []models.Member
	decodeJSON(t, resp, &members)
	assert.Empty(t, members)
}

func TestMemberDeleteWithIssuanceHistoryRejected(t *testing.T) {
	app, db := newTestApp(t)
	cat := seedCategory(t, db)
	col := seedCollection(t, db)
	member := seedMember(t, db, "Borrower")
	book := seedBook(t, db, "Borrowed Book", cat.CatID, col.CollectionID)
	seedIssuance(t, db, book.BookID, member.MemID, "pending")

	resp := doRequest(t, app, "DELETE", "/member/1", nil, testAPIKey)
	assert.Equal(t, 400, resp.StatusCode)

	// Member must survive the rejected delete
	resp = doRequest(t, app, "GET", "/member/1", nil, "")
	assert.Equal(t, 200, resp.StatusCode)
}

func TestMemberMutationsRequireAPIKey(t *testing.T) {
	app, _ := newTestApp(t)

	payload := map[string]interface{}{
		"mem_name":  "Keyless",
		"mem_phone": "555-0000",
		"mem_email": "keyless@example.com",
	}

	resp := doRequest(t, app, "POST", "/member", payload, "")
	assert.Equal(t, 401, resp.StatusCode)

	resp = doRequest(t, app, "POST", "/member", payload, "wrong-key")
	assert.Equal(t, 403, resp.StatusCode)

	resp = doRequest(t, app, "POST", "/member", payload, testAPIKey)
	assert.Equal(t, 201, resp.StatusCode)

	// Reads stay public
	resp = doRequest(t, app, "GET", "/member", nil, "")
	assert.Equal(t, 200, resp.StatusCode)
}
