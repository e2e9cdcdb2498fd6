package handlers_test

import (
	"testing"
	"time"

	"shelftrack/internal/adapters/persistence/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContactCreate(t *testing.T) {
	app, _ := newTestApp(t)

	payload := map[string]interface{}{
		"name":    "Visitor",
		"email":   "visitor@example.com",
		"message": "When do you open?",
	}

	// Mutating route: key required
	resp := doRequest(t, app, "POST", "/contacts", payload, "")
	require.Equal(t, 401, resp.StatusCode)

	resp = doRequest(t, app, "POST", "/contacts", payload, testAPIKey)
	require.Equal(t, 201, resp.StatusCode)

	var created models.Contact
	decodeJSON(t, resp, &created)
	assert.NotZero(t, created.ContactID)
	assert.Equal(t, "Visitor", created.Name)
	assert.WithinDuration(t, time.Now(), created.CreatedAt, 5*time.Second)
}

func TestContactCreateMissingFields(t *testing.T) {
	app, _ := newTestApp(t)

	resp := doRequest(t, app, "POST", "/contacts", map[string]interface{}{
		"name": "No Message",
	}, testAPIKey)
	assert.Equal(t, 400, resp.StatusCode)
}

func TestContactListNewestFirst(t *testing.T) {
	app, db := newTestApp(t)

	older := &models.Contact{
		Name:      "Early Bird",
		Email:     "early@example.com",
		Message:   "First message",
		CreatedAt: time.Now().Add(-2 * time.Hour),
	}
	require.NoError(t, db.Create(older).Error)

	newer := &models.Contact{
		Name:      "Night Owl",
		Email:     "late@example.com",
		Message:   "Second message",
		CreatedAt: time.Now().Add(-1 * time.Hour),
	}
	require.NoError(t, db.Create(newer).Error)

	resp := doRequest(t, app, "GET", "/contacts", nil, "")
	require.Equal(t, 200, resp.StatusCode)

	var contacts []models.Contact
	decodeJSON(t, resp, &contacts)
	require.Len(t, contacts, 2)
	assert.Equal(t, "Night Owl", contacts[0].Name)
	assert.Equal(t, "Early Bird", contacts[1].Name)
}

func TestContactGetAndDelete(t *testing.T) {
	app, db := newTestApp(t)
	contact := &models.Contact{
		Name:    "One Off",
		Email:   "oneoff@example.com",
		Message: "Hello",
	}
	require.NoError(t, db.Create(contact).Error)

	resp := doRequest(t, app, "GET", "/contacts/abc", nil, "")
	assert.Equal(t, 400, resp.StatusCode)

	resp = doRequest(t, app, "GET", "/contacts/9", nil, "")
	assert.Equal(t, 404, resp.StatusCode)

	resp = doRequest(t, app, "GET", "/contacts/1", nil, "")
	require.Equal(t, 200, resp.StatusCode)

	var fetched models.Contact
	decodeJSON(t, resp, &fetched)
	assert.Equal(t, "One Off", fetched.Name)

	// Delete is a mutating route and requires the key
	resp = doRequest(t, app, "DELETE", "/contacts/1", nil, "")
	assert.Equal(t, 401, resp.StatusCode)

	resp = doRequest(t, app, "DELETE", "/contacts/1", nil, testAPIKey)
	require.Equal(t, 200, resp.StatusCode)

	resp = doRequest(t, app, "GET", "/contacts/1", nil, "")
	assert.Equal(t, 404, resp.StatusCode)
}
