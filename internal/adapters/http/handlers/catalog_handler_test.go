package handlers_test

import (
	"testing"

	"shelftrack/internal/adapters/persistence/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootRoute(t *testing.T) {
	app, _ := newTestApp(t)

	resp := doRequest(t, app, "GET", "/", nil, "")
	require.Equal(t, 200, resp.StatusCode)

	var body map[string]string
	decodeJSON(t, resp, &body)
	assert.Equal(t, "Library Management API is running!", body["message"])
}

func TestUnmatchedRouteReturns404(t *testing.T) {
	app, _ := newTestApp(t)

	resp := doRequest(t, app, "GET", "/no-such-route", nil, "")
	require.Equal(t, 404, resp.StatusCode)

	var body map[string]string
	decodeJSON(t, resp, &body)
	assert.Equal(t, "Not Found", body["error"])
}

func TestListCategoriesAndCollections(t *testing.T) {
	app, db := newTestApp(t)
	seedCategory(t, db)
	seedCollection(t, db)

	resp := doRequest(t, app, "GET", "/categories", nil, "")
	require.Equal(t, 200, resp.StatusCode)

	var categories []models.Category
	decodeJSON(t, resp, &categories)
	require.Len(t, categories, 1)
	assert.Equal(t, "Technology", categories[0].CatName)

	resp = doRequest(t, app, "GET", "/collections", nil, "")
	require.Equal(t, 200, resp.StatusCode)

	var collections []models.Collection
	decodeJSON(t, resp, &collections)
	require.Len(t, collections, 1)
	assert.Equal(t, "Non-Fiction", collections[0].CollectionName)
}
