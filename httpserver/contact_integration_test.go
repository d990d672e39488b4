package httpserver_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"contacthub/contact"
	"contacthub/httpserver"
	"contacthub/inmem"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestContactLifecycle drives the full contact flow through the HTTP surface
// against the in-memory repository: create, list, filter, favorite, update,
// export, delete.
func TestContactLifecycle(t *testing.T) {
	server := httpserver.Default(testConfig())
	server.ContactService = contact.NewUsecase(inmem.NewContactRepository())

	do := func(method, path, body string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(method, path, strings.NewReader(body))
		if body != "" {
			req.Header.Set(contentTypeHeader, "application/json")
		}
		rec := httptest.NewRecorder()
		server.Router.ServeHTTP(rec, req)
		return rec
	}

	// Create two contacts.
	rec := do(http.MethodPost, "/api/contacts",
		`{"name":"Alice Nguyen","email":"alice@acme.io","company":"Acme","category":"work"}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var alice contact.Contact
	decodeAPIResult(t, decodeAPIResponse(t, rec).Result, &alice)
	require.NotEmpty(t, alice.ID)

	rec = do(http.MethodPost, "/api/contacts",
		`{"name":"Bob Tran","email":"bob@home.net"}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var bob contact.Contact
	decodeAPIResult(t, decodeAPIResponse(t, rec).Result, &bob)
	assert.Equal(t, contact.CategoryPersonal, bob.Category, "missing category should default")

	// Listing returns both, newest first.
	rec = do(http.MethodGet, "/api/contacts", "")
	require.Equal(t, http.StatusOK, rec.Code)
	listed := decodeContactList(t, rec)
	require.Len(t, listed, 2)
	assert.Equal(t, bob.ID, listed[0].ID)
	assert.Equal(t, alice.ID, listed[1].ID)

	// Search filter narrows by company substring.
	rec = do(http.MethodGet, "/api/contacts?search=acme", "")
	require.Equal(t, http.StatusOK, rec.Code)
	listed = decodeContactList(t, rec)
	require.Len(t, listed, 1)
	assert.Equal(t, alice.ID, listed[0].ID)

	// Mark Alice as favorite, then ask for favorites only.
	rec = do(http.MethodPut, "/api/contacts/"+alice.ID+"/favorite", `{"is_favorite":true}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = do(http.MethodGet, "/api/contacts?favorites=true", "")
	require.Equal(t, http.StatusOK, rec.Code)
	listed = decodeContactList(t, rec)
	require.Len(t, listed, 1)
	assert.Equal(t, alice.ID, listed[0].ID)
	assert.True(t, listed[0].IsFavorite)

	// Update keeps the id and the favorite flag follows the payload.
	rec = do(http.MethodPut, "/api/contacts/"+bob.ID,
		`{"name":"Bob Tran","email":"bob@work.example","company":"Initech","category":"work"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var updated contact.Contact
	decodeAPIResult(t, decodeAPIResponse(t, rec).Result, &updated)
	assert.Equal(t, bob.ID, updated.ID)
	assert.Equal(t, "bob@work.example", updated.Email)

	// CSV export carries every contact.
	rec = do(http.MethodGet, "/api/contacts/export", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "contacts.csv")
	assert.Contains(t, rec.Body.String(), `"Alice Nguyen"`)
	assert.Contains(t, rec.Body.String(), `"Bob Tran"`)

	// Delete Alice; she disappears from the listing and a repeat delete 404s.
	rec = do(http.MethodDelete, "/api/contacts/"+alice.ID, "")
	require.Equal(t, http.StatusOK, rec.Code)

	rec = do(http.MethodGet, "/api/contacts", "")
	require.Equal(t, http.StatusOK, rec.Code)
	listed = decodeContactList(t, rec)
	require.Len(t, listed, 1)
	assert.Equal(t, bob.ID, listed[0].ID)

	rec = do(http.MethodDelete, "/api/contacts/"+alice.ID, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "100404", decodeAPIResponse(t, rec).Code)
}

func decodeContactList(t *testing.T, rec *httptest.ResponseRecorder) []contact.Contact {
	t.Helper()
	var result struct {
		Data []contact.Contact `json:"data"`
	}
	decodeAPIResult(t, decodeAPIResponse(t, rec).Result, &result)
	return result.Data
}
