package handler_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/travel-planner/backend/internal/catalog"
	"github.com/pkordes/travel-planner/backend/internal/handler"
)

// The destination handlers are read-only over static data, so they are tested
// against the real catalog instead of a mock.
func newDestinationHandler() http.Handler {
	return handler.NewServer(nil, nil, catalog.Default(), nil).Routes()
}

func TestListDestinations_200_All(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/destinations", nil)
	rec := httptest.NewRecorder()

	newDestinationHandler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp []map[string]any
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Len(t, resp, 6)
	assert.Equal(t, "Tokyo", resp[0]["name"])
}

func TestListDestinations_200_Search(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/destinations?search=tokyo", nil)
	rec := httptest.NewRecorder()

	newDestinationHandler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp []map[string]any
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	require.Len(t, resp, 1)
	assert.Equal(t, "Tokyo", resp[0]["name"])
}

func TestListDestinations_200_CountryFacet(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/destinations?country=Japan", nil)
	rec := httptest.NewRecorder()

	newDestinationHandler().ServeHTTP(rec, req)

	var resp []map[string]any
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	require.Len(t, resp, 1)
	assert.Equal(t, "Japan", resp[0]["country"])
}

func TestListDestinations_200_NoMatchIsEmptyArray(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/destinations?search=atlantis", nil)
	rec := httptest.NewRecorder()

	newDestinationHandler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, "[]", rec.Body.String())
}

func TestListCountries_200(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/destinations/countries", nil)
	rec := httptest.NewRecorder()

	newDestinationHandler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp []string
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, []string{"France", "Greece", "Indonesia", "Japan", "UAE", "USA"}, resp)
}
