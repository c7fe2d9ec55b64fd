package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shirleys-kitchen/backend/config"
	"github.com/shirleys-kitchen/backend/internal/database"
	"github.com/shirleys-kitchen/backend/internal/model"
	"github.com/shirleys-kitchen/backend/internal/service"
	"github.com/shirleys-kitchen/backend/internal/store"
)

func newTestServer(t *testing.T, advisory string) *Server {
	t.Helper()
	gin.SetMode(gin.TestMode)

	st := store.New(database.NewMemoryStore(), []model.Recipe{
		{ID: "seed-1", Title: "Apple Pie", Category: model.CategoryDesserts, AddedBy: "Nan"},
	})
	search := service.NewSearchServiceWithLatency(0, 0)
	st.OnChange(search.UpdateIndex)
	require.NoError(t, st.Load(context.Background()))

	return NewServer(Deps{
		Config: &config.Config{
			StorageBackend: config.StorageSQLite,
			CORSOrigin:     "http://localhost:5173",
		},
		Store:           st,
		Search:          search,
		StorageAdvisory: advisory,
	})
}

func get(srv *Server, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, req)
	return w
}

func TestHealthEndpoint(t *testing.T) {
	srv := newTestServer(t, "")

	w := get(srv, "/api/v1/health")
	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "ok", resp["status"])
	assert.Equal(t, "sqlite", resp["storage"])
	assert.Equal(t, float64(1), resp["recipes"])
	assert.NotContains(t, resp, "storage_advisory")
}

func TestHealthEndpointSurfacesAdvisory(t *testing.T) {
	srv := newTestServer(t, "persisted data was corrupted")

	w := get(srv, "/api/v1/health")
	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "persisted data was corrupted", resp["storage_advisory"])
}

func TestRecipeRoutesAreWired(t *testing.T) {
	srv := newTestServer(t, "")

	assert.Equal(t, http.StatusOK, get(srv, "/api/v1/recipes").Code)
	assert.Equal(t, http.StatusOK, get(srv, "/api/v1/categories").Code)
	assert.Equal(t, http.StatusOK, get(srv, "/api/v1/search?q=apple").Code)
}

func TestAssistUnconfiguredAnswers503(t *testing.T) {
	srv := newTestServer(t, "")

	req := httptest.NewRequest(http.MethodPost, "/api/v1/recipes/seed-1/assist/tips", nil)
	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, req)
	require.Equal(t, http.StatusServiceUnavailable, w.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, true, resp["reconfigure"])
}
