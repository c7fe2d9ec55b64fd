package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/shirleys-kitchen/backend/internal/database"
	"github.com/shirleys-kitchen/backend/internal/model"
	"github.com/shirleys-kitchen/backend/internal/service"
	"github.com/shirleys-kitchen/backend/internal/store"
)

func testSeed() []model.Recipe {
	return []model.Recipe{
		{
			ID: "seed-1", Title: "Apple Pie", Category: model.CategoryDesserts,
			Ingredients:  []string{"6 apples", "1 cup sugar"},
			Instructions: []string{"Peel apples.", "Bake."},
			AddedBy:      "Nan", Rating: 5, CookTime: "1 hour", Timestamp: 300,
		},
		{
			ID: "seed-2", Title: "Banana Bread", Category: model.CategoryBreadsMuffins,
			Ingredients:  []string{"3 bananas", "2 cups flour"},
			Instructions: []string{"Mash bananas.", "Bake."},
			AddedBy:      "Wade", Rating: 4, CookTime: "45 mins", Timestamp: 100,
		},
	}
}

type testEnv struct {
	router *gin.Engine
	store  *store.RecipeStore
	search *service.SearchService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	st := store.New(database.NewMemoryStore(), testSeed())
	search := service.NewSearchServiceWithLatency(0, 0)
	st.OnChange(search.UpdateIndex)
	require.NoError(t, st.Load(context.Background()))

	router := gin.New()
	v1 := router.Group("/api/v1")
	NewRecipeHandler(st).RegisterRoutes(v1)
	NewDataHandler(st).RegisterRoutes(v1)
	NewSearchHandler(search).RegisterRoutes(v1)

	return &testEnv{router: router, store: st, search: search}
}

func (e *testEnv) do(t *testing.T, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), v))
}
