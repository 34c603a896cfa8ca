package web

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"marketplace-catalog/internal/catalog/outcome"
	"marketplace-catalog/internal/catalog/repository"
	"marketplace-catalog/internal/catalog/view"
	"marketplace-catalog/internal/common/logger"
	"marketplace-catalog/internal/common/money"
)

type stubSearchRepo struct {
	result outcome.Outcome[[]view.ListItem]
}

func (s *stubSearchRepo) GetSearchResults(context.Context, string) outcome.Outcome[[]view.ListItem] {
	return s.result
}

type stubDetailRepo struct {
	result outcome.Outcome[view.DetailModel]
}

func (s *stubDetailRepo) GetProductDetails(context.Context, string) outcome.Outcome[view.DetailModel] {
	return s.result
}

func newTestRouter(t *testing.T, search *stubSearchRepo, detail *stubDetailRepo) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	return NewRouter(NewHandler(search, detail, logger.NewTestLogger(t)))
}

func doGet(router *gin.Engine, target string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	router.ServeHTTP(w, req)
	return w
}

func TestHealth(t *testing.T) {
	router := newTestRouter(t, &stubSearchRepo{}, &stubDetailRepo{})
	w := doGet(router, "/healthz")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestSearch_Success(t *testing.T) {
	items := []view.ListItem{
		{ID: "1", Title: "Produto 1", Price: money.Monetary(10.0)},
	}
	router := newTestRouter(t, &stubSearchRepo{result: outcome.Success(items)}, &stubDetailRepo{})

	w := doGet(router, "/api/search?q=notebook")

	require.Equal(t, http.StatusOK, w.Code)
	var body SearchResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "notebook", body.Query)
	require.Len(t, body.Results, 1)
	assert.Equal(t, "Produto 1", body.Results[0].Title)
	assert.Empty(t, body.Message)
}

func TestSearch_NotFoundRendersEmptyState(t *testing.T) {
	router := newTestRouter(t,
		&stubSearchRepo{result: outcome.NetworkFailure[[]view.ListItem]("Not Found", 404)},
		&stubDetailRepo{})

	w := doGet(router, "/api/search?q=missing")

	require.Equal(t, http.StatusOK, w.Code)
	var body SearchResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Empty(t, body.Results)
	assert.Equal(t, "no products found", body.Message)
}

func TestSearch_UpstreamErrorPassesStatusThrough(t *testing.T) {
	router := newTestRouter(t,
		&stubSearchRepo{result: outcome.NetworkFailure[[]view.ListItem]("Bad Request", 400)},
		&stubDetailRepo{})

	w := doGet(router, "/api/search")

	require.Equal(t, http.StatusBadRequest, w.Code)
	var body ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "UPSTREAM_ERROR", body.Error)
	assert.Equal(t, "Bad Request", body.Details)
}

func TestSearch_GenericFailureIsBadGateway(t *testing.T) {
	router := newTestRouter(t,
		&stubSearchRepo{result: outcome.GenericFailure[[]view.ListItem]("decode error")},
		&stubDetailRepo{})

	w := doGet(router, "/api/search?q=broken")

	require.Equal(t, http.StatusBadGateway, w.Code)
	var body ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "CATALOG_UNAVAILABLE", body.Error)
}

func TestItemDetail_Success(t *testing.T) {
	model := view.DetailModel{
		ID:     "MLB123",
		Title:  "Produto Teste",
		Price:  money.Monetary(100.0),
		Images: []string{"https://img/1.jpg"},
	}
	router := newTestRouter(t, &stubSearchRepo{}, &stubDetailRepo{result: outcome.Success(model)})

	w := doGet(router, "/api/items/MLB123")

	require.Equal(t, http.StatusOK, w.Code)
	var body view.DetailModel
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "MLB123", body.ID)
	assert.Equal(t, []string{"https://img/1.jpg"}, body.Images)
}

func TestItemDetail_NotFound(t *testing.T) {
	tests := []struct {
		name   string
		result outcome.Outcome[view.DetailModel]
	}{
		{
			name:   "transport 404",
			result: outcome.NetworkFailure[view.DetailModel]("Not Found", 404),
		},
		{
			name:   "payload validation miss",
			result: outcome.GenericFailure[view.DetailModel](repository.MsgDetailsNotFound),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newTestRouter(t, &stubSearchRepo{}, &stubDetailRepo{result: tt.result})

			w := doGet(router, "/api/items/MLB999")

			require.Equal(t, http.StatusNotFound, w.Code)
			var body ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, "PRODUCT_NOT_FOUND", body.Error)
		})
	}
}

func TestItemDetail_OtherGenericFailure(t *testing.T) {
	router := newTestRouter(t, &stubSearchRepo{},
		&stubDetailRepo{result: outcome.GenericFailure[view.DetailModel]("connection refused")})

	w := doGet(router, "/api/items/MLB123")

	require.Equal(t, http.StatusBadGateway, w.Code)
}
