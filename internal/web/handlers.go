// Package web exposes the catalog over a small JSON API. The two endpoints
// stand in for the search-result and product-detail screens and carry their
// presentation policy: a search 404 is an empty state, a detail 404 is a
// not-found response, everything else is an error payload.
package web

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"marketplace-catalog/internal/catalog/outcome"
	"marketplace-catalog/internal/catalog/repository"
	"marketplace-catalog/internal/catalog/view"
	"marketplace-catalog/internal/common/logger"
)

// ErrorResponse is the JSON error body.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

// SearchResult is the JSON body of a search response.
type SearchResult struct {
	Query   string          `json:"query"`
	Results []view.ListItem `json:"results"`
	Message string          `json:"message,omitempty"`
}

type Handler struct {
	search repository.SearchRepository
	detail repository.ProductDetailRepository
	log    logger.Logger
}

func NewHandler(search repository.SearchRepository, detail repository.ProductDetailRepository, log logger.Logger) *Handler {
	return &Handler{
		search: search,
		detail: detail,
		log:    log.WithFields(map[string]interface{}{"component": "web"}),
	}
}

// NewRouter builds the gin engine with all routes registered.
func NewRouter(h *Handler) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/healthz", h.Health)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.GET("/api/search", h.Search)
	r.GET("/api/items/:id", h.ItemDetail)
	return r
}

func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}

// Search handles GET /api/search?q=...
func (h *Handler) Search(c *gin.Context) {
	query := c.Query("q")

	result := h.search.GetSearchResults(c.Request.Context(), query)
	if result.IsSuccess() {
		c.JSON(http.StatusOK, SearchResult{Query: query, Results: result.Value()})
		return
	}

	msg, code, _ := result.Failure()

	// Screen policy: an upstream 404 renders as the empty state, not an
	// error banner.
	if result.Kind() == outcome.KindNetworkFailure && code == http.StatusNotFound {
		c.JSON(http.StatusOK, SearchResult{
			Query:   query,
			Results: []view.ListItem{},
			Message: "no products found",
		})
		return
	}

	h.respondFailure(c, result.Kind(), msg, code)
}

// ItemDetail handles GET /api/items/:id
func (h *Handler) ItemDetail(c *gin.Context) {
	id := c.Param("id")

	result := h.detail.GetProductDetails(c.Request.Context(), id)
	if result.IsSuccess() {
		c.JSON(http.StatusOK, result.Value())
		return
	}

	msg, code, _ := result.Failure()

	// Screen policy: both transport 404s and payload-validation misses
	// surface as a product not found.
	notFound := code == http.StatusNotFound ||
		(result.Kind() == outcome.KindGenericFailure && msg == repository.MsgDetailsNotFound)
	if notFound {
		c.JSON(http.StatusNotFound, ErrorResponse{
			Error:   "PRODUCT_NOT_FOUND",
			Message: "product not found",
			Details: msg,
		})
		return
	}

	h.respondFailure(c, result.Kind(), msg, code)
}

func (h *Handler) respondFailure(c *gin.Context, kind outcome.Kind, msg string, code int) {
	if kind == outcome.KindNetworkFailure && code != outcome.NoCode {
		c.JSON(code, ErrorResponse{
			Error:   "UPSTREAM_ERROR",
			Message: "catalog request failed",
			Details: msg,
		})
		return
	}

	h.log.Error("catalog failure", map[string]interface{}{"message": msg})
	c.JSON(http.StatusBadGateway, ErrorResponse{
		Error:   "CATALOG_UNAVAILABLE",
		Message: "catalog request failed",
		Details: msg,
	})
}
