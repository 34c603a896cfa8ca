package api

import (
	"context"
	"encoding/json"
	"net/http"

	"marketplace-catalog/internal/catalog/fetch"
	"marketplace-catalog/internal/catalog/outcome"
	"marketplace-catalog/internal/common/logger"
)

// Gateway wraps the fetch transport with typed operations. It is stateless
// between calls and never lets an error escape as anything other than a
// failure outcome.
type Gateway struct {
	fetcher fetch.Fetcher
	log     logger.Logger
}

func NewGateway(fetcher fetch.Fetcher, log logger.Logger) *Gateway {
	return &Gateway{
		fetcher: fetcher,
		log:     log.WithFields(map[string]interface{}{"component": "api-gateway"}),
	}
}

// Search queries the catalog for items matching the query text.
func (g *Gateway) Search(ctx context.Context, query string) outcome.Outcome[SearchResponse] {
	return call[SearchResponse](ctx, g, fetch.PathSearch, map[string]string{fetch.ParamQuery: query})
}

// ItemDetails looks up a single item by id.
func (g *Gateway) ItemDetails(ctx context.Context, id string) outcome.Outcome[ItemDetailsResponse] {
	return call[ItemDetailsResponse](ctx, g, fetch.PathItems, map[string]string{fetch.ParamIDs: id})
}

// ItemDescription fetches the plain-text description of an item.
func (g *Gateway) ItemDescription(ctx context.Context, id string) outcome.Outcome[ItemDescriptionResponse] {
	return call[ItemDescriptionResponse](ctx, g, fetch.PathItemDescription, map[string]string{fetch.ParamIDs: id})
}

// call performs one request and folds transport errors, non-success status
// codes and decode errors into the outcome taxonomy.
func call[T any](ctx context.Context, g *Gateway, path string, params map[string]string) outcome.Outcome[T] {
	resp, err := g.fetcher.Fetch(ctx, path, params)
	if err != nil {
		g.log.Error("transport error", map[string]interface{}{"path": path, "error": err.Error()})
		return outcome.GenericFailure[T](err.Error())
	}

	if !resp.IsSuccess() {
		return outcome.NetworkFailure[T](http.StatusText(resp.StatusCode), resp.StatusCode)
	}

	var payload T
	if err := json.Unmarshal(resp.Body, &payload); err != nil {
		g.log.Error("decode error", map[string]interface{}{"path": path, "error": err.Error()})
		return outcome.GenericFailure[T](err.Error())
	}
	return outcome.Success(payload)
}
