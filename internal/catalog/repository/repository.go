// Package repository orchestrates gateway calls per use case and merges
// their outcomes into a single mapped view model or failure. Filtering and
// payload validation live here; transport concerns stay in the gateway.
package repository

import (
	"context"

	"marketplace-catalog/internal/catalog/api"
	"marketplace-catalog/internal/catalog/outcome"
	"marketplace-catalog/internal/catalog/view"
)

// CatalogGateway is the slice of the API gateway the repositories consume.
type CatalogGateway interface {
	Search(ctx context.Context, query string) outcome.Outcome[api.SearchResponse]
	ItemDetails(ctx context.Context, id string) outcome.Outcome[api.ItemDetailsResponse]
	ItemDescription(ctx context.Context, id string) outcome.Outcome[api.ItemDescriptionResponse]
}

// SearchRepository resolves a query into a filtered, mapped result list.
type SearchRepository interface {
	GetSearchResults(ctx context.Context, query string) outcome.Outcome[[]view.ListItem]
}

// ProductDetailRepository resolves an item id into a merged detail model.
type ProductDetailRepository interface {
	GetProductDetails(ctx context.Context, id string) outcome.Outcome[view.DetailModel]
}
