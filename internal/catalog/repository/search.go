package repository

import (
	"context"
	"strings"

	"marketplace-catalog/internal/catalog/outcome"
	"marketplace-catalog/internal/catalog/view"
	"marketplace-catalog/internal/common/logger"
	"marketplace-catalog/internal/common/metrics"
)

type searchRepository struct {
	gateway CatalogGateway
	log     logger.Logger
}

func NewSearchRepository(gateway CatalogGateway, log logger.Logger) SearchRepository {
	return &searchRepository{
		gateway: gateway,
		log:     log.WithFields(map[string]interface{}{"component": "search-repository"}),
	}
}

// GetSearchResults runs the gateway search and maps the raw list. Entries
// without id, title or price are dropped; filtering never turns a
// successful call into a failure, so an all-invalid response is simply an
// empty Success. Gateway failures are forwarded unchanged.
func (r *searchRepository) GetSearchResults(ctx context.Context, query string) outcome.Outcome[[]view.ListItem] {
	result := r.gateway.Search(ctx, query)
	metrics.RepositoryOutcomes.WithLabelValues("search", result.Kind().String()).Inc()

	if !result.IsSuccess() {
		return outcome.ForwardFailure[[]view.ListItem](result)
	}

	raw := result.Value().Results
	items := make([]view.ListItem, 0, len(raw))
	for _, entry := range raw {
		if entry == nil || entry.ID == nil || entry.Price == nil {
			continue
		}
		if entry.Title == nil || strings.TrimSpace(*entry.Title) == "" {
			continue
		}
		items = append(items, view.ListItemFromSearchResult(entry))
	}

	r.log.Debug("search results mapped", map[string]interface{}{
		"raw":  len(raw),
		"kept": len(items),
	})
	return outcome.Success(items)
}
