package repository

import (
	"context"
	"sync"

	"marketplace-catalog/internal/catalog/api"
	"marketplace-catalog/internal/catalog/outcome"
	"marketplace-catalog/internal/catalog/view"
	"marketplace-catalog/internal/common/logger"
	"marketplace-catalog/internal/common/metrics"
)

// Failure messages of the detail merge contract.
const (
	MsgDetailsNotFound = "Product details not found"
	MsgUnknownError    = "Unknown error occurred"
)

type productDetailRepository struct {
	gateway CatalogGateway
	log     logger.Logger
}

func NewProductDetailRepository(gateway CatalogGateway, log logger.Logger) ProductDetailRepository {
	return &productDetailRepository{
		gateway: gateway,
		log:     log.WithFields(map[string]interface{}{"component": "detail-repository"}),
	}
}

// GetProductDetails issues the details and description calls concurrently
// and merges once both have completed. The merge is a join, not a race:
// neither result is inspected before the other is available.
func (r *productDetailRepository) GetProductDetails(ctx context.Context, id string) outcome.Outcome[view.DetailModel] {
	var (
		details     outcome.Outcome[api.ItemDetailsResponse]
		description outcome.Outcome[api.ItemDescriptionResponse]
		wg          sync.WaitGroup
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		details = r.gateway.ItemDetails(ctx, id)
	}()
	go func() {
		defer wg.Done()
		description = r.gateway.ItemDescription(ctx, id)
	}()
	wg.Wait()

	result := r.merge(details, description)
	metrics.RepositoryOutcomes.WithLabelValues("product_detail", result.Kind().String()).Inc()
	return result
}

func (r *productDetailRepository) merge(
	details outcome.Outcome[api.ItemDetailsResponse],
	description outcome.Outcome[api.ItemDescriptionResponse],
) outcome.Outcome[view.DetailModel] {
	if details.IsSuccess() && description.IsSuccess() {
		payload := details.Value()

		// A nominally successful call without the required fields is a
		// failure, not a success with blanks.
		if payload.ID == nil || *payload.ID == "" ||
			payload.Title == nil || *payload.Title == "" ||
			payload.Price == nil {
			return outcome.GenericFailure[view.DetailModel](MsgDetailsNotFound)
		}

		return outcome.Success(view.DetailFromResponses(payload, description.Value()))
	}

	// Failure precedence: generic failures first (details before
	// description), then network failures in the same order.
	switch {
	case details.Kind() == outcome.KindGenericFailure:
		return outcome.ForwardFailure[view.DetailModel](details)
	case description.Kind() == outcome.KindGenericFailure:
		return outcome.ForwardFailure[view.DetailModel](description)
	case details.Kind() == outcome.KindNetworkFailure:
		return outcome.ForwardFailure[view.DetailModel](details)
	case description.Kind() == outcome.KindNetworkFailure:
		return outcome.ForwardFailure[view.DetailModel](description)
	default:
		return outcome.GenericFailure[view.DetailModel](MsgUnknownError)
	}
}
