package screens

import (
	"context"

	"marketplace-catalog/internal/catalog/repository"
	"marketplace-catalog/internal/catalog/state"
	"marketplace-catalog/internal/catalog/view"
	"marketplace-catalog/internal/common/logger"
)

// DetailController drives the product-detail screen for one item id. It has
// no special error policy of its own; the consuming surface decides how to
// present a given code (e.g. navigate back on 404).
type DetailController struct {
	repo   repository.ProductDetailRepository
	store  *state.Store[view.DetailModel]
	log    logger.Logger
	itemID string

	ctx    context.Context
	cancel context.CancelFunc
}

func NewDetailController(repo repository.ProductDetailRepository, itemID string, log logger.Logger) *DetailController {
	ctx, cancel := context.WithCancel(context.Background())
	return &DetailController{
		repo:   repo,
		store:  state.NewStore[view.DetailModel](),
		log:    log.WithFields(map[string]interface{}{"screen": "product-detail", "itemId": itemID}),
		itemID: itemID,
		ctx:    ctx,
		cancel: cancel,
	}
}

func (c *DetailController) ItemID() string {
	return c.itemID
}

// Store exposes the screen's state for rendering and subscriptions.
func (c *DetailController) Store() *state.Store[view.DetailModel] {
	return c.store
}

// FetchDetail re-enters Loading immediately, then resolves the item in the
// background.
func (c *DetailController) FetchDetail() {
	c.store.Publish(state.Loading[view.DetailModel]())

	go func() {
		result := c.repo.GetProductDetails(c.ctx, c.itemID)
		if c.ctx.Err() != nil {
			return
		}
		c.store.Publish(state.FromOutcome(result))
	}()
}

// Close cancels any in-flight fetch and destroys the store.
func (c *DetailController) Close() {
	c.cancel()
	c.store.Close()
}
