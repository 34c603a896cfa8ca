// Package screens holds the per-screen controllers: each owns a state
// store, a cancellation scope tied to its own lifetime, and the
// presentation policy for the failures its screen cares about.
package screens

import (
	"context"
	"net/http"
	"sync"

	"marketplace-catalog/internal/catalog/repository"
	"marketplace-catalog/internal/catalog/state"
	"marketplace-catalog/internal/catalog/view"
	"marketplace-catalog/internal/common/logger"
)

// MessageKeyNoProducts marks the "no products found" empty state the search
// screen renders instead of a hard error banner on a 404.
const MessageKeyNoProducts = "no_products_found"

// SearchController drives the search screen. The query text lives beside
// the UI state, not inside it: user input updates it directly and a fetch
// reads it at call time.
type SearchController struct {
	repo  repository.SearchRepository
	store *state.Store[[]view.ListItem]
	log   logger.Logger

	ctx    context.Context
	cancel context.CancelFunc

	mu    sync.Mutex
	query string
}

func NewSearchController(repo repository.SearchRepository, log logger.Logger) *SearchController {
	ctx, cancel := context.WithCancel(context.Background())
	return &SearchController{
		repo:   repo,
		store:  state.NewStore[[]view.ListItem](),
		log:    log.WithFields(map[string]interface{}{"screen": "search"}),
		ctx:    ctx,
		cancel: cancel,
	}
}

// Store exposes the screen's state for rendering and subscriptions.
func (c *SearchController) Store() *state.Store[[]view.ListItem] {
	return c.store
}

func (c *SearchController) SetQuery(query string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.query = query
}

func (c *SearchController) Query() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.query
}

// FetchResults re-enters Loading immediately, then resolves the current
// query in the background. Concurrent invocations are not deduplicated;
// whichever finishes last owns the terminal state.
func (c *SearchController) FetchResults() {
	c.store.Publish(state.Loading[[]view.ListItem]())

	query := c.Query()
	go func() {
		result := c.repo.GetSearchResults(c.ctx, query)
		if c.ctx.Err() != nil {
			return // screen is gone, stay silent
		}

		if result.IsSuccess() {
			c.store.Publish(state.Success(result.Value()))
			return
		}

		msg, code, _ := result.Failure()
		if code == http.StatusNotFound {
			c.store.Publish(state.ErrorWithKey[[]view.ListItem](msg, code, MessageKeyNoProducts))
			return
		}
		c.store.Publish(state.Error[[]view.ListItem](msg, code))
	}()
}

// Close cancels any in-flight fetch and destroys the store. Nothing is
// published afterwards.
func (c *SearchController) Close() {
	c.cancel()
	c.store.Close()
}
