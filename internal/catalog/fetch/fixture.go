package fetch

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"marketplace-catalog/internal/common/config"
	"marketplace-catalog/internal/common/logger"
	"marketplace-catalog/internal/common/metrics"
	"marketplace-catalog/internal/common/strutil"
)

// DefaultQueryFixture is served for a blank query under the
// default_fixture policy.
const DefaultQueryFixture = "default-query-list.json"

// FixtureClient is a Fetcher that resolves requests to canned JSON files by
// naming convention, simulating a marketplace API:
//
//	ids=<id>                  -> item-<sanitized id>.json
//	ids=<id> (description)    -> item-<sanitized id>-description.json
//	q=<query>                 -> <sanitized query>-query-list.json
//
// A missing file yields 404 with an empty body. A blank query yields either
// 400 or the default fixture, depending on the configured policy.
type FixtureClient struct {
	dir              string
	latency          time.Duration
	emptyQueryPolicy string
	foldQueryCase    bool
	log              logger.Logger
}

// NewFixtureClient builds the fixture transport. When cfg.Validate is set,
// every fixture in the directory is checked against the response schemas up
// front and a malformed file fails construction instead of surfacing later
// as a decode error.
func NewFixtureClient(cfg config.FixturesConfig, log logger.Logger) (*FixtureClient, error) {
	info, err := os.Stat(cfg.Dir)
	if err != nil {
		return nil, fmt.Errorf("fixture dir: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("fixture dir %s is not a directory", cfg.Dir)
	}

	if cfg.Validate {
		if err := validateFixtureDir(cfg.Dir, cfg.SchemaDir); err != nil {
			return nil, err
		}
	}

	return &FixtureClient{
		dir:              cfg.Dir,
		latency:          time.Duration(cfg.LatencyMs) * time.Millisecond,
		emptyQueryPolicy: cfg.EmptyQueryPolicy,
		foldQueryCase:    cfg.FoldQueryCase,
		log:              log.WithFields(map[string]interface{}{"component": "fixture-client"}),
	}, nil
}

func (c *FixtureClient) Fetch(ctx context.Context, path string, params map[string]string) (Response, error) {
	start := time.Now()
	requestID := uuid.NewString()

	resp, err := c.fetch(ctx, path, params, requestID)

	metrics.FetchDuration.WithLabelValues(path).Observe(time.Since(start).Seconds())
	if err == nil {
		metrics.FetchRequests.WithLabelValues(path, strconv.Itoa(resp.StatusCode)).Inc()
	}
	return resp, err
}

func (c *FixtureClient) fetch(ctx context.Context, path string, params map[string]string, requestID string) (Response, error) {
	// Simulated network latency, cancellable by the caller.
	if c.latency > 0 {
		select {
		case <-time.After(c.latency):
		case <-ctx.Done():
			return Response{}, ctx.Err()
		}
	}

	name, resp, resolved := c.resolveFixtureName(path, params)
	if !resolved {
		c.log.Warn("request without usable parameters", map[string]interface{}{
			"requestId": requestID,
			"path":      path,
			"status":    resp.StatusCode,
		})
		return resp, nil
	}

	body, err := os.ReadFile(filepath.Join(c.dir, name))
	if err != nil {
		c.log.Warn("fixture not found", map[string]interface{}{
			"requestId": requestID,
			"path":      path,
			"fixture":   name,
		})
		return Response{StatusCode: http.StatusNotFound}, nil
	}

	c.log.Debug("serving fixture", map[string]interface{}{
		"requestId": requestID,
		"path":      path,
		"fixture":   name,
	})
	return Response{StatusCode: http.StatusOK, Body: body}, nil
}

// resolveFixtureName maps a request onto a fixture file name. When resolved
// is false, resp carries the terminal answer instead (empty-query policy).
func (c *FixtureClient) resolveFixtureName(path string, params map[string]string) (name string, resp Response, resolved bool) {
	ids := strings.TrimSpace(params[ParamIDs])
	query := strings.TrimSpace(params[ParamQuery])

	switch {
	case ids != "":
		key := strutil.Sanitize(ids)
		if path == PathItemDescription {
			return "item-" + key + "-description.json", Response{}, true
		}
		return "item-" + key + ".json", Response{}, true

	case query != "":
		key := strutil.Sanitize(query)
		if c.foldQueryCase {
			key = strings.ToLower(key)
		}
		return key + "-query-list.json", Response{}, true

	default:
		if c.emptyQueryPolicy == config.EmptyQueryDefaultFixture {
			return DefaultQueryFixture, Response{}, true
		}
		return "", Response{StatusCode: http.StatusBadRequest}, false
	}
}
