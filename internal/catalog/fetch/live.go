package fetch

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"marketplace-catalog/internal/common/config"
	httpclient "marketplace-catalog/internal/common/http"
	"marketplace-catalog/internal/common/logger"
	"marketplace-catalog/internal/common/metrics"
)

// LiveClient is a Fetcher backed by a real HTTP endpoint. It exists for
// pointing the catalog at an actual marketplace API instead of fixtures.
type LiveClient struct {
	baseURL string
	client  *httpclient.Client
	log     logger.Logger
}

func NewLiveClient(cfg config.APIConfig, log logger.Logger) *LiveClient {
	return &LiveClient{
		baseURL: cfg.BaseURL,
		client:  httpclient.NewClient(time.Duration(cfg.TimeoutMs) * time.Millisecond),
		log:     log.WithFields(map[string]interface{}{"component": "live-client"}),
	}
}

func (c *LiveClient) Fetch(ctx context.Context, path string, params map[string]string) (Response, error) {
	start := time.Now()

	u, err := url.Parse(c.baseURL + path)
	if err != nil {
		return Response{}, err
	}
	q := u.Query()
	for k, v := range params {
		q.Set(k, v)
	}
	u.RawQuery = q.Encode()

	req, err := http.NewRequest(http.MethodGet, u.String(), nil)
	if err != nil {
		return Response{}, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.DoWithContext(ctx, req)
	metrics.FetchDuration.WithLabelValues(path).Observe(time.Since(start).Seconds())
	if err != nil {
		c.log.Error("request failed", map[string]interface{}{"path": path, "error": err.Error()})
		return Response{}, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return Response{}, err
	}

	metrics.FetchRequests.WithLabelValues(path, strconv.Itoa(resp.StatusCode)).Inc()
	return Response{StatusCode: resp.StatusCode, Body: body}, nil
}
