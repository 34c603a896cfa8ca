package api

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"marketplace-catalog/internal/catalog/fetch"
	"marketplace-catalog/internal/catalog/outcome"
	"marketplace-catalog/internal/common/logger"
)

// stubFetcher answers every Fetch with a fixed response or error and records
// the last request it saw.
type stubFetcher struct {
	resp fetch.Response
	err  error

	lastPath   string
	lastParams map[string]string
}

func (s *stubFetcher) Fetch(_ context.Context, path string, params map[string]string) (fetch.Response, error) {
	s.lastPath = path
	s.lastParams = params
	return s.resp, s.err
}

func newGateway(t *testing.T, f fetch.Fetcher) *Gateway {
	t.Helper()
	return NewGateway(f, logger.NewTestLogger(t))
}

func TestGateway_Search_Success(t *testing.T) {
	body := `{
		"site_id": "MLB",
		"query": "notebook",
		"results": [
			{"id": "1", "title": "Produto 1", "price": 10.0, "thumbnail": "img.png", "future_field": {"ignored": true}}
		],
		"unknown_top_level": 42
	}`
	f := &stubFetcher{resp: fetch.Response{StatusCode: http.StatusOK, Body: []byte(body)}}

	result := newGateway(t, f).Search(context.Background(), "notebook")

	require.True(t, result.IsSuccess())
	assert.Equal(t, fetch.PathSearch, f.lastPath)
	assert.Equal(t, "notebook", f.lastParams[fetch.ParamQuery])

	payload := result.Value()
	require.Len(t, payload.Results, 1)
	require.NotNil(t, payload.Results[0].ID)
	assert.Equal(t, "1", *payload.Results[0].ID)
	require.NotNil(t, payload.Results[0].Price)
	assert.Equal(t, 10.0, *payload.Results[0].Price)
}

func TestGateway_Search_NetworkFailure(t *testing.T) {
	tests := []struct {
		name       string
		status     int
		wantReason string
	}{
		{name: "not found", status: http.StatusNotFound, wantReason: "Not Found"},
		{name: "bad request", status: http.StatusBadRequest, wantReason: "Bad Request"},
		{name: "server error", status: http.StatusInternalServerError, wantReason: "Internal Server Error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := &stubFetcher{resp: fetch.Response{StatusCode: tt.status}}

			result := newGateway(t, f).Search(context.Background(), "notebook")

			assert.Equal(t, outcome.KindNetworkFailure, result.Kind())
			msg, code, _ := result.Failure()
			assert.Equal(t, tt.wantReason, msg)
			assert.Equal(t, tt.status, code)
		})
	}
}

func TestGateway_Search_TransportErrorBecomesGenericFailure(t *testing.T) {
	f := &stubFetcher{err: errors.New("connection refused")}

	result := newGateway(t, f).Search(context.Background(), "notebook")

	assert.Equal(t, outcome.KindGenericFailure, result.Kind())
	msg, code, _ := result.Failure()
	assert.Equal(t, "connection refused", msg)
	assert.Equal(t, outcome.NoCode, code)
}

func TestGateway_Search_MalformedBodyBecomesGenericFailure(t *testing.T) {
	f := &stubFetcher{resp: fetch.Response{StatusCode: http.StatusOK, Body: []byte(`{"results": [`)}}

	result := newGateway(t, f).Search(context.Background(), "notebook")

	assert.Equal(t, outcome.KindGenericFailure, result.Kind())
}

func TestGateway_ItemDetails(t *testing.T) {
	body := `{"id": "MLB123", "title": "Produto", "price": 100.0, "pictures": [{"secure_url": "https://img/1.jpg"}]}`
	f := &stubFetcher{resp: fetch.Response{StatusCode: http.StatusOK, Body: []byte(body)}}

	result := newGateway(t, f).ItemDetails(context.Background(), "MLB123")

	require.True(t, result.IsSuccess())
	assert.Equal(t, fetch.PathItems, f.lastPath)
	assert.Equal(t, "MLB123", f.lastParams[fetch.ParamIDs])
	require.NotNil(t, result.Value().ID)
	assert.Equal(t, "MLB123", *result.Value().ID)
}

func TestGateway_ItemDescription(t *testing.T) {
	body := `{"plain_text": "Descrição do produto"}`
	f := &stubFetcher{resp: fetch.Response{StatusCode: http.StatusOK, Body: []byte(body)}}

	result := newGateway(t, f).ItemDescription(context.Background(), "MLB123")

	require.True(t, result.IsSuccess())
	assert.Equal(t, fetch.PathItemDescription, f.lastPath)
	require.NotNil(t, result.Value().PlainText)
	assert.Equal(t, "Descrição do produto", *result.Value().PlainText)
}
