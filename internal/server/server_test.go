package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/jonathan/template-finder/internal/catalog"
	"github.com/jonathan/template-finder/internal/server/middleware"
	"github.com/jonathan/template-finder/internal/server/ratelimit"
	"github.com/jonathan/template-finder/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func testCatalog() []types.TemplateRecord {
	high := 95.0
	return []types.TemplateRecord{
		{ID: "zephyr", Name: "Zephyr", Category: "Modern", Tags: []string{"tech", "software"}, Keywords: []string{"developer"}, Popular: true, ATSScore: &high},
		{ID: "solo", Name: "Solo Page", Category: "One-Pager", Tags: []string{"minimal"}, Keywords: []string{}, TemplateID: "op-7"},
		{ID: "ledger", Name: "Ledger", Category: "Professional", Tags: []string{"finance", "business"}, Keywords: []string{"analyst"}},
		{ID: "canvas", Name: "Canvas", Category: "Creative", Tags: []string{"design", "creative"}, Keywords: []string{"designer"}, Premium: true},
	}
}

type failingSource struct{}

func (failingSource) Load(context.Context) ([]types.TemplateRecord, error) {
	return nil, errors.New("dial tcp 10.0.0.5:5432: connection refused")
}

func newTestServer(t *testing.T, src catalog.Source, rate *ratelimit.Config) http.Handler {
	t.Helper()
	if src == nil {
		src = &catalog.StaticSource{Records: testCatalog()}
	}
	if rate == nil {
		rate = &ratelimit.Config{Enabled: false}
	}
	s := New(Config{Port: 0, RateLimit: rate}, src, nil)
	t.Cleanup(s.rateLimiter.Stop)
	return s.Handler()
}

func doRequest(t *testing.T, h http.Handler, method, target string, body []byte) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, bytes.NewReader(body))
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func decodeBody[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}

func TestHealth(t *testing.T) {
	h := newTestServer(t, nil, nil)
	w := doRequest(t, h, http.MethodGet, "/health", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
	assert.NotEmpty(t, w.Header().Get(middleware.RequestIDHeader))
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestListTemplates(t *testing.T) {
	h := newTestServer(t, nil, nil)

	w := doRequest(t, h, http.MethodGet, "/templates", nil)
	require.Equal(t, http.StatusOK, w.Code)
	all := decodeBody[TemplatesResponse](t, w)
	assert.Equal(t, 4, all.Count)
	assert.Equal(t, "zephyr", all.Templates[0].ID)

	w = doRequest(t, h, http.MethodGet, "/templates?category=Creative", nil)
	creative := decodeBody[TemplatesResponse](t, w)
	require.Equal(t, 1, creative.Count)
	assert.Equal(t, "canvas", creative.Templates[0].ID)
}

func TestCategories(t *testing.T) {
	h := newTestServer(t, nil, nil)
	w := doRequest(t, h, http.MethodGet, "/templates/categories", nil)

	resp := decodeBody[CategoriesResponse](t, w)
	assert.Equal(t, []string{"All", "Modern", "One-Pager", "Professional", "Creative"}, resp.Categories)
}

func TestSearch(t *testing.T) {
	h := newTestServer(t, nil, nil)

	w := doRequest(t, h, http.MethodGet, "/search?q=Zephyr", nil)
	require.Equal(t, http.StatusOK, w.Code)
	resp := decodeBody[SearchResponse](t, w)
	assert.Equal(t, "Zephyr", resp.Query)
	require.NotEmpty(t, resp.Results)
	assert.Equal(t, "zephyr", resp.Results[0].ID)
	assert.True(t, resp.Results[0].HasMatch)
	assert.Equal(t, "/resume-builder?template=zephyr", resp.Results[0].BuilderURL)
	assert.Equal(t, len(resp.Results), resp.Count)

	// blank query lists everything unscored
	w = doRequest(t, h, http.MethodGet, "/search?q=", nil)
	blank := decodeBody[SearchResponse](t, w)
	assert.Equal(t, 4, blank.Count)
	for _, r := range blank.Results {
		assert.Zero(t, r.RelevanceScore)
	}

	w = doRequest(t, h, http.MethodGet, "/search?q=&category=One-Pager", nil)
	onePager := decodeBody[SearchResponse](t, w)
	require.Equal(t, 1, onePager.Count)
	assert.Equal(t, "/one-pager-builder/editor?template=op-7", onePager.Results[0].BuilderURL)
}

func TestSearch_QueryTooLong(t *testing.T) {
	h := newTestServer(t, nil, nil)
	w := doRequest(t, h, http.MethodGet, "/search?q="+strings.Repeat("a", 201), nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	body := decodeBody[map[string]any](t, w)
	assert.Contains(t, body["error"], "validation error")
	assert.NotEmpty(t, body["request_id"])
}

func TestSuggestionsAndPopular(t *testing.T) {
	h := newTestServer(t, nil, nil)

	w := doRequest(t, h, http.MethodGet, "/search/suggestions?q=a", nil)
	assert.JSONEq(t, `{"suggestions":[]}`, w.Body.String())

	w = doRequest(t, h, http.MethodGet, "/search/suggestions?q=zeph", nil)
	resp := decodeBody[SuggestionsResponse](t, w)
	assert.Contains(t, resp.Suggestions, "Zephyr")

	w = doRequest(t, h, http.MethodGet, "/search/popular", nil)
	popular := decodeBody[PopularResponse](t, w)
	assert.Len(t, popular.Terms, 12)
}

func TestQuiz(t *testing.T) {
	h := newTestServer(t, nil, nil)
	w := doRequest(t, h, http.MethodGet, "/quiz", nil)

	resp := decodeBody[QuizResponse](t, w)
	require.Len(t, resp.Questions, len(types.Dimensions))
	for i, q := range resp.Questions {
		assert.Equal(t, types.Dimensions[i], q.ID)
		assert.NotEmpty(t, q.Options)
	}
}

func TestRecommendations(t *testing.T) {
	h := newTestServer(t, nil, nil)
	body := []byte(`{"experience":"entry","industry":"tech","style":"modern","goal":"ats","timeframe":"urgent"}`)

	w := doRequest(t, h, http.MethodPost, "/recommendations", body)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	resp := decodeBody[RecommendationsResponse](t, w)
	assert.Equal(t, 4, resp.Count)
	require.Len(t, resp.Recommendations, 4)
	assert.Equal(t, "zephyr", resp.Recommendations[0].ID)
	for _, rec := range resp.Recommendations {
		assert.GreaterOrEqual(t, rec.MatchPercentage, 0)
		assert.LessOrEqual(t, rec.MatchPercentage, 98)
		assert.NotEmpty(t, rec.Reasons)
	}
}

func TestRecommendations_Invalid(t *testing.T) {
	h := newTestServer(t, nil, nil)

	tests := []struct {
		name   string
		body   string
		status int
	}{
		{name: "missing answers", body: `{"experience":"entry"}`, status: http.StatusBadRequest},
		{name: "unknown value", body: `{"experience":"intern","industry":"tech","style":"modern","goal":"ats","timeframe":"urgent"}`, status: http.StatusBadRequest},
		{name: "bad json", body: `{"experience":`, status: http.StatusBadRequest},
		{name: "too large", body: `{"experience":"` + strings.Repeat("x", maxBodyBytes) + `"}`, status: http.StatusRequestEntityTooLarge},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doRequest(t, h, http.MethodPost, "/recommendations", []byte(tt.body))
			assert.Equal(t, tt.status, w.Code)
			assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
		})
	}

	w := doRequest(t, h, http.MethodPost, "/recommendations", []byte(`{"experience":"entry"}`))
	body := decodeBody[struct {
		Error  string          `json:"error"`
		Fields []ErrValidation `json:"fields"`
	}](t, w)
	assert.Equal(t, "validation failed", body.Error)
	assert.Len(t, body.Fields, 4)
}

func TestCatalogFailure(t *testing.T) {
	h := newTestServer(t, failingSource{}, nil)

	for _, target := range []string{"/templates", "/search?q=x", "/search/popular"} {
		w := doRequest(t, h, http.MethodGet, target, nil)
		assert.Equal(t, http.StatusBadGateway, w.Code, target)
		assert.NotContains(t, w.Body.String(), "10.0.0.5")
	}

	// quiz does not need the catalog
	w := doRequest(t, h, http.MethodGet, "/quiz", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRateLimit(t *testing.T) {
	h := newTestServer(t, nil, &ratelimit.Config{
		Enabled: true,
		EndpointConfigs: []ratelimit.EndpointConfig{
			{Path: "/search", Method: "GET", Limit: 2, Window: time.Hour, Burst: 2},
		},
		DefaultLimit:  100,
		DefaultWindow: time.Minute,
	})

	for i := 0; i < 2; i++ {
		w := doRequest(t, h, http.MethodGet, "/search?q=tech", nil)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "2", w.Header().Get("X-RateLimit-Limit"))
	}

	w := doRequest(t, h, http.MethodGet, "/search?q=tech", nil)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.NotEmpty(t, w.Header().Get("Retry-After"))
	assert.NotEmpty(t, w.Header().Get(middleware.RequestIDHeader))
	// browsers can only read the 429 body and headers with CORS applied
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, w.Header().Get("Access-Control-Expose-Headers"), "X-RateLimit-Remaining")
	body := decodeBody[map[string]any](t, w)
	assert.Equal(t, "rate_limit_exceeded", body["error"])

	// health stays unlimited
	for i := 0; i < 5; i++ {
		assert.Equal(t, http.StatusOK, doRequest(t, h, http.MethodGet, "/health", nil).Code)
	}
}

func TestPreflight(t *testing.T) {
	h := newTestServer(t, nil, nil)
	w := doRequest(t, h, http.MethodOptions, "/recommendations", nil)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Contains(t, w.Header().Get("Access-Control-Allow-Methods"), "POST")
}

func TestMethodNotAllowed(t *testing.T) {
	h := newTestServer(t, nil, nil)
	w := doRequest(t, h, http.MethodGet, "/recommendations", nil)
	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
}

func TestExportSearch(t *testing.T) {
	h := newTestServer(t, nil, nil)
	w := doRequest(t, h, http.MethodGet, "/search/export?q=Zephyr", nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, xlsxMediaType, w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "search-results.xlsx")

	f, err := excelize.OpenReader(bytes.NewReader(w.Body.Bytes()))
	require.NoError(t, err)
	defer func() { _ = f.Close() }()
	rows, err := f.GetRows(f.GetSheetList()[0])
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(rows), 2)
	assert.Equal(t, "zephyr", rows[1][1])
}

func TestExportTemplates(t *testing.T) {
	h := newTestServer(t, nil, nil)
	w := doRequest(t, h, http.MethodGet, "/templates/export?category=Modern", nil)

	require.Equal(t, http.StatusOK, w.Code)
	records, err := catalog.DecodeXLSX(bytes.NewReader(w.Body.Bytes()))
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "zephyr", records[0].ID)
}

func TestServe_ShutsDownOnCancel(t *testing.T) {
	s := New(Config{RateLimit: &ratelimit.Config{Enabled: false}, ShutdownTimeout: time.Second},
		&catalog.StaticSource{Records: testCatalog()}, nil)

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Serve(ctx, ln) }()

	resp, err := http.Get("http://" + ln.Addr().String() + "/health")
	require.NoError(t, err)
	_ = resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}
