package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"portfolio/content"
	"portfolio/models"
	"portfolio/services"
	"portfolio/views"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubGenerator struct {
	text  string
	err   error
	calls int32
}

func (s *stubGenerator) GenerateContent(context.Context, string) (string, error) {
	atomic.AddInt32(&s.calls, 1)
	return s.text, s.err
}

func (s *stubGenerator) Name() string { return "stub" }

func (s *stubGenerator) GetStatus() map[string]interface{} { return map[string]interface{}{} }

func newTestServer(t *testing.T, gen services.Generator) http.Handler {
	t.Helper()
	logger := zap.NewNop()
	site := services.NewSite(services.NewGateway(gen, logger), nil, logger)
	chat, err := services.NewChatService(site, 8, logger)
	require.NoError(t, err)
	search := services.NewSearchService(logger)
	require.NoError(t, search.Index(context.Background(), content.Pages()))
	discord, err := services.NewDiscordService(models.DiscordConfig{}, site, search, logger)
	require.NoError(t, err)
	renderer, err := views.New()
	require.NoError(t, err)

	c := NewController(Services{
		Site:     site,
		Chat:     chat,
		Search:   search,
		Carousel: services.NewCarousel(content.Pages(), time.Hour, logger),
		Discord:  discord,
	}, renderer, logger)
	return c.Routes()
}

func do(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestHTMLPages(t *testing.T) {
	h := newTestServer(t, &stubGenerator{})
	paths := []string{"/", "/about", "/contact", "/projects", "/blog"}
	for _, p := range content.Pages() {
		paths = append(paths, p.URL())
	}
	for _, path := range paths {
		t.Run(path, func(t *testing.T) {
			rec := do(t, h, http.MethodGet, path, "")
			assert.Equal(t, http.StatusOK, rec.Code)
			assert.Contains(t, rec.Header().Get("Content-Type"), "text/html")
			assert.Contains(t, rec.Body.String(), "<title>")
		})
	}
}

func TestUnknownBlogPage(t *testing.T) {
	h := newTestServer(t, &stubGenerator{})
	rec := do(t, h, http.MethodGet, "/blog/missing", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "Page not found")
}

func TestActionSuccess(t *testing.T) {
	gen := &stubGenerator{text: "Run your race."}
	h := newTestServer(t, gen)

	rec := do(t, h, http.MethodPost, "/api/blog/ageless-athletes/actions/insight", `{"item":"Lester Wright"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.ActionResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, models.StatusSuccess, resp.Status)
	require.NotNil(t, resp.State.Result)
	assert.Equal(t, "Run your race.", *resp.State.Result)
	assert.False(t, resp.State.IsLoading)
	assert.Contains(t, resp.HTML, `"Run your race."`)
	assert.NotContains(t, resp.HTML, "<button")
}

func TestActionValidation(t *testing.T) {
	gen := &stubGenerator{text: "unused"}
	h := newTestServer(t, gen)

	rec := do(t, h, http.MethodPost, "/api/blog/sleep-for-active-folk/actions/debunk", `{"input":"   "}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp models.ActionResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Please type your sleep question or myth first.", resp.Error)
	require.NotNil(t, resp.State.Error)
	assert.Contains(t, resp.HTML, "<button")
	assert.Equal(t, int32(0), atomic.LoadInt32(&gen.calls))
}

func TestActionNoBody(t *testing.T) {
	h := newTestServer(t, &stubGenerator{text: "insights"})
	rec := do(t, h, http.MethodPost, "/api/blog/ageless-velocity/actions/insights", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestActionNotFound(t *testing.T) {
	h := newTestServer(t, &stubGenerator{})
	assert.Equal(t, http.StatusNotFound, do(t, h, http.MethodPost, "/api/blog/missing/actions/ask", `{}`).Code)
	assert.Equal(t, http.StatusNotFound, do(t, h, http.MethodPost, "/api/blog/ageless-athletes/actions/missing", `{}`).Code)
	assert.Equal(t, http.StatusBadRequest, do(t, h, http.MethodPost, "/api/blog/ageless-athletes/actions/insight", `{`).Code)
}

func TestActionFallback(t *testing.T) {
	h := newTestServer(t, &stubGenerator{err: &services.StatusError{Code: 429}})
	rec := do(t, h, http.MethodPost, "/api/blog/lester-wright-sr-the-man-who-outran-time/actions/ask", `{"input":"Why run?"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.ActionResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Nil(t, resp.State.Result)
	require.NotNil(t, resp.State.Error)
}

func TestChatEndpoints(t *testing.T) {
	h := newTestServer(t, &stubGenerator{text: "Anandamide is an endocannabinoid."})
	const base = "/api/blog/endocannabinoid-system-curriculum-infographic/chat"

	rec := do(t, h, http.MethodPost, base, `{"message":"What is anandamide?","audience":"student"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	var resp models.ChatResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Messages, 2)

	rec = do(t, h, http.MethodGet, base+"/"+resp.SessionID, "")
	require.Equal(t, http.StatusOK, rec.Code)
	var hist models.ChatResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &hist))
	assert.Len(t, hist.Messages, 2)

	assert.Equal(t, http.StatusBadRequest, do(t, h, http.MethodPost, base, `{"message":""}`).Code)
	assert.Equal(t, http.StatusNotFound, do(t, h, http.MethodPost, "/api/blog/ageless-athletes/chat", `{"message":"hi"}`).Code)
}

func TestExport(t *testing.T) {
	h := newTestServer(t, &stubGenerator{})

	rec := do(t, h, http.MethodGet, "/blog/centenarian-athletes-an-interactive-infographic/export.csv", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, `attachment; filename="centenarian_athletes.csv"`, rec.Header().Get("Content-Disposition"))
	lines := strings.Split(rec.Body.String(), "\n")
	assert.Equal(t, services.CentenarianCSVHeader, lines[0])
	assert.Len(t, lines, len(content.Centenarians())+1)

	assert.Equal(t, http.StatusNotFound, do(t, h, http.MethodGet, "/blog/sleep-for-active-folk/export.csv", "").Code)
}

func TestSearchEndpoint(t *testing.T) {
	h := newTestServer(t, &stubGenerator{})

	rec := do(t, h, http.MethodGet, "/api/search?q=sleep+recovery&limit=2", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var resp models.SearchResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.LessOrEqual(t, resp.Count, 2)
	assert.NotEmpty(t, resp.Results)

	assert.Equal(t, http.StatusBadRequest, do(t, h, http.MethodGet, "/api/search?q=", "").Code)
	assert.Equal(t, http.StatusBadRequest, do(t, h, http.MethodGet, "/api/search?q=x&limit=abc", "").Code)
}

func TestPagesAndFeatured(t *testing.T) {
	h := newTestServer(t, &stubGenerator{})

	rec := do(t, h, http.MethodGet, "/api/pages", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var pages struct {
		Pages []models.PageSummary `json:"pages"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &pages))
	assert.Len(t, pages.Pages, len(content.Pages()))

	rec = do(t, h, http.MethodGet, "/api/featured", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var featured struct {
		Featured models.PageSummary `json:"featured"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &featured))
	assert.Equal(t, content.Pages()[0].Slug, featured.Featured.Slug)
}

func TestHealthAndStatic(t *testing.T) {
	h := newTestServer(t, &stubGenerator{})

	rec := do(t, h, http.MethodGet, "/health", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var health map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &health))
	assert.Equal(t, "healthy", health["status"])
	for _, k := range []string{"site", "chat", "search", "discord", "carousel"} {
		assert.Contains(t, health, k)
	}

	rec = do(t, h, http.MethodGet, "/static/app.js", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestCORS(t *testing.T) {
	h := newTestServer(t, &stubGenerator{})
	req := httptest.NewRequest(http.MethodGet, "/api/pages", nil)
	req.Header.Set("Origin", "https://example.org")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}
