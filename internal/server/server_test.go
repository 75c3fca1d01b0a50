package server_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"prankpress/internal/generate"
	"prankpress/internal/server"
	"prankpress/internal/service"
	"prankpress/internal/store"
)

type stubGenerator struct {
	fields generate.Fields
	err    error
}

func (s *stubGenerator) Generate(_ context.Context, _ string) (generate.Fields, error) {
	return s.fields, s.err
}

func newTestServer(t *testing.T) (*server.Server, *store.Memory) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	mem := store.NewMemory()
	gen := &stubGenerator{fields: generate.Fields{
		Title:      "Giant Squirrel Spotted Downtown",
		SubHeading: "Residents stunned",
		Category:   "Lifestyle",
		Content:    "One.\n\nTwo.\n\nThree.\n\nFour.",
	}}

	srv := server.NewServer(server.Options{
		Creation:  service.NewCreation(mem, gen, "https://prank.press"),
		Rendering: service.NewRendering(mem, nil),
	})
	return srv, mem
}

func doJSON(t *testing.T, srv *server.Server, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)
	return rec
}

func TestCreateArticleEndpoint(t *testing.T) {
	srv, mem := newTestServer(t)

	rec := doJSON(t, srv, http.MethodPost, "/api/articles",
		`{"headline": "Giant Squirrel Spotted Downtown!", "description": "a squirrel", "type": "news-article"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	var resp struct {
		Link string `json:"link"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "https://prank.press/article/giant-squirrel-spotted-downtown", resp.Link)
	assert.Equal(t, 1, mem.Len())
}

func TestCreateArticleMalformedBody(t *testing.T) {
	srv, mem := newTestServer(t)

	rec := doJSON(t, srv, http.MethodPost, "/api/articles", `{not json`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid request body format.")
	assert.Zero(t, mem.Len())
}

func TestCreateArticleEmptyHeadline(t *testing.T) {
	srv, mem := newTestServer(t)

	rec := doJSON(t, srv, http.MethodPost, "/api/articles", `{"headline": "   "}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Headline is required.")
	assert.Zero(t, mem.Len())
}

func TestCreateArticleGenerationFailure(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mem := store.NewMemory()
	srv := server.NewServer(server.Options{
		Creation:  service.NewCreation(mem, &stubGenerator{err: assert.AnError}, "https://prank.press"),
		Rendering: service.NewRendering(mem, nil),
	})

	rec := doJSON(t, srv, http.MethodPost, "/api/articles", `{"headline": "Real News"}`)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "Something went wrong")
	assert.Zero(t, mem.Len())
}

func TestArticlePage(t *testing.T) {
	srv, mem := newTestServer(t)
	_, err := mem.Create(context.Background(), &store.Article{
		Headline:   "Giant Squirrel Spotted Downtown!",
		SubHeading: "Residents stunned",
		Category:   "Lifestyle",
		Content:    "One.\n\nTwo.\n\nThree.\n\nFour.",
		Slug:       "giant-squirrel-spotted-downtown",
	})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/article/giant-squirrel-spotted-downtown", nil)
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "Giant Squirrel Spotted Downtown!")
	assert.Contains(t, body, "Continue reading")

	// the visit counted
	a, err := mem.FindBySlug(context.Background(), "giant-squirrel-spotted-downtown")
	require.NoError(t, err)
	assert.Equal(t, int64(1), a.Views)
}

func TestArticlePageNotFound(t *testing.T) {
	srv, _ := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/article/ghost", nil)
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "404")
}

func TestGetArticleJSON(t *testing.T) {
	srv, mem := newTestServer(t)
	_, err := mem.Create(context.Background(), &store.Article{
		Headline: "Hello",
		Slug:     "hello",
	})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/articles/hello", nil)
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var a store.Article
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &a))
	assert.Equal(t, "Hello", a.Headline)

	// JSON lookups do not count views
	stored, err := mem.FindBySlug(context.Background(), "hello")
	require.NoError(t, err)
	assert.Zero(t, stored.Views)
}

func TestGetArticleJSONNotFound(t *testing.T) {
	srv, _ := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/articles/ghost", nil)
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "Article not found.")
}

func TestArticleQR(t *testing.T) {
	srv, mem := newTestServer(t)
	_, err := mem.Create(context.Background(), &store.Article{Headline: "Hello", Slug: "hello"})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/articles/hello/qr", nil)
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))
	assert.NotEmpty(t, rec.Body.Bytes())
}

func TestLeaderboardWithoutBoard(t *testing.T) {
	srv, _ := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/leaderboard", nil)
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"data": []}`, rec.Body.String())
}

func TestUnknownAPIRoute(t *testing.T) {
	srv, _ := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/nope", nil)
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "API not found")
}
