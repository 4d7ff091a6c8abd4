package wire

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"movie-graph/internal/data/repository"
	"movie-graph/pkg/middleware"
	"movie-graph/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func newTestApp(t *testing.T) *App {
	t.Helper()
	config := &utils.Config{
		App:     utils.AppConfig{Name: "movie-graph", Port: "0"},
		Storage: utils.StorageConfig{Driver: utils.StorageMemory},
	}
	app, err := Wiring(repository.NewMemoryRepository(zap.NewNop()), config, zap.NewNop())
	require.NoError(t, err)
	return app
}

func TestRouter_Health(t *testing.T) {
	app := newTestApp(t)

	rec := httptest.NewRecorder()
	app.Router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":true,"message":"OK","data":{"storage":"memory"}}`, rec.Body.String())
	assert.NotEmpty(t, rec.Header().Get(middleware.RequestIDHeader))
}

func TestRouter_GraphQL(t *testing.T) {
	app := newTestApp(t)

	body := `{"query":"mutation { addDirector(name: \"Director 1\", age: 11) { name age } }"}`
	req := httptest.NewRequest(http.MethodPost, "/graphql", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	app.Router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"data":{"addDirector":{"name":"Director 1","age":11}}}`, rec.Body.String())

	rec = httptest.NewRecorder()
	app.Router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/graphql?query=%7Bdirectors%7Bname%7D%7D", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"data":{"directors":[{"name":"Director 1"}]}}`, rec.Body.String())
}

func TestRouter_UnknownMethod(t *testing.T) {
	app := newTestApp(t)

	rec := httptest.NewRecorder()
	app.Router.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/graphql", nil))

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestRouter_AccessLogNamesGraphQLOperation(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	config := &utils.Config{Storage: utils.StorageConfig{Driver: utils.StorageMemory}}
	app, err := Wiring(repository.NewMemoryRepository(zap.NewNop()), config, zap.New(core))
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/graphql", strings.NewReader(`{"query":"{ movies { id } }"}`))
	req.Header.Set("Content-Type", "application/json")
	app.Router.ServeHTTP(httptest.NewRecorder(), req)

	access := logs.FilterMessage("HTTP request").All()
	require.Len(t, access, 1)
	assert.Equal(t, "query movies", access[0].ContextMap()["operation"])
}
