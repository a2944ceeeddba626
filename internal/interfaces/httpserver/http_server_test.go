package httpserver_test

import (
	"context"
	"encoding/json"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"jan-server/services/application-settings-api/internal/config"
	domain "jan-server/services/application-settings-api/internal/domain/customlabel"
	"jan-server/services/application-settings-api/internal/infrastructure/auth"
	"jan-server/services/application-settings-api/internal/infrastructure/database"
	"jan-server/services/application-settings-api/internal/interfaces/httpserver"
	"jan-server/services/application-settings-api/internal/interfaces/httpserver/responses"
)

func newServer(t *testing.T) *httpserver.HttpServer {
	t.Helper()
	return newServerWithDB(t, nil)
}

func newServerWithDB(t *testing.T, db *gorm.DB) *httpserver.HttpServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{
		ServiceName:     "application-settings-api",
		Environment:     "test",
		HTTPPort:        3000,
		ShutdownTimeout: time.Second,
	}
	validator, err := auth.NewValidator(context.Background(), cfg, zerolog.Nop())
	require.NoError(t, err)

	return httpserver.New(cfg, zerolog.Nop(), db, domain.NewService(zerolog.Nop()), validator)
}

func do(t *testing.T, srv *httpserver.HttpServer, method, path, contentType, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, req)
	return w
}

func TestCustomLabelRoutes(t *testing.T) {
	srv := newServer(t)

	cases := []struct {
		name       string
		method     string
		path       string
		body       string
		wantStatus int
		wantBody   string
	}{
		{"create", http.MethodPost, "/custom-labels", `{"name":"ignored"}`, http.StatusCreated, "This action adds a new customLabel"},
		{"create without body", http.MethodPost, "/custom-labels", "", http.StatusCreated, "This action adds a new customLabel"},
		{"find all", http.MethodGet, "/custom-labels", "", http.StatusOK, "This action returns all customLabels"},
		{"find one", http.MethodGet, "/custom-labels/7", "", http.StatusOK, "This action returns a #7 customLabel"},
		{"find one zero", http.MethodGet, "/custom-labels/0", "", http.StatusOK, "This action returns a #0 customLabel"},
		{"find one negative", http.MethodGet, "/custom-labels/-3", "", http.StatusOK, "This action returns a #-3 customLabel"},
		{"update", http.MethodPatch, "/custom-labels/12", `{}`, http.StatusOK, "This action updates a #12 customLabel"},
		{"remove", http.MethodDelete, "/custom-labels/-5", "", http.StatusOK, "This action removes a #-5 customLabel"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := do(t, srv, tc.method, tc.path, "application/json", tc.body)

			assert.Equal(t, tc.wantStatus, w.Code)
			assert.Equal(t, tc.wantBody, w.Body.String())
			assert.Contains(t, w.Header().Get("Content-Type"), "text/plain")
		})
	}
}

func TestCustomLabelRoutesAcceptedBodies(t *testing.T) {
	srv := newServer(t)

	w := do(t, srv, http.MethodPost, "/custom-labels", "text/plain", "null")
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "This action adds a new customLabel", w.Body.String())

	w = do(t, srv, http.MethodPatch, "/custom-labels/4", "application/json", "  {\"name\":\"x\"}\n")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "This action updates a #4 customLabel", w.Body.String())
}

func TestCustomLabelRoutesRejectMalformedInput(t *testing.T) {
	srv := newServer(t)

	cases := []struct {
		name   string
		method string
		path   string
		body   string
	}{
		{"malformed create body", http.MethodPost, "/custom-labels", `{"name":`},
		{"array create body", http.MethodPost, "/custom-labels", `[1,2]`},
		{"null create body", http.MethodPost, "/custom-labels", `null`},
		{"string create body", http.MethodPost, "/custom-labels", `"label"`},
		{"trailing bytes after create body", http.MethodPost, "/custom-labels", `{} trailing-garbage`},
		{"two objects in update body", http.MethodPatch, "/custom-labels/1", `{}{}`},
		{"null update body", http.MethodPatch, "/custom-labels/1", `null`},
		{"malformed update body", http.MethodPatch, "/custom-labels/1", `not json`},
		{"non numeric id", http.MethodGet, "/custom-labels/abc", ""},
		{"fractional id", http.MethodDelete, "/custom-labels/1.5", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := do(t, srv, tc.method, tc.path, "application/json", tc.body)

			require.Equal(t, http.StatusBadRequest, w.Code)
			var body responses.ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.NotEmpty(t, body.Code)
			assert.NotEmpty(t, body.Error)
			assert.Equal(t, w.Header().Get("X-Request-Id"), body.RequestID)
		})
	}
}

func TestCoreRoutes(t *testing.T) {
	srv := newServer(t)

	w := do(t, srv, http.MethodGet, "/healthz", "", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"healthy"}`, w.Body.String())

	w = do(t, srv, http.MethodGet, "/readyz", "", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ready"}`, w.Body.String())

	w = do(t, srv, http.MethodGet, "/metrics", "", "")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestReadinessReportsDatabaseFailure(t *testing.T) {
	db, err := database.Open(sqlite.Open(":memory:"), database.Config{LogLevel: gormlogger.Silent, MaxOpenConns: 1})
	require.NoError(t, err)
	srv := newServerWithDB(t, db)

	w := do(t, srv, http.MethodGet, "/readyz", "", "")
	require.Equal(t, http.StatusOK, w.Code)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())

	w = do(t, srv, http.MethodGet, "/readyz", "", "")
	require.Equal(t, http.StatusServiceUnavailable, w.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "unavailable", body["status"])
	assert.Equal(t, "readiness check: ping database", body["error"])
}

func TestUnknownRouteReturnsErrorResponse(t *testing.T) {
	srv := newServer(t)

	w := do(t, srv, http.MethodGet, "/custom-label", "", "")

	require.Equal(t, http.StatusNotFound, w.Code)
	var body responses.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "route not found", body.Error)
	assert.NotEmpty(t, body.Code)
	assert.Equal(t, w.Header().Get("X-Request-Id"), body.RequestID)
}

func TestAPIDocumentation(t *testing.T) {
	srv := newServer(t)

	w := do(t, srv, http.MethodGet, "/api/", "", "")
	assert.Equal(t, http.StatusMovedPermanently, w.Code)
	assert.Equal(t, "/api/index.html", w.Header().Get("Location"))

	w = do(t, srv, http.MethodGet, "/api/index.html", "", "")
	assert.Equal(t, http.StatusOK, w.Code)

	w = do(t, srv, http.MethodGet, "/api/doc.json", "", "")
	require.Equal(t, http.StatusOK, w.Code)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &doc))
	info, ok := doc["info"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "NestJS Template API", info["title"])
	assert.Equal(t, "API documentation for the NestJS template project", info["description"])
	paths, ok := doc["paths"].(map[string]any)
	require.True(t, ok)
	assert.Contains(t, paths, "/custom-labels")
	assert.Contains(t, paths, "/custom-labels/{id}")
}

func TestServeStopsOnContextCancel(t *testing.T) {
	srv := newServer(t)

	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- srv.Serve(ctx, listener)
	}()

	resp, err := http.Get("http://" + listener.Addr().String() + "/custom-labels/7")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}
