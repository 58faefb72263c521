package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"semaphore/masterdata/internal/auth"
	"semaphore/masterdata/internal/config"
	"semaphore/masterdata/internal/repository/sqlite"
)

type testEnv struct {
	server  *Server
	store   *sqlite.Store
	handler http.Handler
}

func newTestEnv(t *testing.T, cfg config.Config) *testEnv {
	t.Helper()
	store, err := sqlite.Open(context.Background(), filepath.Join(t.TempDir(), "masterdata.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	server := NewServer(cfg, store, zerolog.Nop())
	return &testEnv{server: server, store: store, handler: server.Router()}
}

func (e *testEnv) do(t *testing.T, method, path, body string, headers ...string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	rec := httptest.NewRecorder()
	e.handler.ServeHTTP(rec, req)
	return rec
}

func decodeMessage(t *testing.T, rec *httptest.ResponseRecorder) messageResponse {
	t.Helper()
	var resp messageResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp), rec.Body.String())
	return resp
}

func requireMessage(t *testing.T, rec *httptest.ResponseRecorder, status int, message string) messageResponse {
	t.Helper()
	require.Equal(t, status, rec.Code, rec.Body.String())
	resp := decodeMessage(t, rec)
	assert.Equal(t, message, resp.Message)
	return resp
}

func TestHealth(t *testing.T) {
	env := newTestEnv(t, config.Config{})
	rec := env.do(t, http.MethodGet, "/health", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestReady(t *testing.T) {
	env := newTestEnv(t, config.Config{})
	rec := env.do(t, http.MethodGet, "/ready", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ready"}`, rec.Body.String())

	require.NoError(t, env.store.Close())
	rec = env.do(t, http.MethodGet, "/ready", "")
	require.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.JSONEq(t, `{"status":"unavailable"}`, rec.Body.String())
}

func TestServerErrorHidesDetails(t *testing.T) {
	env := newTestEnv(t, config.Config{})
	require.NoError(t, env.store.Close())

	rec := env.do(t, http.MethodGet, "/guru/list-guru", "")
	resp := requireMessage(t, rec, http.StatusInternalServerError, msgServerError)
	assert.Equal(t, codeServerError, resp.Error)
	assert.NotContains(t, rec.Body.String(), "closed")
}

func TestMetricsExposeRoutes(t *testing.T) {
	env := newTestEnv(t, config.Config{})
	env.do(t, http.MethodGet, "/guru/list-guru", "")
	env.do(t, http.MethodGet, "/kelas/get-kelas?id=9999", "")

	rec := env.do(t, http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `masterdata_http_requests_total{method="GET",route="/guru/list-guru",status="200"} 1`)
	assert.Contains(t, body, `masterdata_http_requests_total{method="GET",route="/kelas/get-kelas",status="404"} 1`)
	assert.Contains(t, body, "masterdata_http_request_duration_seconds")
}

func TestRequestID(t *testing.T) {
	env := newTestEnv(t, config.Config{})
	rec := env.do(t, http.MethodGet, "/health", "", requestIDHeader, "abc-123")
	assert.Equal(t, "abc-123", rec.Header().Get(requestIDHeader))

	rec = env.do(t, http.MethodGet, "/health", "")
	assert.Len(t, rec.Header().Get(requestIDHeader), 36)
}

func TestAuthGuardsWrites(t *testing.T) {
	cfg := config.Config{JWTSecret: "secret", JWTIssuer: "issuer"}
	env := newTestEnv(t, cfg)
	body := `{"name":"Andi"}`

	rec := env.do(t, http.MethodGet, "/student/list-student", "")
	require.Equal(t, http.StatusOK, rec.Code)

	rec = env.do(t, http.MethodPost, "/student/add-student", body)
	resp := requireMessage(t, rec, http.StatusUnauthorized, msgUnauthorized)
	assert.Equal(t, codeUnauthorized, resp.Error)

	rec = env.do(t, http.MethodPost, "/student/add-student", body, "Authorization", "Bearer not-a-token")
	requireMessage(t, rec, http.StatusUnauthorized, msgUnauthorized)

	teacherToken, err := auth.NewAccessToken("secret", "issuer", time.Minute, auth.Claims{UserID: "t-1", UserType: "teacher"})
	require.NoError(t, err)
	rec = env.do(t, http.MethodPost, "/student/add-student", body, "Authorization", "Bearer "+teacherToken)
	resp = requireMessage(t, rec, http.StatusForbidden, msgForbidden)
	assert.Equal(t, codeForbidden, resp.Error)

	adminToken, err := auth.NewAccessToken("secret", "issuer", time.Minute, auth.Claims{UserID: "a-1", UserType: auth.UserTypeAdmin})
	require.NoError(t, err)
	rec = env.do(t, http.MethodPost, "/student/add-student", body, "Authorization", "Bearer "+adminToken)
	requireMessage(t, rec, http.StatusCreated, "Berhasil menambahkan data student baru (id: 1)")
}

func TestModifiedAtNeverGoesBack(t *testing.T) {
	env := newTestEnv(t, config.Config{})
	fixed := time.Date(2026, 1, 1, 8, 0, 0, 0, time.UTC)
	env.server.now = func() time.Time { return fixed }

	assert.Equal(t, fixed, env.server.modifiedAt(fixed.Add(-time.Hour)))
	assert.Equal(t, fixed.Add(time.Hour), env.server.modifiedAt(fixed.Add(time.Hour)))
}

func TestParseID(t *testing.T) {
	cases := map[string]bool{
		"1":           true,
		" 42 ":        true,
		"0":           false,
		"-3":          false,
		"":            false,
		"abc":         false,
		"1.5":         false,
		"99999999999": false,
	}
	for raw, valid := range cases {
		_, ok := parseID(raw)
		assert.Equal(t, valid, ok, "id %q", raw)
	}
}
