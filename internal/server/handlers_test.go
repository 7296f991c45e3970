package server

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xtrillion/minerva-site/apimodels"
	"github.com/xtrillion/minerva-site/internal/config"
	"github.com/xtrillion/minerva-site/internal/demo"
	"github.com/xtrillion/minerva-site/internal/mcp"
)

// fredFake serves a CPI series long enough for the YoY transform.
func fredFake(t *testing.T) *httptest.Server {
	t.Helper()
	rows := make([]map[string]any, 0, 24)
	start := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 24; i++ {
		rows = append(rows, map[string]any{
			"date":  start.AddDate(0, i, 0).Format("2006-01-02"),
			"value": 300 + float64(i),
		})
	}
	inner, err := json.Marshal(map[string]any{
		"title":      "Consumer Price Index for All Urban Consumers",
		"units":      "Index 1982-1984=100",
		"chart_data": rows,
	})
	require.NoError(t, err)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"content": []map[string]string{{"text": string(inner)}},
		})
	}))
	t.Cleanup(srv.Close)
	return srv
}

func newTestServer(t *testing.T) *Server {
	t.Helper()
	fredSrv := fredFake(t)

	imfSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{"error": "not under test"})
	}))
	t.Cleanup(imfSrv.Close)

	fredClient, err := mcp.NewClient(fredSrv.URL, 5*time.Second)
	require.NoError(t, err)
	imfClient, err := mcp.NewClient(imfSrv.URL, 5*time.Second)
	require.NoError(t, err)

	engine := demo.NewEngine(mcp.NewFREDClient(fredClient, 10), mcp.NewIMFClient(imfClient))

	cfg := config.Config{
		Server: config.ServerConfig{Host: "127.0.0.1", Port: "0", StaticDir: t.TempDir()},
	}
	return New(cfg, engine)
}

func postJSON(t *testing.T, handler http.Handler, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestHandleHealth(t *testing.T) {
	s := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/health", nil)
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestHandleDemo(t *testing.T) {
	s := newTestServer(t)

	rec := postJSON(t, s.router, "/api/v1/demo", apimodels.DemoRequest{Query: "Show me US inflation"})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp apimodels.DemoResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, demo.PersonaFRED, resp.Responder)
	assert.NotEmpty(t, resp.Chart)
	assert.NotEmpty(t, resp.SessionID)
}

func TestHandleDemoSessionSlotOverwritten(t *testing.T) {
	s := newTestServer(t)

	rec := postJSON(t, s.router, "/api/v1/demo", apimodels.DemoRequest{Query: "cpi"})
	require.Equal(t, http.StatusOK, rec.Code)
	var first apimodels.DemoResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &first))

	rec = postJSON(t, s.router, "/api/v1/demo", apimodels.DemoRequest{
		Query:     "nothing recognizable",
		SessionID: first.SessionID,
	})
	require.Equal(t, http.StatusOK, rec.Code)
	var second apimodels.DemoResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &second))
	assert.Equal(t, first.SessionID, second.SessionID)
	assert.Equal(t, demo.PersonaFallback, second.Responder)

	// The session slot holds only the newest response.
	req := httptest.NewRequest(http.MethodGet, fmt.Sprintf("/api/v1/demo/last?sessionId=%s", first.SessionID), nil)
	last := httptest.NewRecorder()
	s.router.ServeHTTP(last, req)
	require.Equal(t, http.StatusOK, last.Code)

	var restored apimodels.DemoResponse
	require.NoError(t, json.Unmarshal(last.Body.Bytes(), &restored))
	assert.Equal(t, demo.PersonaFallback, restored.Responder)
}

func TestHandleDemoRequiresQuery(t *testing.T) {
	s := newTestServer(t)

	rec := postJSON(t, s.router, "/api/v1/demo", apimodels.DemoRequest{Query: "   "})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleDemoLastUnknownSession(t *testing.T) {
	s := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/demo/last?sessionId=nope", nil)
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandleContact(t *testing.T) {
	s := newTestServer(t)

	rec := postJSON(t, s.router, "/api/v1/contact", apimodels.ContactRequest{
		Name:    "Ada",
		Email:   "ada@example.com",
		Message: "Tell me more about Minerva.",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"received"}`, rec.Body.String())

	rec = postJSON(t, s.router, "/api/v1/contact", apimodels.ContactRequest{Name: "Ada"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
