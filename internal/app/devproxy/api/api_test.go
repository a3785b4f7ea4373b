package api

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"housing/internal/app/devproxy/api/http/health"
	"housing/internal/app/devproxy/api/http/middleware/requestid"
	"housing/internal/app/devproxy/config"
	"housing/internal/app/devproxy/proxy"
	"housing/internal/utils/logger"
)

func newTestServer(t *testing.T) (*httptest.Server, *int32) {
	t.Helper()

	var hits int32
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		w.Header().Set("X-Seen-Request-ID", r.Header.Get(requestid.Header))
		w.WriteHeader(http.StatusUnauthorized)
	}))
	t.Cleanup(backend.Close)

	cfg := &config.Config{}
	cfg.Proxy.Target = backend.URL
	cfg.Proxy.ChangeOrigin = true

	p, err := proxy.New(cfg, logger.Discard())
	require.NoError(t, err)

	srv := httptest.NewServer(New(p, logger.Discard()))
	t.Cleanup(srv.Close)

	return srv, &hits
}

func TestAPI_Health(t *testing.T) {
	srv, hits := newTestServer(t)

	resp, err := http.Get(srv.URL + health.Path)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var body health.Response
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "OK", body.Status)
	assert.NotEmpty(t, body.Target)
	assert.NotEmpty(t, resp.Header.Get(requestid.Header))
	assert.Zero(t, atomic.LoadInt32(hits))
}

func TestAPI_Metrics(t *testing.T) {
	srv, hits := newTestServer(t)

	// один проксированный запрос, чтобы счетчик появился в выдаче
	resp, err := http.Post(srv.URL+"/api/login", "application/json", nil)
	require.NoError(t, err)
	resp.Body.Close()

	resp, err = http.Get(srv.URL + MetricsPath)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(raw), "devproxy_requests_total")
	assert.Equal(t, int32(1), atomic.LoadInt32(hits))
}

func TestAPI_ForwardsWithRequestID(t *testing.T) {
	srv, hits := newTestServer(t)

	t.Run("generated when missing", func(t *testing.T) {
		resp, err := http.Post(srv.URL+"/api/login", "application/json", nil)
		require.NoError(t, err)
		resp.Body.Close()

		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		id := resp.Header.Get(requestid.Header)
		_, err = uuid.Parse(id)
		assert.NoError(t, err)
		assert.Equal(t, id, resp.Header.Get("X-Seen-Request-ID"))
		assert.Equal(t, "*", resp.Header.Get("Access-Control-Allow-Origin"))
	})

	t.Run("kept when sent by caller", func(t *testing.T) {
		req, _ := http.NewRequest(http.MethodPost, srv.URL+"/api/signup", nil)
		req.Header.Set(requestid.Header, "trace-42")

		resp, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		resp.Body.Close()

		assert.Equal(t, "trace-42", resp.Header.Get("X-Seen-Request-ID"))
	})

	assert.Equal(t, int32(2), atomic.LoadInt32(hits))
}

func TestAPI_ReservedPathsNotForwarded(t *testing.T) {
	srv, hits := newTestServer(t)

	for _, path := range []string{health.Path, "/_proxy/unknown"} {
		resp, err := http.Post(srv.URL+path, "application/json", nil)
		require.NoError(t, err)
		resp.Body.Close()

		assert.Equal(t, http.StatusNotFound, resp.StatusCode, path)
	}
	assert.Zero(t, atomic.LoadInt32(hits))
}
