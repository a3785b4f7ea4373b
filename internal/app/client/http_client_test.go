package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"housing/internal/app/client/config"
	"housing/internal/domain/credential"
	"housing/internal/utils/logger"
)

// MockDoer - мок HTTP-клиента
type MockDoer struct {
	mock.Mock
}

func (m *MockDoer) Do(req *http.Request) (*http.Response, error) {
	args := m.Called(req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*http.Response), args.Error(1)
}

type recordedRequest struct {
	method      string
	path        string
	contentType string
	body        credential.Credentials
}

type requestLog struct {
	mu   sync.Mutex
	reqs []recordedRequest
}

func (l *requestLog) all() []recordedRequest {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]recordedRequest(nil), l.reqs...)
}

// backend поднимает тестовый сервер, отвечающий заданным статусом
func backend(t *testing.T, status int) (*httptest.Server, *requestLog) {
	t.Helper()

	got := &requestLog{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body credential.Credentials
		_ = json.NewDecoder(r.Body).Decode(&body)
		got.mu.Lock()
		defer got.mu.Unlock()
		got.reqs = append(got.reqs, recordedRequest{
			method:      r.Method,
			path:        r.URL.Path,
			contentType: r.Header.Get("Content-Type"),
			body:        body,
		})
		w.WriteHeader(status)
	}))
	t.Cleanup(srv.Close)

	return srv, got
}

func newTestDispatcher(doer Doer, serverURL string) *Dispatcher {
	cfg := &config.Config{ServerAddress: serverURL, APIPrefix: "/api"}
	return NewDispatcher(doer, cfg, logger.Discard())
}

func TestDispatcher_Submit(t *testing.T) {
	tests := []struct {
		name       string
		mode       credential.Mode
		status     int
		wantPath   string
		wantMsg    string
		wantAction credential.Action
	}{
		{"login ok", credential.ModeLogin, http.StatusOK, "/api/login", credential.MsgLoginSuccess, credential.ActionNavigateHome},
		{"login unauthorized", credential.ModeLogin, http.StatusUnauthorized, "/api/login", credential.MsgInvalidCredentials, credential.ActionNone},
		{"login unavailable", credential.ModeLogin, http.StatusServiceUnavailable, "/api/login", credential.MsgLoginFailed, credential.ActionNone},
		{"signup ok", credential.ModeSignup, http.StatusOK, "/api/signup", credential.MsgSignupSuccess, credential.ActionClearFields},
		{"signup bad request", credential.ModeSignup, http.StatusBadRequest, "/api/signup", credential.MsgInvalidEmail, credential.ActionNone},
		{"signup conflict", credential.ModeSignup, http.StatusConflict, "/api/signup", credential.MsgUserExists, credential.ActionNone},
		{"signup server error", credential.ModeSignup, http.StatusInternalServerError, "/api/signup", credential.MsgSignupFailed, credential.ActionNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, got := backend(t, tt.status)
			d := newTestDispatcher(srv.Client(), srv.URL)

			creds := credential.Credentials{Username: "renter@madison.gov", Password: "hunter22"}
			out := d.Submit(context.Background(), tt.mode, creds)

			assert.Equal(t, tt.wantMsg, out.Message)
			assert.Equal(t, tt.wantAction, out.Action)
			assert.Equal(t, tt.status, out.Status)

			reqs := got.all()
			require.Len(t, reqs, 1)
			req := reqs[0]
			assert.Equal(t, http.MethodPost, req.method)
			assert.Equal(t, tt.wantPath, req.path)
			assert.Equal(t, "application/json", req.contentType)
			assert.Equal(t, creds, req.body)
		})
	}
}

func TestDispatcher_Submit_InvalidEmailSkipsNetwork(t *testing.T) {
	doer := new(MockDoer)
	d := newTestDispatcher(doer, "http://localhost:8000")

	out := d.Submit(context.Background(), credential.ModeSignup, credential.Credentials{Username: "user@@x.com", Password: "pw"})

	assert.Equal(t, credential.MsgInvalidEmail, out.Message)
	assert.Equal(t, credential.KindValidation, out.Kind)
	assert.Zero(t, out.Status)
	doer.AssertNotCalled(t, "Do", mock.Anything)
}

func TestDispatcher_Submit_LoginSkipsEmailCheck(t *testing.T) {
	srv, got := backend(t, http.StatusOK)
	d := newTestDispatcher(srv.Client(), srv.URL)

	out := d.Submit(context.Background(), credential.ModeLogin, credential.Credentials{Username: "admin", Password: "pw"})

	assert.True(t, out.IsSuccess())
	assert.Len(t, got.all(), 1)
}

func TestDispatcher_Submit_NetworkError(t *testing.T) {
	doer := new(MockDoer)
	doer.On("Do", mock.Anything).Return(nil, errors.New("connection refused")).Once()
	d := newTestDispatcher(doer, "http://localhost:8000")

	out := d.Submit(context.Background(), credential.ModeLogin, credential.Credentials{Username: "a@b.co", Password: "pw"})

	assert.Equal(t, credential.MsgNetworkError, out.Message)
	assert.Equal(t, credential.KindTransport, out.Kind)
	doer.AssertExpectations(t)
}

func TestDispatcher_Submit_ServerDown(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	d := newTestDispatcher(http.DefaultClient, url)
	out := d.Submit(context.Background(), credential.ModeSignup, credential.Credentials{Username: "a@b.co", Password: "pw"})

	assert.Equal(t, credential.MsgNetworkError, out.Message)
}

func TestDispatcher_Submit_OneRequestPerCall(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	d := newTestDispatcher(srv.Client(), srv.URL)
	out := d.Submit(context.Background(), credential.ModeLogin, credential.Credentials{Username: "a@b.co", Password: "pw"})

	assert.Equal(t, credential.MsgLoginFailed, out.Message)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestDispatcher_Endpoint(t *testing.T) {
	cfg := &config.Config{ServerAddress: "localhost:5173", APIPrefix: "/api"}
	d := NewDispatcher(http.DefaultClient, cfg, logger.Discard())

	assert.Equal(t, "http://localhost:5173/api/login", d.Endpoint(credential.ModeLogin))
	assert.Equal(t, "http://localhost:5173/api/signup", d.Endpoint(credential.ModeSignup))
}
