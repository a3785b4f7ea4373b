package proxy

import (
	"crypto/tls"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httputil"
	"net/url"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"golang.org/x/exp/slog"

	"housing/internal/app/devproxy/api/http/middleware/requestid"
	"housing/internal/app/devproxy/config"
	"housing/internal/app/devproxy/metrics"
)

// CORSHeaders добавляются к каждому ответу backend
var CORSHeaders = map[string]string{
	"Access-Control-Allow-Origin":  "*",
	"Access-Control-Allow-Methods": "GET,PUT,POST,DELETE,OPTIONS",
	"Access-Control-Allow-Headers": "Content-Type, Authorization, Content-Length, X-Requested-With",
}

// Proxy пересылает все запросы на backend
type Proxy struct {
	target *url.URL
	rp     *httputil.ReverseProxy
	log    *slog.Logger
}

func New(cfg *config.Config, log *slog.Logger) (*Proxy, error) {
	target, err := url.Parse(cfg.Proxy.Target)
	if err != nil {
		return nil, fmt.Errorf("parse target: %w", err)
	}

	p := &Proxy{
		target: target,
		log:    log.With(slog.String("component", "proxy")),
	}

	changeOrigin := cfg.Proxy.ChangeOrigin
	p.rp = &httputil.ReverseProxy{
		Rewrite: func(r *httputil.ProxyRequest) {
			r.SetURL(target)
			if !changeOrigin {
				r.Out.Host = r.In.Host
			}
			r.SetXForwarded()
		},
		ModifyResponse: func(resp *http.Response) error {
			setCORS(resp.Header)
			return nil
		},
		ErrorHandler: p.handleError,
		Transport: &http.Transport{
			Proxy:               http.ProxyFromEnvironment,
			MaxIdleConns:        100,
			IdleConnTimeout:     90 * time.Second,
			MaxIdleConnsPerHost: 10,
			TLSClientConfig:     &tls.Config{InsecureSkipVerify: cfg.Proxy.InsecureSkipVerify}, //nolint:gosec // dev-only proxy
		},
	}

	return p, nil
}

func (p *Proxy) Target() string {
	return p.target.String()
}

func (p *Proxy) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

	p.rp.ServeHTTP(ww, r)

	metrics.ObserveRequest(r.Method, ww.Status(), start)
}

func (p *Proxy) handleError(w http.ResponseWriter, r *http.Request, err error) {
	metrics.UpstreamErrorsTotal.Inc()
	p.log.Error("upstream request failed",
		slog.String("method", r.Method),
		slog.String("path", r.URL.Path),
		slog.String("request_id", requestid.FromContext(r.Context())),
		slog.String("error", err.Error()),
	)

	setCORS(w.Header())
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusBadGateway)
	_ = json.NewEncoder(w).Encode(map[string]string{
		"error": "bad gateway",
	})
}

func setCORS(h http.Header) {
	for k, v := range CORSHeaders {
		h.Set(k, v)
	}
}
