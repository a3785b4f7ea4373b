// Маршруты dev-прокси:
//
//GET  /_proxy/health    # состояние прокси (huma)
//GET  /_proxy/metrics   # метрики Prometheus
//*    /_proxy/*         # 404, на backend не уходит
//*    /*                # все остальное уходит на backend

package api

import (
	"net/http"

	healthAPI "housing/internal/app/devproxy/api/http/health"
	"housing/internal/app/devproxy/api/http/middleware"
	"housing/internal/app/devproxy/api/http/middleware/logger"
	"housing/internal/app/devproxy/api/http/middleware/requestid"
	"housing/internal/app/devproxy/proxy"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/exp/slog"
)

const (
	reservedPrefix = "/_proxy"
	MetricsPath    = reservedPrefix + "/metrics"
)

// New создает *chi.Mux: служебные маршруты прокси плюс catch-all на backend
func New(p *proxy.Proxy, log *slog.Logger) *chi.Mux {
	mux := chi.NewMux()
	mux.Use(requestid.Middleware)

	config := huma.DefaultConfig("Housing dev proxy", "1.0.0")
	config.OpenAPIPath = reservedPrefix + "/openapi"
	config.DocsPath = reservedPrefix + "/docs"
	config.SchemasPath = reservedPrefix + "/schemas"

	API := humachi.New(mux, config)

	loggerMW := logger.New(log)
	middlewares := middleware.NewContainer(loggerMW.Middleware())
	healthHandler := healthAPI.NewHandler(p.Target(), log, middlewares.GetAllAndClear())
	healthHandler.SetupRoutes(API)

	mux.Handle(MetricsPath, promhttp.Handler())
	mux.Handle(reservedPrefix+"/*", http.NotFoundHandler())
	mux.With(loggerMW.Handler).Handle("/*", p)

	return mux
}
