package logger

import (
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/go-chi/chi/v5/middleware"
	"golang.org/x/exp/slog"

	"housing/internal/app/devproxy/api/http/middleware/requestid"
)

// Logger middleware для логирования входящих HTTP запросов
type Logger struct {
	log *slog.Logger
}

// New создает новый экземпляр Logger middleware
func New(log *slog.Logger) *Logger {
	return &Logger{
		log: log.With(slog.String("component", "http_logger")),
	}
}

// Middleware возвращает middleware для операций huma
func (l *Logger) Middleware() func(huma.Context, func(huma.Context)) {
	return func(ctx huma.Context, next func(huma.Context)) {
		start := time.Now()

		method := ctx.Method()
		path := ctx.URL().Path
		remoteAddr := ctx.RemoteAddr()

		next(ctx)

		l.write(method, path, ctx.Status(), time.Since(start), remoteAddr, requestid.FromContext(ctx.Context()))
	}
}

// Handler - то же самое для обычных http.Handler (проксируемые запросы)
func (l *Logger) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		l.write(r.Method, r.URL.Path, ww.Status(), time.Since(start), r.RemoteAddr, requestid.FromContext(r.Context()))
	})
}

func (l *Logger) write(method, path string, status int, duration time.Duration, remoteAddr, requestID string) {
	l.log.Info("HTTP request",
		slog.String("method", method),
		slog.String("path", path),
		slog.Int("status", status),
		slog.Duration("duration", duration),
		slog.String("remote_addr", remoteAddr),
		slog.String("request_id", requestID),
	)
}
