package devproxy

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"golang.org/x/exp/slog"

	"housing/internal/app/devproxy/api"
	"housing/internal/app/devproxy/config"
	"housing/internal/app/devproxy/proxy"
)

const shutdownTimeout = 5 * time.Second

type App struct {
	cfg    *config.Config
	log    *slog.Logger
	server *http.Server
}

func New(cfg *config.Config, log *slog.Logger) (*App, error) {
	p, err := proxy.New(cfg, log)
	if err != nil {
		return nil, fmt.Errorf("create proxy: %w", err)
	}

	if cfg.Proxy.InsecureSkipVerify {
		log.Warn("TLS verification of the backend is disabled")
	}

	return &App{
		cfg: cfg,
		log: log,
		server: &http.Server{
			Addr:              cfg.Server.ListenAddress,
			Handler:           api.New(p, log),
			ReadHeaderTimeout: 10 * time.Second,
		},
	}, nil
}

// Handler нужен тестам, чтобы поднять прокси на httptest.Server
func (a *App) Handler() http.Handler {
	return a.server.Handler
}

// Run слушает адрес до отмены ctx, затем плавно завершает работу
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		a.log.Info("dev proxy started",
			slog.String("addr", a.cfg.Server.ListenAddress),
			slog.String("target", a.cfg.Proxy.Target),
			slog.String("env", a.cfg.Env),
		)
		if err := a.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	a.log.Info("shutting down dev proxy")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := a.server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	return nil
}
