package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"golang.org/x/exp/slog"

	"housing/internal/app/client/config"
	"housing/internal/domain/credential"
)

// Doer - минимальный HTTP-клиент, нужен для подмены в тестах
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Dispatcher проверяет учетные данные и отправляет их на сервер.
// Состояния не хранит, безопасен для конкурентного использования.
type Dispatcher struct {
	client    Doer
	log       *slog.Logger
	baseURL   string
	apiPrefix string
	userAgent string
}

func NewDispatcher(client Doer, cfg *config.Config, log *slog.Logger) *Dispatcher {
	return &Dispatcher{
		client:    client,
		log:       log.With(slog.String("component", "dispatcher")),
		baseURL:   cfg.BaseURL(),
		apiPrefix: cfg.APIPrefix,
		userAgent: "Housing-Client/1.0",
	}
}

// Endpoint возвращает полный URL эндпоинта для режима
func (d *Dispatcher) Endpoint(mode credential.Mode) string {
	return d.baseURL + d.apiPrefix + mode.Path()
}

// Submit выполняет одну попытку входа или регистрации.
// В режиме регистрации невалидный email отсекается без запроса к серверу.
func (d *Dispatcher) Submit(ctx context.Context, mode credential.Mode, creds credential.Credentials) credential.Outcome {
	if mode == credential.ModeSignup && !credential.ValidateIdentifier(creds.Username) {
		d.log.Debug("identifier rejected locally", "username", creds.Username)
		return credential.InvalidIdentifier()
	}

	status, err := d.post(ctx, d.Endpoint(mode), creds)
	if err != nil {
		d.log.Error("submit failed", "mode", mode.String(), "error", err)
		return credential.NetworkError()
	}

	out := credential.FromStatus(mode, status)
	d.log.Info("submit finished",
		"mode", mode.String(),
		"username", creds.Username,
		"status", status,
		"success", out.IsSuccess(),
	)

	return out
}

func (d *Dispatcher) post(ctx context.Context, url string, body interface{}) (int, error) {
	jsonData, err := json.Marshal(body)
	if err != nil {
		return 0, fmt.Errorf("marshal request body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(jsonData))
	if err != nil {
		return 0, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", d.userAgent)

	d.log.Debug("sending request", "method", req.Method, "url", url)

	resp, err := d.client.Do(req)
	if err != nil {
		return 0, fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	// тело ответа не используется, но дочитываем его ради keep-alive
	_, _ = io.Copy(io.Discard, resp.Body)

	return resp.StatusCode, nil
}
