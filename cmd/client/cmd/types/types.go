package types

import (
	"context"
	"fmt"

	"housing/internal/app/client"
)

type contextKey string

// ClientAppKey - ключ, под которым *client.App лежит в контексте команды
const ClientAppKey contextKey = "client_app"

// App достает приложение из контекста команды
func App(ctx context.Context) (*client.App, error) {
	if ctx == nil {
		return nil, fmt.Errorf("приложение не инициализировано")
	}
	app, ok := ctx.Value(ClientAppKey).(*client.App)
	if !ok || app == nil {
		return nil, fmt.Errorf("приложение не инициализировано")
	}
	return app, nil
}
