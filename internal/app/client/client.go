package client

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"time"

	"golang.org/x/exp/slog"

	"housing/internal/app/client/config"
	"housing/internal/domain/credential"
)

// SessionCookie - имя cookie, которую сервер выставляет после входа
const SessionCookie = "session_id"

type App struct {
	config     *config.Config
	log        *slog.Logger
	dispatcher *Dispatcher
	jar        http.CookieJar
	storage    Storage
	serverURL  *url.URL
}

func New(cfg *config.Config, log *slog.Logger) (*App, error) {
	serverURL, err := url.Parse(cfg.BaseURL())
	if err != nil {
		return nil, fmt.Errorf("parse server address: %w", err)
	}

	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("create cookie jar: %w", err)
	}

	// таймаут не задан по умолчанию: действуют значения http.Client
	httpCl := &http.Client{
		Jar:     jar,
		Timeout: cfg.RequestTimeout,
		Transport: &http.Transport{
			Proxy:               http.ProxyFromEnvironment,
			MaxIdleConns:        10,
			IdleConnTimeout:     90 * time.Second,
			MaxIdleConnsPerHost: 2,
		},
	}

	var storage Storage
	sqliteStorage, err := NewSQLiteStorage(cfg.SessionPath)
	if err != nil {
		log.Warn("Не удалось открыть SQLite, сессия будет храниться в памяти", "error", err)
		storage = NewMemoryStorage()
	} else {
		storage = sqliteStorage
	}

	app := &App{
		config:     cfg,
		log:        log,
		dispatcher: NewDispatcher(httpCl, cfg, log),
		jar:        jar,
		storage:    storage,
		serverURL:  serverURL,
	}

	if sess, err := app.CurrentSession(); err == nil {
		jar.SetCookies(serverURL, []*http.Cookie{{Name: sess.CookieName, Value: sess.CookieValue, Path: "/"}})
		log.Debug("Сессия загружена из хранилища", "username", sess.Username)
	}

	return app, nil
}

// ServerURL возвращает адрес сервера, с которым работает клиент
func (a *App) ServerURL() string {
	return a.serverURL.String()
}

// Submit отправляет учетные данные и сохраняет сессию после успешного входа
func (a *App) Submit(ctx context.Context, mode credential.Mode, creds credential.Credentials) credential.Outcome {
	out := a.dispatcher.Submit(ctx, mode, creds)

	if out.Action == credential.ActionNavigateHome {
		if err := a.rememberSession(creds.Username); err != nil {
			a.log.Warn("Не удалось сохранить сессию", "error", err)
		}
	}

	return out
}

// SubmitForm отправляет текущее состояние формы и применяет результат к ней
func (a *App) SubmitForm(ctx context.Context, f *Form) credential.Outcome {
	f.Message = ""
	out := a.Submit(ctx, f.Mode, f.Credentials())
	f.Apply(out)
	return out
}

func (a *App) rememberSession(username string) error {
	var cookie *http.Cookie
	for _, c := range a.jar.Cookies(a.serverURL) {
		if c.Name == SessionCookie {
			cookie = c
			break
		}
	}

	if cookie == nil {
		a.log.Debug("Сервер не выставил cookie сессии")
		return nil
	}

	return a.storage.SaveSession(&Session{
		Host:        a.serverURL.Host,
		Username:    username,
		CookieName:  cookie.Name,
		CookieValue: cookie.Value,
		CreatedAt:   time.Now().UTC(),
	})
}

// CurrentSession возвращает сохраненную сессию для текущего сервера
func (a *App) CurrentSession() (*Session, error) {
	return a.storage.GetSession(a.serverURL.Host)
}

// IsAuthenticated проверяет, есть ли сохраненная сессия
func (a *App) IsAuthenticated() bool {
	_, err := a.CurrentSession()
	return err == nil
}

// Logout удаляет сохраненную сессию
func (a *App) Logout() error {
	if _, err := a.CurrentSession(); errors.Is(err, ErrNoSession) {
		return ErrNoSession
	}

	if err := a.storage.DeleteSession(a.serverURL.Host); err != nil {
		return fmt.Errorf("ошибка удаления сессии: %w", err)
	}

	a.jar.SetCookies(a.serverURL, []*http.Cookie{{Name: SessionCookie, Value: "", Path: "/", MaxAge: -1}})
	a.log.Info("Сессия удалена", "server", a.serverURL.Host)

	return nil
}

func (a *App) Close() error {
	return a.storage.Close()
}
