package client

import (
	"errors"
	"sync"
	"time"
)

var ErrNoSession = errors.New("session not found")

// Session - cookie, выданная сервером после успешного входа
type Session struct {
	Host        string    `json:"host"`
	Username    string    `json:"username"`
	CookieName  string    `json:"cookie_name"`
	CookieValue string    `json:"cookie_value"`
	CreatedAt   time.Time `json:"created_at"`
}

// Storage хранит сессии по адресу сервера
type Storage interface {
	SaveSession(s *Session) error
	GetSession(host string) (*Session, error)
	DeleteSession(host string) error
	Close() error
}

// MemoryStorage - запасное in-memory хранилище
type MemoryStorage struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{
		sessions: make(map[string]*Session),
	}
}

func (m *MemoryStorage) SaveSession(s *Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	cp := *s
	m.sessions[s.Host] = &cp
	return nil
}

func (m *MemoryStorage) GetSession(host string) (*Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	s, ok := m.sessions[host]
	if !ok {
		return nil, ErrNoSession
	}
	cp := *s
	return &cp, nil
}

func (m *MemoryStorage) DeleteSession(host string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.sessions, host)
	return nil
}

func (m *MemoryStorage) Close() error {
	return nil
}
