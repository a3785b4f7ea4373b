package client

import (
	"database/sql"
	"errors"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

type SQLiteStorage struct {
	db *sql.DB
}

func NewSQLiteStorage(path string) (*SQLiteStorage, error) {
	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	storage := &SQLiteStorage{db: db}

	if err := storage.initTables(); err != nil {
		db.Close()
		return nil, fmt.Errorf("init tables: %w", err)
	}

	return storage, nil
}

func (s *SQLiteStorage) initTables() error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS sessions (
			host TEXT PRIMARY KEY,
			username TEXT NOT NULL,
			cookie_name TEXT NOT NULL,
			cookie_value TEXT NOT NULL,
			created_at DATETIME NOT NULL
		);
	`)

	return err
}

func (s *SQLiteStorage) SaveSession(sess *Session) error {
	_, err := s.db.Exec(`
		INSERT INTO sessions (host, username, cookie_name, cookie_value, created_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(host) DO UPDATE SET
			username = excluded.username,
			cookie_name = excluded.cookie_name,
			cookie_value = excluded.cookie_value,
			created_at = excluded.created_at
	`, sess.Host, sess.Username, sess.CookieName, sess.CookieValue, sess.CreatedAt)
	if err != nil {
		return fmt.Errorf("save session: %w", err)
	}

	return nil
}

func (s *SQLiteStorage) GetSession(host string) (*Session, error) {
	var sess Session
	err := s.db.QueryRow(`
		SELECT host, username, cookie_name, cookie_value, created_at
		FROM sessions WHERE host = ?
	`, host).Scan(&sess.Host, &sess.Username, &sess.CookieName, &sess.CookieValue, &sess.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNoSession
	}
	if err != nil {
		return nil, fmt.Errorf("get session: %w", err)
	}

	return &sess, nil
}

func (s *SQLiteStorage) DeleteSession(host string) error {
	if _, err := s.db.Exec(`DELETE FROM sessions WHERE host = ?`, host); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

func (s *SQLiteStorage) Close() error {
	return s.db.Close()
}
