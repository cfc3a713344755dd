package storage

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"time"

	"github.com/nikbrunner/lcl/internal/model"
	"github.com/nikbrunner/lcl/internal/sqlitedb"
)

//go:embed migrations/*.sql
var migrations embed.FS

// timeLayout has fixed-width fractions so created_at sorts as text.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

// SQLiteStorage implements BookmarkStore using a SQLite database.
// Rows are scoped to one installation id so several installations can
// share a database file.
type SQLiteStorage struct {
	db             *sql.DB
	path           string
	installationID string
}

// NewSQLiteStorage opens the bookmark database at path for the installation.
func NewSQLiteStorage(path, installationID string) (*SQLiteStorage, error) {
	db, err := sqlitedb.Open(path, migrations, "migrations")
	if err != nil {
		return nil, fmt.Errorf("open bookmark store: %w", err)
	}
	return &SQLiteStorage{db: db, path: path, installationID: installationID}, nil
}

// Path returns the database file path.
func (s *SQLiteStorage) Path() string {
	return s.path
}

// Close closes the database connection.
func (s *SQLiteStorage) Close() error {
	return s.db.Close()
}

// HasBookmark reports whether the command is bookmarked.
func (s *SQLiteStorage) HasBookmark(ctx context.Context, commandID int64) (bool, error) {
	var exists int
	err := s.db.QueryRowContext(ctx, `
		SELECT EXISTS(
			SELECT 1 FROM bookmarks WHERE installation_id = ? AND command_id = ?
		)
	`, s.installationID, commandID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("query bookmark %d: %w", commandID, err)
	}
	return exists == 1, nil
}

// AddBookmark bookmarks the command. Existing bookmarks keep their timestamp.
func (s *SQLiteStorage) AddBookmark(ctx context.Context, commandID int64) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT OR IGNORE INTO bookmarks (installation_id, command_id, created_at)
		VALUES (?, ?, ?)
	`, s.installationID, commandID, time.Now().UTC().Format(timeLayout))
	if err != nil {
		return fmt.Errorf("add bookmark %d: %w", commandID, err)
	}
	return nil
}

// RemoveBookmark deletes the command's bookmark if there is one.
func (s *SQLiteStorage) RemoveBookmark(ctx context.Context, commandID int64) error {
	_, err := s.db.ExecContext(ctx, `
		DELETE FROM bookmarks WHERE installation_id = ? AND command_id = ?
	`, s.installationID, commandID)
	if err != nil {
		return fmt.Errorf("remove bookmark %d: %w", commandID, err)
	}
	return nil
}

// Bookmarks returns all bookmarks of the installation, oldest first.
func (s *SQLiteStorage) Bookmarks(ctx context.Context) ([]model.Bookmark, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT command_id, created_at
		FROM bookmarks
		WHERE installation_id = ?
		ORDER BY created_at, command_id
	`, s.installationID)
	if err != nil {
		return nil, fmt.Errorf("list bookmarks: %w", err)
	}
	defer rows.Close()

	bookmarks := []model.Bookmark{}
	for rows.Next() {
		var b model.Bookmark
		var createdAt string
		if err := rows.Scan(&b.CommandID, &createdAt); err != nil {
			return nil, err
		}
		b.CreatedAt, _ = time.Parse(timeLayout, createdAt)
		bookmarks = append(bookmarks, b)
	}

	return bookmarks, rows.Err()
}
