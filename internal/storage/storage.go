package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"go.uber.org/zap"

	"github.com/nikbrunner/lcl/internal/model"
)

// ErrUnknownBackend is returned by Open for an unsupported backend name.
var ErrUnknownBackend = errors.New("unknown storage backend")

// Backend names accepted by Open.
const (
	BackendSQLite = "sqlite"
	BackendJSON   = "json"
)

// BookmarkStore persists which commands are bookmarked.
// A command is either bookmarked or not; adding twice keeps one record and
// removing an absent bookmark is a no-op.
type BookmarkStore interface {
	HasBookmark(ctx context.Context, commandID int64) (bool, error)
	AddBookmark(ctx context.Context, commandID int64) error
	RemoveBookmark(ctx context.Context, commandID int64) error
	Bookmarks(ctx context.Context) ([]model.Bookmark, error)
	Path() string
	Close() error
}

// Options selects and configures a bookmark backend.
type Options struct {
	Backend        string // "sqlite" (default) or "json"
	SQLitePath     string
	JSONPath       string
	InstallationID string
}

// Open opens the bookmark store described by opts.
func Open(opts Options, logger *zap.Logger) (BookmarkStore, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	var store BookmarkStore
	backend := opts.Backend
	switch backend {
	case "", BackendSQLite:
		backend = BackendSQLite
		s, err := NewSQLiteStorage(opts.SQLitePath, opts.InstallationID)
		if err != nil {
			return nil, err
		}
		store = s
	case BackendJSON:
		store = NewJSONStorage(opts.JSONPath)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, opts.Backend)
	}

	logger.Debug("opened bookmark store",
		zap.String("backend", backend),
		zap.String("path", store.Path()))
	return store, nil
}

// JSONStorage implements BookmarkStore using a JSON file.
// The whole file is rewritten on every change.
type JSONStorage struct {
	path string
	mu   sync.Mutex
}

type jsonFile struct {
	Bookmarks []model.Bookmark `json:"bookmarks"`
}

// NewJSONStorage creates a new JSONStorage with the given file path.
func NewJSONStorage(path string) *JSONStorage {
	return &JSONStorage{path: path}
}

// Path returns the storage file path.
func (s *JSONStorage) Path() string {
	return s.path
}

// HasBookmark reports whether the command is bookmarked.
func (s *JSONStorage) HasBookmark(ctx context.Context, commandID int64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	bookmarks, err := s.load()
	if err != nil {
		return false, err
	}
	_, ok := bookmarks[commandID]
	return ok, nil
}

// AddBookmark bookmarks the command. Existing bookmarks keep their timestamp.
func (s *JSONStorage) AddBookmark(ctx context.Context, commandID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	bookmarks, err := s.load()
	if err != nil {
		return err
	}
	if _, ok := bookmarks[commandID]; ok {
		return nil
	}
	bookmarks[commandID] = model.NewBookmark(commandID)
	return s.save(bookmarks)
}

// RemoveBookmark deletes the command's bookmark if there is one.
func (s *JSONStorage) RemoveBookmark(ctx context.Context, commandID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	bookmarks, err := s.load()
	if err != nil {
		return err
	}
	if _, ok := bookmarks[commandID]; !ok {
		return nil
	}
	delete(bookmarks, commandID)
	return s.save(bookmarks)
}

// Bookmarks returns all bookmarks, oldest first.
func (s *JSONStorage) Bookmarks(ctx context.Context) ([]model.Bookmark, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	bookmarks, err := s.load()
	if err != nil {
		return nil, err
	}
	return sortedBookmarks(bookmarks), nil
}

// Close is a no-op; the file is not held open.
func (s *JSONStorage) Close() error {
	return nil
}

// load reads the bookmark file into a set keyed by command id.
// A missing file is an empty set.
func (s *JSONStorage) load() (map[int64]model.Bookmark, error) {
	result := make(map[int64]model.Bookmark)

	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return result, nil
		}
		return nil, fmt.Errorf("read bookmarks: %w", err)
	}

	var file jsonFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse bookmarks: %w", err)
	}

	// Older files may contain duplicates; the first one wins.
	for _, b := range file.Bookmarks {
		if _, ok := result[b.CommandID]; !ok {
			result[b.CommandID] = b
		}
	}
	return result, nil
}

// save writes the set back, creating the directory if it doesn't exist.
func (s *JSONStorage) save(bookmarks map[int64]model.Bookmark) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("create bookmarks dir: %w", err)
	}

	data, err := json.MarshalIndent(jsonFile{Bookmarks: sortedBookmarks(bookmarks)}, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(s.path, data, 0644)
}

func sortedBookmarks(set map[int64]model.Bookmark) []model.Bookmark {
	result := make([]model.Bookmark, 0, len(set))
	for _, b := range set {
		result = append(result, b)
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].CreatedAt.Equal(result[j].CreatedAt) {
			return result[i].CommandID < result[j].CommandID
		}
		return result[i].CreatedAt.Before(result[j].CreatedAt)
	})
	return result
}
