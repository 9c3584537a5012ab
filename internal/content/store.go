package content

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/afero"
)

const reloadDebounce = 250 * time.Millisecond

// Store holds the catalog currently served. Readers always get a complete
// catalog; a reload swaps it atomically.
type Store struct {
	fs      afero.Fs
	path    string
	current atomic.Pointer[Catalog]

	mu       sync.Mutex
	onReload []func(*Catalog)
}

// NewStore loads the catalog at path (or the built-in content when path is
// empty) and returns a store serving it.
func NewStore(fs afero.Fs, path string) (*Store, error) {
	cat, err := Load(fs, path)
	if err != nil {
		return nil, err
	}
	s := &Store{fs: fs, path: path}
	s.current.Store(cat)
	return s, nil
}

// NewStaticStore serves a fixed catalog.
func NewStaticStore(cat *Catalog) *Store {
	s := &Store{fs: afero.NewMemMapFs()}
	s.current.Store(cat)
	return s
}

// Catalog returns the catalog currently served.
func (s *Store) Catalog() *Catalog {
	return s.current.Load()
}

// Path is the override file, empty for built-in content.
func (s *Store) Path() string {
	return s.path
}

// OnReload registers fn to be called after every successful reload.
func (s *Store) OnReload(fn func(*Catalog)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onReload = append(s.onReload, fn)
}

// Reload re-reads the override file. On error the previous catalog stays
// in place.
func (s *Store) Reload() error {
	if s.path == "" {
		return nil
	}
	cat, err := Load(s.fs, s.path)
	if err != nil {
		return err
	}
	s.current.Store(cat)

	s.mu.Lock()
	hooks := append([]func(*Catalog){}, s.onReload...)
	s.mu.Unlock()
	for _, fn := range hooks {
		fn(cat)
	}
	return nil
}

// Watch reloads the override file whenever it changes on disk, until ctx is
// canceled. The parent directory is watched so editors that replace the file
// by rename are picked up.
func (s *Store) Watch(ctx context.Context) error {
	if s.path == "" {
		return fmt.Errorf("content store has no file to watch")
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create content watcher: %w", err)
	}
	target := filepath.Clean(s.path)
	if err := watcher.Add(filepath.Dir(target)); err != nil {
		watcher.Close()
		return fmt.Errorf("failed to watch %s: %w", filepath.Dir(target), err)
	}

	go func() {
		defer watcher.Close()
		var timer *time.Timer
		for {
			select {
			case <-ctx.Done():
				if timer != nil {
					timer.Stop()
				}
				return
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(event.Name) != target {
					continue
				}
				if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
					continue
				}
				if timer != nil {
					timer.Stop()
				}
				timer = time.AfterFunc(reloadDebounce, func() {
					if err := s.Reload(); err != nil {
						slog.Error("Content reload failed, keeping previous content", "path", s.path, "error", err)
						return
					}
					slog.Info("Content reloaded", "path", s.path)
				})
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				slog.Warn("Content watcher error", "error", err)
			}
		}
	}()

	slog.Info("Watching content file for changes", "path", s.path)
	return nil
}
