// Package watch reports edits to a grid definition file as bubbletea
// messages.
package watch

import (
	"log/slog"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fsnotify/fsnotify"
)

// ConfigChangedMsg signals that the watched file was written or replaced.
type ConfigChangedMsg struct {
	Path string
}

// Watcher observes one file through its parent directory, so editors that
// save by renaming a temporary file over it are still seen.
type Watcher struct {
	fs     *fsnotify.Watcher
	path   string
	logger *slog.Logger
}

// New starts watching path. Close releases the underlying watcher.
func New(path string, logger *slog.Logger) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fsw.Add(filepath.Dir(abs)); err != nil {
		fsw.Close()
		return nil, err
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	logger.Debug("watching config", "path", abs)
	return &Watcher{fs: fsw, path: abs, logger: logger}, nil
}

// Path returns the absolute path being watched.
func (w *Watcher) Path() string {
	return w.path
}

// Next returns a command that blocks until the file changes. It yields nil
// once the watcher is closed.
func (w *Watcher) Next() tea.Cmd {
	return func() tea.Msg {
		for {
			select {
			case event, ok := <-w.fs.Events:
				if !ok {
					return nil
				}
				if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
					continue
				}
				if filepath.Clean(event.Name) != w.path {
					continue
				}
				w.logger.Debug("config changed", "path", event.Name, "op", event.Op.String())
				return ConfigChangedMsg{Path: w.path}

			case err, ok := <-w.fs.Errors:
				if !ok {
					return nil
				}
				w.logger.Warn("file watcher error", "err", err)
			}
		}
	}
}

// Close stops the watcher.
func (w *Watcher) Close() error {
	return w.fs.Close()
}
