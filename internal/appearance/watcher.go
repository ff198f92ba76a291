package appearance

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"

	"github.com/opencode-ai/themekit/internal/logging"
)

// DefaultDebounce groups bursts of writes to the signal file.
const DefaultDebounce = 150 * time.Millisecond

// Watcher follows a signal file whose contents name an appearance.
type Watcher struct {
	path     string
	debounce time.Duration
	logger   zerolog.Logger
}

// WatcherOption configures a Watcher.
type WatcherOption func(*Watcher)

// WithDebounce sets the quiet period before a change is reported.
func WithDebounce(d time.Duration) WatcherOption {
	return func(w *Watcher) {
		if d > 0 {
			w.debounce = d
		}
	}
}

// WithLogger sets the watcher logger.
func WithLogger(logger zerolog.Logger) WatcherOption {
	return func(w *Watcher) {
		w.logger = logger
	}
}

// NewWatcher creates a watcher for the signal file at path.
func NewWatcher(path string, opts ...WatcherOption) *Watcher {
	w := &Watcher{
		path:     path,
		debounce: DefaultDebounce,
		logger:   logging.Component("appearance"),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Read returns the appearance currently named by the signal file. A
// missing file is Unspecified.
func (w *Watcher) Read() (Appearance, error) {
	data, err := os.ReadFile(w.path)
	if errors.Is(err, os.ErrNotExist) {
		return Unspecified, nil
	}
	if err != nil {
		return Unspecified, fmt.Errorf("read appearance signal: %w", err)
	}
	return Parse(string(data)), nil
}

// Run reports every change of the signal file's appearance to onChange
// until ctx is canceled. The directory is watched so that editors which
// replace the file are followed. Unspecified values are not reported.
func (w *Watcher) Run(ctx context.Context, onChange func(Appearance)) error {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer fsw.Close()

	dir := filepath.Dir(w.path)
	if err := fsw.Add(dir); err != nil {
		return fmt.Errorf("watch %s: %w", dir, err)
	}

	last, err := w.Read()
	if err != nil {
		w.logger.Warn().Err(err).Str("path", w.path).Msg("initial read failed")
	}
	w.logger.Debug().Str("path", w.path).Str("appearance", last.String()).Msg("watching appearance signal")

	target := filepath.Clean(w.path)
	timer := time.NewTimer(w.debounce)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-fsw.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			timer.Reset(w.debounce)
		case err, ok := <-fsw.Errors:
			if !ok {
				return nil
			}
			w.logger.Error().Err(err).Msg("watcher error")
		case <-timer.C:
			current, err := w.Read()
			if err != nil {
				w.logger.Warn().Err(err).Msg("read appearance signal")
				continue
			}
			if current == Unspecified || current == last {
				continue
			}
			w.logger.Info().Str("appearance", current.String()).Msg("appearance changed")
			last = current
			onChange(current)
		}
	}
}
