package loader

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"github.com/safetynet/alerts/pkg/model"
)

// DefaultSettle is how long Watch waits after the last change before
// reloading.
const DefaultSettle = 200 * time.Millisecond

// WatchOption configures Watch.
type WatchOption func(*watchConfig)

type watchConfig struct {
	logger *zap.Logger
	settle time.Duration
}

// WithWatchLogger sets the logger used for reload outcomes.
func WithWatchLogger(logger *zap.Logger) WatchOption {
	return func(c *watchConfig) { c.logger = logger }
}

// WithSettle sets the quiet period before a reload.
func WithSettle(d time.Duration) WatchOption {
	return func(c *watchConfig) { c.settle = d }
}

// Watch reloads the fixture at path whenever it is written, created or
// renamed into place, and hands each successfully decoded dataset to
// onLoad. A fixture that fails to decode is logged and skipped so the
// previous data stays in service. Watch blocks until ctx is done.
func Watch(ctx context.Context, path string, onLoad func(model.Dataset), opts ...WatchOption) error {
	cfg := watchConfig{logger: zap.NewNop(), settle: DefaultSettle}
	for _, opt := range opts {
		opt(&cfg)
	}

	target, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("failed to resolve %s: %w", path, err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer func() { _ = watcher.Close() }()

	// Watch the directory: editors and config management replace the file
	// rather than writing it in place.
	if err := watcher.Add(filepath.Dir(target)); err != nil {
		return fmt.Errorf("failed to watch %s: %w", filepath.Dir(target), err)
	}
	cfg.logger.Info("watching data file", zap.String("path", target))

	timer := time.NewTimer(cfg.settle)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename) {
				timer.Reset(cfg.settle)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			cfg.logger.Warn("watcher error", zap.Error(err))
		case <-timer.C:
			data, err := Load(target)
			if err != nil {
				cfg.logger.Error("failed to reload data file", zap.String("path", target), zap.Error(err))
				continue
			}
			cfg.logger.Info("data file reloaded",
				zap.String("path", target),
				zap.Int("persons", len(data.Persons)),
				zap.Int("firestations", len(data.Firestations)),
				zap.Int("medicalrecords", len(data.MedicalRecords)),
			)
			onLoad(data)
		}
	}
}
