package match

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"

	"github.com/endorses/telnum/internal/pkg/logger"
	"github.com/endorses/telnum/internal/pkg/metrics"
	"github.com/endorses/telnum/internal/pkg/phonematcher"
)

// reloader re-reads the config file and swaps the watchlist. SIGHUP and
// file-change reloads both go through reload, one at a time, since viper
// must not be used concurrently.
type reloader struct {
	mu  sync.Mutex
	m   *phonematcher.Matcher
	exp *metrics.Exporter
}

func (r *reloader) reload() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	err := viper.ReadInConfig()
	if err != nil {
		logger.Warn("Failed to reload config, keeping watchlist", "error", err)
	} else {
		err = applyWatchlist(r.m)
	}
	r.exp.RecordReload(err, r.m.Size())
	return err
}

// watchFile calls onChange after every write to path until ctx is done or
// cleanup is called. The parent directory is watched so that editors
// replacing the file are noticed too.
func watchFile(ctx context.Context, path string, onChange func()) (cleanup func(), err error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}

	path = filepath.Clean(path)
	if err := w.Add(filepath.Dir(path)); err != nil {
		_ = w.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", path, err)
	}

	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			select {
			case <-ctx.Done():
				return
			case e, ok := <-w.Events:
				if !ok {
					return
				}
				if filepath.Clean(e.Name) != path {
					continue
				}
				if !e.Has(fsnotify.Write) && !e.Has(fsnotify.Create) {
					continue
				}
				logger.Debug("Config file changed", "path", e.Name, "op", e.Op.String())
				onChange()
			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				logger.Warn("Config watcher error", "error", err)
			}
		}
	}()

	logger.Info("Watching config file", "path", path)
	return func() {
		if err := w.Close(); err != nil {
			logger.Warn("Failed to close config watcher", "error", err)
		}
		<-done
	}, nil
}
