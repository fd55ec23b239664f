package config

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"github.com/arcspirits/spirits-api/internal/entities/spirits"
)

// RarityWatcher reloads the rarity table when the file changes, so balance
// tweaks land without a restart. Editors often write several events per
// save, so reloads are debounced.
type RarityWatcher struct {
	mu       sync.Mutex
	watcher  *fsnotify.Watcher
	path     string
	onChange func([]spirits.RarityConfig)
	log      *zap.Logger

	debounce time.Duration
	lastLoad time.Time

	stopCh chan struct{}
	doneCh chan struct{}
}

// NewRarityWatcher creates a watcher for the given rarity file. onChange is
// called with the parsed table after every successful reload.
func NewRarityWatcher(path string, log *zap.Logger, onChange func([]spirits.RarityConfig)) (*RarityWatcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	// Watch the directory rather than the file: editors that rename-on-save
	// would otherwise drop the watch.
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		_ = watcher.Close()
		return nil, err
	}

	return &RarityWatcher{
		watcher:  watcher,
		path:     path,
		onChange: onChange,
		log:      log,
		debounce: 500 * time.Millisecond,
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}, nil
}

// Start begins watching in a goroutine.
func (w *RarityWatcher) Start() {
	go w.run()
}

// Stop terminates the watcher and waits for the loop to exit.
func (w *RarityWatcher) Stop() {
	close(w.stopCh)
	<-w.doneCh
	_ = w.watcher.Close()
}

func (w *RarityWatcher) run() {
	defer close(w.doneCh)
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != filepath.Clean(w.path) {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			w.reload()
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.log.Warn("rarity watcher error", zap.Error(err))
		case <-w.stopCh:
			return
		}
	}
}

func (w *RarityWatcher) reload() {
	w.mu.Lock()
	if time.Since(w.lastLoad) < w.debounce {
		w.mu.Unlock()
		return
	}
	w.lastLoad = time.Now()
	w.mu.Unlock()

	rarities, err := LoadRarityFile(w.path)
	if err != nil {
		// Keep serving the previous table on a bad edit.
		w.log.Warn("rarity file reload failed", zap.String("path", w.path), zap.Error(err))
		return
	}

	w.log.Info("rarity table reloaded", zap.String("path", w.path), zap.Int("entries", len(rarities)))
	w.onChange(rarities)
}
