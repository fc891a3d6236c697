package component

import (
	"context"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/afero"
	"go.uber.org/zap"

	"github.com/teranos/sfcgen/errors"
	"github.com/teranos/sfcgen/logger"
)

// ReloadCallback receives each freshly loaded snapshot.
type ReloadCallback func(*Snapshot) error

// Watcher reloads a registry file whenever it changes on disk.
//
// The parent directory is watched rather than the file itself, since
// editors commonly save by writing a temp file and renaming it over the
// original, which drops a watch placed on the file.
type Watcher struct {
	path           string
	fs             afero.Fs
	watcher        *fsnotify.Watcher
	callback       ReloadCallback
	debouncePeriod time.Duration
	log            *zap.SugaredLogger

	mu            sync.Mutex
	debounceTimer *time.Timer

	// due is signalled by the debounce timer; Run performs the reload,
	// so reloads never overlap and none runs after Run returns.
	due chan struct{}
}

// NewWatcher creates a watcher for the registry file at path.
func NewWatcher(fs afero.Fs, path string, callback ReloadCallback) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to resolve %s", path)
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errors.Wrap(err, "failed to create fsnotify watcher")
	}
	if err := w.Add(filepath.Dir(abs)); err != nil {
		w.Close()
		return nil, errors.Wrapf(err, "failed to watch %s", filepath.Dir(abs))
	}

	return &Watcher{
		path:           abs,
		fs:             fs,
		watcher:        w,
		callback:       callback,
		debouncePeriod: 200 * time.Millisecond,
		log:            logger.ComponentLogger("watch"),
		due:            make(chan struct{}, 1),
	}, nil
}

// Run blocks, dispatching reloads until ctx is done or the watcher fails.
func (w *Watcher) Run(ctx context.Context) error {
	defer w.watcher.Close()
	defer w.stopTimer()

	for {
		select {
		case <-ctx.Done():
			return nil

		case <-w.due:
			w.reload()

		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			w.log.Debugw("Registry file changed", logger.FieldFile, event.Name, "op", event.Op.String())
			w.scheduleReload()

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			w.log.Warnw("Registry watcher error", logger.FieldError, err)
		}
	}
}

// scheduleReload debounces bursts of events into one reload
func (w *Watcher) scheduleReload() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.debounceTimer != nil {
		w.debounceTimer.Stop()
	}
	w.debounceTimer = time.AfterFunc(w.debouncePeriod, w.signalDue)
}

// signalDue queues one reload. A reload already queued covers this one.
func (w *Watcher) signalDue() {
	select {
	case w.due <- struct{}{}:
	default:
	}
}

func (w *Watcher) stopTimer() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.debounceTimer != nil {
		w.debounceTimer.Stop()
	}
}

func (w *Watcher) reload() {
	snap, err := LoadFile(w.fs, w.path)
	if err != nil {
		// Half-written files are common mid-save; the next event retries.
		w.log.Warnw("Registry reload failed", logger.FieldFile, w.path, logger.FieldError, err)
		return
	}
	if err := w.callback(snap); err != nil {
		w.log.Warnw("Registry reload callback failed", logger.FieldError, err)
	}
}
