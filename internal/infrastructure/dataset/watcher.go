package dataset

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/turtacn/hsn-advisor/internal/infrastructure/monitoring/logging"
)

// Watcher observes the reference data file and invokes a callback when it
// changes on disk, so the serving table can be refreshed without an explicit
// reload request.  The parent directory is watched rather than the file
// itself: editors and atomic uploads replace the file, which would otherwise
// silently drop a file-level watch.
//
// Change bursts (write + chmod + rename during an atomic save) are debounced
// into a single callback.
type Watcher struct {
	path     string
	debounce time.Duration
	onChange func()
	logger   logging.Logger

	fsw  *fsnotify.Watcher
	done chan struct{}
	once sync.Once
}

// NewWatcher creates a Watcher for path.  onChange runs on the watcher
// goroutine and must not block for long; debounce values <= 0 default to one
// second.
func NewWatcher(path string, debounce time.Duration, onChange func(), logger logging.Logger) (*Watcher, error) {
	if debounce <= 0 {
		debounce = time.Second
	}
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	return &Watcher{
		path:     filepath.Clean(path),
		debounce: debounce,
		onChange: onChange,
		logger:   logger,
		fsw:      fsw,
		done:     make(chan struct{}),
	}, nil
}

// Start begins watching.  It returns after registering the directory watch;
// event handling continues on a background goroutine until Close.
func (w *Watcher) Start() error {
	if err := w.fsw.Add(filepath.Dir(w.path)); err != nil {
		return err
	}
	go w.loop()
	w.logger.Info("watching reference data file", logging.String("path", w.path))
	return nil
}

func (w *Watcher) loop() {
	var timer *time.Timer
	var timerC <-chan time.Time

	for {
		select {
		case <-w.done:
			if timer != nil {
				timer.Stop()
			}
			return

		case event, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			w.logger.Debug("reference data file changed",
				logging.String("op", event.Op.String()))
			if timer == nil {
				timer = time.NewTimer(w.debounce)
				timerC = timer.C
			} else {
				timer.Reset(w.debounce)
			}

		case <-timerC:
			timer = nil
			timerC = nil
			w.onChange()

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			w.logger.Warn("file watcher error", logging.Err(err))
		}
	}
}

// Close stops the watcher.  Safe to call more than once.
func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.done)
		err = w.fsw.Close()
	})
	return err
}
