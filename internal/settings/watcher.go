package settings

import (
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/RucksP/slippi-launcher/internal/logging"
)

// Watcher reports ini files changed outside the launcher, debounced so one
// editor save does not fan out into a burst of notifications.
type Watcher struct {
	fsw      *fsnotify.Watcher
	changes  chan string
	done     chan struct{}
	debounce time.Duration
}

// defaultDebounce collapses the write+chmod event pairs editors produce.
const defaultDebounce = 100 * time.Millisecond

// NewWatcher watches the given directories for ini file changes.
func NewWatcher(dirs ...string) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	for _, dir := range dirs {
		if err := fsw.Add(dir); err != nil {
			fsw.Close()
			return nil, err
		}
	}

	w := &Watcher{
		fsw:      fsw,
		changes:  make(chan string, 16),
		done:     make(chan struct{}),
		debounce: defaultDebounce,
	}
	go w.loop()
	return w, nil
}

// Changes delivers the paths of changed ini files.
func (w *Watcher) Changes() <-chan string {
	return w.changes
}

// Close stops watching and closes the Changes channel.
func (w *Watcher) Close() error {
	close(w.done)
	return w.fsw.Close()
}

func (w *Watcher) loop() {
	defer close(w.changes)

	pending := make(map[string]bool)
	var timer *time.Timer
	var fire <-chan time.Time

	for {
		select {
		case <-w.done:
			return

		case event, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if !strings.HasSuffix(event.Name, ".ini") {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			pending[event.Name] = true
			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				timer.Reset(w.debounce)
			}
			fire = timer.C

		case <-fire:
			for path := range pending {
				select {
				case w.changes <- path:
				case <-w.done:
					return
				}
			}
			pending = make(map[string]bool)
			fire = nil

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			logging.Warn("settings watcher error", "error", err)
		}
	}
}
