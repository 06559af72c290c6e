package levels

import (
	"fmt"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/fsnotify/fsnotify"
)

const watchDebounce = 100 * time.Millisecond

// Watcher rescans a catalog whenever a level file in its directory changes.
// Changed file names are published on Events; a full channel drops events.
type Watcher struct {
	watcher *fsnotify.Watcher
	cat     *Catalog
	logger  *log.Logger

	Events  chan string
	Errors  chan error
	closeCh chan struct{}
	done    chan struct{}
	once    sync.Once
}

// Watch starts watching the directory behind cat. The built-in catalog has no
// directory and cannot be watched.
func Watch(cat *Catalog, logger *log.Logger) (*Watcher, error) {
	if cat.Dir() == "" {
		return nil, fmt.Errorf("levels: built-in catalog cannot be watched")
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("levels: watcher: %w", err)
	}
	if err := fw.Add(cat.Dir()); err != nil {
		_ = fw.Close()
		return nil, fmt.Errorf("levels: watch %s: %w", cat.Dir(), err)
	}

	w := &Watcher{
		watcher: fw,
		cat:     cat,
		logger:  logger,
		Events:  make(chan string, 16),
		Errors:  make(chan error, 1),
		closeCh: make(chan struct{}),
		done:    make(chan struct{}),
	}
	go w.run()
	return w, nil
}

// Close stops the watcher and waits for its goroutine to exit.
func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		err = w.watcher.Close()
		<-w.done
		w.logger.Debug("level watcher stopped", "dir", w.cat.Dir())
	})
	return err
}

func (w *Watcher) run() {
	defer func() {
		close(w.Events)
		close(w.Errors)
		close(w.done)
	}()

	last := make(map[string]time.Time)
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) == 0 {
				continue
			}
			if !IsLevelFile(event.Name) {
				continue
			}
			now := time.Now()
			if t, ok := last[event.Name]; ok && now.Sub(t) < watchDebounce {
				continue
			}
			last[event.Name] = now

			if err := w.cat.Refresh(); err != nil {
				w.logger.Warn("level rescan failed", "file", event.Name, "err", err)
				w.publishErr(err)
				continue
			}
			w.logger.Info("levels changed", "file", event.Name, "op", event.Op.String(), "count", w.cat.Len())

			select {
			case w.Events <- event.Name:
			default:
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.publishErr(err)
		case <-w.closeCh:
			return
		}
	}
}

func (w *Watcher) publishErr(err error) {
	select {
	case w.Errors <- err:
	default:
	}
}
