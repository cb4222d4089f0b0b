package watcher

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// DebounceInterval is the quiet period after which a changed path is reported.
const DebounceInterval = 100 * time.Millisecond

// Editor artefacts that must not trigger a reload.
var ignoreSuffixes = []string{".swp", ".swx", ".tmp", "~", ".DS_Store"}

// Watcher reports changes below a directory tree.
type Watcher struct {
	fw      *fsnotify.Watcher
	logger  *zap.Logger
	done    chan struct{}
	stopped bool
	mu      sync.Mutex
}

// New creates a file system watcher.
func New(logger *zap.Logger) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Watcher{
		fw:     fw,
		logger: logger,
		done:   make(chan struct{}),
	}, nil
}

// Watch monitors root recursively. onChange receives the path of each
// written, created, removed or renamed file.
func (w *Watcher) Watch(root string, onChange func(path string)) error {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return err
	}

	err = filepath.WalkDir(absRoot, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return nil // skip inaccessible paths
		}
		if d.IsDir() {
			return w.fw.Add(path)
		}
		return nil
	})
	if err != nil {
		return err
	}

	go w.loop(onChange)
	return nil
}

func (w *Watcher) loop(onChange func(path string)) {
	// Each path fires once its events have been quiet for DebounceInterval,
	// so a truncate followed by a write reports the final content.
	pending := make(map[string]*time.Timer)
	fire := make(chan string)

	defer func() {
		for _, t := range pending {
			t.Stop()
		}
	}()

	for {
		select {
		case event, ok := <-w.fw.Events:
			if !ok {
				return
			}
			path := event.Name

			if event.Has(fsnotify.Create) {
				if info, err := os.Stat(path); err == nil && info.IsDir() {
					_ = w.fw.Add(path)
				}
			}

			if shouldIgnore(path) {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) &&
				!event.Has(fsnotify.Remove) && !event.Has(fsnotify.Rename) {
				continue
			}

			if t, seen := pending[path]; seen {
				t.Reset(DebounceInterval)
				continue
			}
			pending[path] = time.AfterFunc(DebounceInterval, func() {
				select {
				case fire <- path:
				case <-w.done:
				}
			})

		case path := <-fire:
			delete(pending, path)
			onChange(path)

		case err, ok := <-w.fw.Errors:
			if !ok {
				return
			}
			w.logger.Warn("File watcher error", zap.Error(err))

		case <-w.done:
			return
		}
	}
}

// Stop ends monitoring. Safe to call multiple times.
func (w *Watcher) Stop() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.stopped {
		return nil
	}
	w.stopped = true
	close(w.done)
	return w.fw.Close()
}

func shouldIgnore(path string) bool {
	base := filepath.Base(path)
	if strings.HasPrefix(base, ".#") {
		return true
	}
	for _, suffix := range ignoreSuffixes {
		if strings.HasSuffix(base, suffix) {
			return true
		}
	}
	return false
}
