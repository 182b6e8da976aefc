package prefabs

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

const watchDebounce = 100 * time.Millisecond

type ChangeKind int

const (
	ChangeSpec ChangeKind = iota
	ChangeScript
)

// Change is a debounced edit to a spec or script file on disk.
type Change struct {
	Path string
	Kind ChangeKind
}

// Watcher reports edits to the on-disk prefab overrides. Events are read by
// the game loop between ticks; nothing is reloaded behind its back.
type Watcher struct {
	watcher *fsnotify.Watcher
	Events  chan Change
	Errors  chan error
	closeCh chan struct{}
	done    chan struct{}
	once    sync.Once
}

// NewWatcher watches Dir and its scripts directory. Directories that do not
// exist are skipped so a release build without overrides still starts.
func NewWatcher() (*Watcher, error) {
	var dirs []string
	for _, dir := range []string{Dir, filepath.Join(Dir, "scripts")} {
		if info, err := os.Stat(dir); err == nil && info.IsDir() {
			dirs = append(dirs, dir)
		}
	}
	return NewWatcherFor(dirs...)
}

func NewWatcherFor(dirs ...string) (*Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	for _, dir := range dirs {
		if err := w.Add(dir); err != nil {
			_ = w.Close()
			return nil, err
		}
	}

	watcher := &Watcher{
		watcher: w,
		Events:  make(chan Change, 16),
		Errors:  make(chan error, 1),
		closeCh: make(chan struct{}),
		done:    make(chan struct{}),
	}
	go watcher.run()
	return watcher, nil
}

func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		err = w.watcher.Close()
		<-w.done
		close(w.Events)
		close(w.Errors)
	})
	return err
}

// Poll drains pending changes without blocking.
func (w *Watcher) Poll() []Change {
	var out []Change
	for {
		select {
		case c, ok := <-w.Events:
			if !ok {
				return out
			}
			out = append(out, c)
		default:
			return out
		}
	}
}

// pendingFire is a debounce timer expiring for one path. Only the timer
// with the latest gen for its path reports a change.
type pendingFire struct {
	path string
	gen  int
}

// run emits a Change once a path has been quiet for watchDebounce, so an
// editor's truncate-then-write is reported once, after the last write.
func (w *Watcher) run() {
	defer close(w.done)
	gens := make(map[string]int)
	fire := make(chan pendingFire)
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if _, ok := classify(event.Name); !ok {
				continue
			}
			gens[event.Name]++
			pf := pendingFire{path: event.Name, gen: gens[event.Name]}
			time.AfterFunc(watchDebounce, func() {
				select {
				case fire <- pf:
				case <-w.closeCh:
				}
			})
		case pf := <-fire:
			if gens[pf.path] != pf.gen {
				continue
			}
			kind, _ := classify(pf.path)
			select {
			case w.Events <- Change{Path: pf.path, Kind: kind}:
			case <-w.closeCh:
				return
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			select {
			case w.Errors <- err:
			default:
			}
		case <-w.closeCh:
			return
		}
	}
}

func classify(path string) (ChangeKind, bool) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return ChangeSpec, true
	case ".tengo":
		return ChangeScript, true
	}
	return 0, false
}
