package prefabs

import (
	"path/filepath"
	"slices"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Change reports that one prefab file under a watched directory was written.
type Change struct {
	Dir  string
	File string // one of Files
}

// stamp identifies one version of a file on disk.
type stamp struct {
	mod  time.Time
	size int64
}

// Watcher turns raw fsnotify events into Changes for the prefab files LoadAll
// reads. Repeated events for a file whose mod time and size have not moved
// are dropped, which folds the several writes most editors emit per save
// into one.
type Watcher struct {
	fsw     *fsnotify.Watcher
	Changes chan Change
	Errors  chan error

	seen map[string]stamp
	done chan struct{}
	stop sync.Once
}

func NewWatcher(dirs ...string) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	for _, dir := range dirs {
		if err := fsw.Add(dir); err != nil {
			_ = fsw.Close()
			return nil, err
		}
	}

	w := &Watcher{
		fsw:     fsw,
		Changes: make(chan Change, len(Files)),
		Errors:  make(chan error, 1),
		seen:    make(map[string]stamp),
		done:    make(chan struct{}),
	}
	go w.loop()
	return w, nil
}

func (w *Watcher) Close() error {
	var err error
	w.stop.Do(func() {
		close(w.done)
		err = w.fsw.Close()
	})
	return err
}

func (w *Watcher) loop() {
	defer close(w.Changes)
	defer close(w.Errors)

	for {
		select {
		case <-w.done:
			return
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			select {
			case w.Errors <- err:
			default:
			}
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			c, ok := w.change(ev)
			if !ok {
				continue
			}
			select {
			case w.Changes <- c:
			case <-w.done:
				return
			}
		}
	}
}

func (w *Watcher) change(ev fsnotify.Event) (Change, bool) {
	if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
		return Change{}, false
	}
	c := Change{Dir: filepath.Dir(ev.Name), File: filepath.Base(ev.Name)}
	if !slices.Contains(Files, c.File) {
		return Change{}, false
	}

	// a rename away leaves nothing to stat; the embedded default takes over
	info, ok := Loader{Dir: c.Dir}.Stat(c.File)
	if ok {
		cur := stamp{mod: info.ModTime(), size: info.Size()}
		if prev, seen := w.seen[ev.Name]; seen && prev.mod.Equal(cur.mod) && prev.size == cur.size {
			return Change{}, false
		}
		w.seen[ev.Name] = cur
	} else {
		delete(w.seen, ev.Name)
	}
	return c, true
}
