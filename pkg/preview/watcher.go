package preview

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watcher watches directories recursively and reports changes after a
// debounce window, so a burst of writes triggers one reload.
type Watcher struct {
	fsw      *fsnotify.Watcher
	debounce time.Duration
	onChange func(path string)
}

// NewWatcher creates a watcher. onChange is called with the path of
// the last change in each debounce window.
func NewWatcher(debounce time.Duration, onChange func(path string)) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if debounce == 0 {
		debounce = 100 * time.Millisecond
	}
	return &Watcher{fsw: fsw, debounce: debounce, onChange: onChange}, nil
}

// AddRecursive adds root and all its subdirectories to the watch set.
func (w *Watcher) AddRecursive(root string) error {
	return filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if ignoredDir(d.Name()) {
			return filepath.SkipDir
		}
		return w.fsw.Add(path)
	})
}

// Run processes events until ctx is done. New directories are added to
// the watch set as they appear.
func (w *Watcher) Run(ctx context.Context) {
	var (
		timer   *time.Timer
		timerCh <-chan time.Time
		last    string
	)

	defer w.fsw.Close()
	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if event.Op&fsnotify.Create != 0 {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() && !ignoredDir(filepath.Base(event.Name)) {
					w.fsw.Add(event.Name)
				}
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}
			last = event.Name
			if timer == nil {
				timer = time.NewTimer(w.debounce)
				timerCh = timer.C
			} else {
				timer.Reset(w.debounce)
			}

		case <-timerCh:
			timer = nil
			timerCh = nil
			if w.onChange != nil {
				w.onChange(last)
			}

		case _, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
		}
	}
}

func ignoredDir(name string) bool {
	return name == ".git" || name == "node_modules" || strings.HasPrefix(name, ".weft")
}
