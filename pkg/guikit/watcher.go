package guikit

import (
	"context"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// scriptWatcher monitors a script file for changes and triggers re-runs.
type scriptWatcher struct {
	watcher  *fsnotify.Watcher
	filePath string
	debounce time.Duration
	onChange func() error
	onError  func(error)
}

// newScriptWatcher creates a watcher for filePath.
// onChange is called when the file changes (after debouncing).
// onError is called when errors occur during watching.
func newScriptWatcher(filePath string, debounce time.Duration, onChange func() error, onError func(error)) (*scriptWatcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	if debounce <= 0 {
		debounce = DefaultWatchDebounce
	}

	// Watch the directory, not the file: editors that save by renaming
	// would otherwise drop the watch.
	if err := watcher.Add(filepath.Dir(filePath)); err != nil {
		watcher.Close()
		return nil, err
	}

	return &scriptWatcher{
		watcher:  watcher,
		filePath: filePath,
		debounce: debounce,
		onChange: onChange,
		onError:  onError,
	}, nil
}

// run processes file events until ctx is done, then closes the watcher.
func (sw *scriptWatcher) run(ctx context.Context) {
	defer sw.watcher.Close()

	absPath, _ := filepath.Abs(sw.filePath)
	baseName := filepath.Base(sw.filePath)

	var debounceTimer *time.Timer
	var debounceCh <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			if debounceTimer != nil {
				debounceTimer.Stop()
			}
			return

		case event, ok := <-sw.watcher.Events:
			if !ok {
				return
			}

			eventBase := filepath.Base(event.Name)
			eventAbs, _ := filepath.Abs(event.Name)
			if eventBase != baseName && eventAbs != absPath {
				continue
			}

			// Write/create/rename covers atomic saves.
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}

			if debounceTimer != nil {
				debounceTimer.Stop()
			}
			debounceTimer = time.NewTimer(sw.debounce)
			debounceCh = debounceTimer.C

		case <-debounceCh:
			if sw.onChange != nil {
				if err := sw.onChange(); err != nil && sw.onError != nil {
					sw.onError(err)
				}
			}
			debounceTimer = nil
			debounceCh = nil

		case err, ok := <-sw.watcher.Errors:
			if !ok {
				return
			}
			if sw.onError != nil {
				sw.onError(err)
			}
		}
	}
}
