package batch

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/nguyenyou/scala-js-ts-importer/config"
	"github.com/nguyenyou/scala-js-ts-importer/errors"
	"github.com/nguyenyou/scala-js-ts-importer/logger"
)

// Watcher re-runs single-file conversion when a declaration file under
// the input root is written or created.
type Watcher struct {
	inputRoot  string
	outputRoot string
	cfg        *config.Config
	watcher    *fsnotify.Watcher

	mu     sync.Mutex
	timers map[string]*time.Timer

	debouncePeriod time.Duration
	done           chan struct{}
}

// NewWatcher creates a watcher over every directory under inputRoot.
func NewWatcher(inputRoot, outputRoot string, cfg *config.Config) (*Watcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errors.Wrap(err, "failed to create fsnotify watcher")
	}

	w := &Watcher{
		inputRoot:      inputRoot,
		outputRoot:     outputRoot,
		cfg:            cfg,
		watcher:        watcher,
		timers:         make(map[string]*time.Timer),
		debouncePeriod: time.Duration(cfg.Batch.WatchDebounceMs) * time.Millisecond,
		done:           make(chan struct{}),
	}

	// fsnotify does not recurse; every directory is watched explicitly
	// and new ones are added as they appear.
	err = filepath.WalkDir(inputRoot, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return watcher.Add(path)
		}
		return nil
	})
	if err != nil {
		watcher.Close()
		return nil, errors.Wrapf(err, "failed to watch %s", inputRoot)
	}

	return w, nil
}

// Start begins watching for declaration file changes
func (w *Watcher) Start() {
	go w.watchLoop()
}

// Wait blocks until the watcher is stopped.
func (w *Watcher) Wait() {
	<-w.done
}

// Stop stops watching and releases the underlying watcher.
func (w *Watcher) Stop() error {
	return w.watcher.Close()
}

func (w *Watcher) watchLoop() {
	defer close(w.done)
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}

			if event.Op&fsnotify.Create == fsnotify.Create {
				w.maybeWatchDir(event.Name)
			}

			if event.Op&fsnotify.Write == fsnotify.Write || event.Op&fsnotify.Create == fsnotify.Create {
				if strings.HasSuffix(event.Name, w.cfg.Batch.InputSuffix) {
					logger.Debugw("Watcher detected change",
						"file", event.Name,
						"op", event.Op.String())
					w.scheduleConvert(event.Name)
				}
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			logger.Warnw("Watcher error",
				"error", err)
		}
	}
}

// maybeWatchDir adds a newly created directory to the watch set.
func (w *Watcher) maybeWatchDir(path string) {
	fi, err := os.Stat(path)
	if err != nil || !fi.IsDir() {
		return
	}
	if err := w.watcher.Add(path); err != nil {
		logger.Warnw("Failed to watch new directory",
			"dir", path,
			"error", err)
	}
}

// scheduleConvert debounces rapid writes to the same file before
// converting it. A failed conversion is logged and waits for the next
// write.
func (w *Watcher) scheduleConvert(path string) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if timer, ok := w.timers[path]; ok {
		timer.Stop()
	}
	w.timers[path] = time.AfterFunc(w.debouncePeriod, func() {
		outPath, err := ConvertFile(path, w.inputRoot, w.outputRoot, w.cfg)
		if err != nil {
			logger.Errorw("Conversion failed",
				"file", path,
				"error", err)
			return
		}
		logger.Infow("Converted",
			"file", path,
			"output", outPath)
	})
}
