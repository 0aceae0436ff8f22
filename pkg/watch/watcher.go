package watch

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"
	"runtime/debug"
	"time"

	"github.com/aretw0/lifecycle/pkg/core/worker"
	"github.com/fsnotify/fsnotify"

	"github.com/aretw0/jot/pkg/items"
	"github.com/aretw0/jot/pkg/jotpath"
)

// Event is emitted after the vault has been reloaded following an external change.
type Event struct {
	// Vault is the freshly loaded tree.
	Vault *items.Vault
	// Path is the last changed path of the burst that triggered the reload.
	Path string
	Time time.Time
}

// String implements lifecycle.Event.
func (e Event) String() string {
	return fmt.Sprintf("vault reloaded after change to %s", e.Path)
}

// Watcher keeps an eye on a vault directory and reloads it on change.
// The metadata directory is never watched.
type Watcher struct {
	*worker.BaseWorker
	root      string
	opts      *options
	events    chan<- Event
	watcher   *fsnotify.Watcher
	debouncer *debouncer
	cancel    context.CancelFunc
}

// New returns a watcher for the vault at root. Reloaded vaults are sent on events.
func New(root string, events chan<- Event, opts ...Option) *Watcher {
	return &Watcher{
		BaseWorker: worker.NewBaseWorker("vault-watcher"),
		root:       root,
		opts:       buildOptions(opts),
		events:     events,
	}
}

// Start registers the vault directories and runs the event loop in the background.
func (w *Watcher) Start(ctx context.Context) error {
	if ctx.Err() != nil {
		return ctx.Err()
	}

	status := w.State().Status
	if status != worker.StatusCreated && status != worker.StatusPending {
		return fmt.Errorf("watcher already started (status: %s)", status)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	if err := addRecursive(watcher, w.root); err != nil {
		_ = watcher.Close()
		return err
	}

	w.watcher = watcher
	w.debouncer = newDebouncer(w.opts.debounce)

	runCtx, cancel := context.WithCancel(ctx)
	w.cancel = cancel

	w.SetStatus(worker.StatusRunning)
	w.opts.debug("watching vault", "path", w.root)
	return w.StartFunc(runCtx, w.run)
}

// Stop ends the event loop.
func (w *Watcher) Stop(ctx context.Context) error {
	if w.cancel != nil {
		w.StopRequested = true
		w.cancel()
	}

	return w.BaseWorker.Stop(ctx)
}

func (w *Watcher) State() worker.State {
	return w.ExportState(func(s *worker.State) {
		s.Metadata = map[string]string{
			worker.MetadataType: string(worker.TypeGoroutine),
			"path":              w.root,
		}
	})
}

// addRecursive watches dir and every directory below it except metadata directories.
func addRecursive(watcher *fsnotify.Watcher, dir string) error {
	return filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if d.Name() == items.MetadataDir {
			return filepath.SkipDir
		}
		if err := watcher.Add(path); err != nil {
			return fmt.Errorf("failed to watch %s: %w", path, err)
		}
		return nil
	})
}

func (w *Watcher) ignored(path string) bool {
	return !jotpath.IsWithin(w.root, path) || items.ThroughMetadata(w.root, path)
}

// handle filters one fsnotify event and schedules a reload.
func (w *Watcher) handle(ctx context.Context, event fsnotify.Event) {
	w.opts.debug("event received", "name", event.Name, "op", event.Op.String())

	if w.ignored(event.Name) || event.Op == fsnotify.Chmod {
		return
	}

	if event.Has(fsnotify.Create) {
		// New directories must be watched themselves to see their contents change.
		if err := addRecursive(w.watcher, event.Name); err != nil && !errors.Is(err, fs.ErrNotExist) {
			w.opts.fail(err)
		}
	}

	w.debouncer.add(w.root, func() {
		w.reload(ctx, event.Name)
	})
}

func (w *Watcher) reload(ctx context.Context, changed string) {
	v, err := items.LoadVault(w.root, w.opts.itemOptions()...)
	if err != nil {
		w.opts.fail(fmt.Errorf("failed to reload vault: %w", err))
		return
	}

	defer func() {
		// The events channel may be closed while shutting down.
		_ = recover()
	}()
	select {
	case w.events <- Event{Vault: v, Path: changed, Time: time.Now()}:
	case <-ctx.Done():
	}
}

func (w *Watcher) run(ctx context.Context) (err error) {
	defer func() {
		if recovered := recover(); recovered != nil {
			err = fmt.Errorf("watcher panic: %v", recovered)
			if w.opts.logger != nil {
				if w.opts.logger.Enabled(ctx, slog.LevelDebug) {
					w.opts.logger.Error("watcher panic", "error", err, "stack", string(debug.Stack()))
				} else {
					w.opts.logger.Error("watcher panic", "error", err)
				}
			}
		}
	}()
	defer w.watcher.Close()

	err = w.loop(ctx)

	// Pending reloads must finish before the caller may close the events channel.
	w.debouncer.stopAndWait(5 * time.Second)

	return err
}

func (w *Watcher) loop(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-w.watcher.Events:
			if !ok {
				if w.StopRequested || ctx.Err() != nil {
					return nil
				}
				return fmt.Errorf("watcher events channel closed")
			}
			w.handle(ctx, event)

		case wErr, ok := <-w.watcher.Errors:
			if !ok {
				if w.StopRequested || ctx.Err() != nil {
					return nil
				}
				return fmt.Errorf("watcher errors channel closed")
			}
			w.opts.fail(wErr)
		}
	}
}
