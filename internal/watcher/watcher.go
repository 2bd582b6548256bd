// Package watcher backs up the project configuration files when they are
// edited outside of djinit. It powers the `djinit watch` command: while the
// watcher runs, every external save of the application-registry or
// URL-routing file produces a snapshot, so hand edits are as recoverable as
// automatic ones.
package watcher

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/layertools/djinit/internal/backup"
	"github.com/layertools/djinit/internal/project"
)

// debounceWindow collapses editor save bursts (many editors write a file
// several times per save) into a single snapshot.
const debounceWindow = 2 * time.Second

// Watcher watches the configuration files of one project.
type Watcher struct {
	cfg     *project.Config
	backups *backup.Manager

	// onBackup is called after each snapshot, for reporting and audit
	// recording. May be nil.
	onBackup func(role project.Role, snap *backup.Snapshot)

	fw     *fsnotify.Watcher
	files  map[string]project.Role // watched file path -> role
	last   map[project.Role]time.Time
	stopCh chan struct{}
	wg     sync.WaitGroup
}

// New creates a Watcher. onBackup may be nil.
func New(cfg *project.Config, backups *backup.Manager, onBackup func(project.Role, *backup.Snapshot)) (*Watcher, error) {
	files := make(map[string]project.Role, len(project.Roles))
	for _, role := range project.Roles {
		path, err := cfg.FileForRole(role)
		if err != nil {
			return nil, err
		}
		files[filepath.Clean(path)] = role
	}

	return &Watcher{
		cfg:      cfg,
		backups:  backups,
		onBackup: onBackup,
		files:    files,
		last:     make(map[project.Role]time.Time),
		stopCh:   make(chan struct{}),
	}, nil
}

// Start begins watching. The parent directories are watched rather than the
// files themselves so that editors which replace files on save (write to
// temp, rename over) do not silently detach the watch.
func (w *Watcher) Start() error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	w.fw = fw

	dirs := make(map[string]bool)
	for path := range w.files {
		dirs[filepath.Dir(path)] = true
	}
	for dir := range dirs {
		if err := fw.Add(dir); err != nil {
			fw.Close()
			return fmt.Errorf("failed to watch %s: %w", dir, err)
		}
	}

	w.wg.Add(1)
	go w.run()
	return nil
}

// run dispatches fsnotify events until Stop is called.
func (w *Watcher) run() {
	defer w.wg.Done()

	for {
		select {
		case event, ok := <-w.fw.Events:
			if !ok {
				return
			}
			w.handleEvent(event)
		case err, ok := <-w.fw.Errors:
			if !ok {
				return
			}
			fmt.Fprintf(os.Stderr, "watcher: %v\n", err)
		case <-w.stopCh:
			return
		}
	}
}

// handleEvent snapshots the touched configuration file, debounced per role.
func (w *Watcher) handleEvent(event fsnotify.Event) {
	role, ok := w.files[filepath.Clean(event.Name)]
	if !ok {
		return
	}
	if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
		return
	}

	now := time.Now()
	if now.Sub(w.last[role]) < debounceWindow {
		return
	}
	w.last[role] = now

	snap, err := w.backups.Create(role)
	if err != nil {
		fmt.Fprintf(os.Stderr, "watcher: backup of %s file failed: %v\n", role, err)
		return
	}
	if w.onBackup != nil {
		w.onBackup(role, snap)
	}
}

// Stop halts the watcher and waits for the event loop to drain.
func (w *Watcher) Stop() error {
	close(w.stopCh)
	var err error
	if w.fw != nil {
		err = w.fw.Close()
	}
	w.wg.Wait()
	return err
}
