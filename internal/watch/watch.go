// Package watch monitors the parser output file and source tree and
// triggers regeneration on change, with debouncing for rapid bursts.
package watch

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"git.home.luguber.info/inful/codedoc/internal/logfields"
)

// RebuildFunc performs one regeneration pass.
type RebuildFunc func(ctx context.Context) error

// Watcher debounces filesystem events into rebuild calls.
type Watcher struct {
	watcher      *fsnotify.Watcher
	rebuild      RebuildFunc
	trigger      chan struct{}
	debounceTime time.Duration
}

// New creates a watcher over the given paths. Directories are watched
// directly; for files the containing directory is watched, which is more
// reliable across editors that replace files on save.
func New(paths []string, rebuild RebuildFunc) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}

	seen := make(map[string]bool)
	for _, p := range paths {
		dir := filepath.Dir(p)
		abs, err := filepath.Abs(dir)
		if err != nil {
			fsw.Close()
			return nil, fmt.Errorf("failed to resolve watch path %s: %w", p, err)
		}
		if seen[abs] {
			continue
		}
		seen[abs] = true
		if err := fsw.Add(abs); err != nil {
			fsw.Close()
			return nil, fmt.Errorf("failed to watch %s: %w", abs, err)
		}
	}

	return &Watcher{
		watcher:      fsw,
		rebuild:      rebuild,
		trigger:      make(chan struct{}, 1),
		debounceTime: 500 * time.Millisecond,
	}, nil
}

// Run blocks until ctx is cancelled, rebuilding after each debounced
// batch of events. A failed rebuild is logged and watching continues.
func (w *Watcher) Run(ctx context.Context) error {
	defer w.watcher.Close()

	go w.eventLoop(ctx)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-w.trigger:
			w.settle(ctx)
			slog.Info("change detected, regenerating")
			if err := w.rebuild(ctx); err != nil {
				slog.Error("regeneration failed", logfields.Error(err))
			}
		}
	}
}

// settle waits for the event burst to quiet down.
func (w *Watcher) settle(ctx context.Context) {
	timer := time.NewTimer(w.debounceTime)
	defer timer.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-w.trigger:
			if !timer.Stop() {
				<-timer.C
			}
			timer.Reset(w.debounceTime)
		case <-timer.C:
			return
		}
	}
}

func (w *Watcher) eventLoop(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) == 0 {
				continue
			}
			select {
			case w.trigger <- struct{}{}:
			default:
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			slog.Warn("watch error", logfields.Error(err))
		}
	}
}
