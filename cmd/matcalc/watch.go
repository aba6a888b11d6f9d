// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"log/slog"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// watch calls fn once, then again after every write or re-creation of path
// until ctx is done. The parent directory is watched so editors that save
// by rename are still seen. Errors from fn are logged, not returned.
func watch(ctx context.Context, path string, fn func() error, logger *slog.Logger) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()

	path = filepath.Clean(path)
	if err = w.Add(filepath.Dir(path)); err != nil {
		return err
	}
	if err = fn(); err != nil {
		logger.Error("run failed", slog.String("path", path), slog.Any("err", err))
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != path || ev.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			logger.Debug("input changed", slog.String("path", path), slog.String("op", ev.Op.String()))
			if err = fn(); err != nil {
				logger.Error("run failed", slog.String("path", path), slog.Any("err", err))
			}
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			return err
		}
	}
}
