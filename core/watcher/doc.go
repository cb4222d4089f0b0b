// Package watcher implements debug-mode change detection using github.com/fsnotify/fsnotify.
//
// It recursively watches the on-disk assets directory, filters editor
// artefacts and debounces rapid events. The start command uses it to reload
// HTML templates while the server keeps running.
package watcher
