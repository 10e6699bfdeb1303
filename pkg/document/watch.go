package document

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// watchDebounce collapses the burst of events a single save produces.
const watchDebounce = 100 * time.Millisecond

// Change is one observed revision of a watched document. Raw holds the file
// contents; Err is set when the file could not be read or decoded.
type Change struct {
	Raw      []byte
	Document *Document
	Err      error
}

// Watcher reports changes to a document file. The parent directory is
// watched so that editors saving through a rename are seen as well.
type Watcher struct {
	path string
	w    *fsnotify.Watcher
}

// NewWatcher starts watching the document at path.
func NewWatcher(path string) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := w.Add(filepath.Dir(abs)); err != nil {
		_ = w.Close()
		return nil, err
	}
	return &Watcher{path: abs, w: w}, nil
}

// Run calls fn after each change to the file until ctx is done, then closes
// the watcher and returns ctx.Err(). Writes that leave the contents unchanged
// are not reported.
func (w *Watcher) Run(ctx context.Context, fn func(Change)) error {
	defer w.w.Close()

	debounce := time.NewTimer(0)
	<-debounce.C
	defer debounce.Stop()

	var last []byte
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-w.w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != w.path {
				continue
			}
			if ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create) || ev.Has(fsnotify.Rename) {
				debounce.Reset(watchDebounce)
			}
		case err, ok := <-w.w.Errors:
			if !ok {
				return nil
			}
			fn(Change{Err: err})
		case <-debounce.C:
			raw, err := os.ReadFile(w.path)
			if err != nil {
				// Removed mid-save; the following create reports it.
				if os.IsNotExist(err) {
					continue
				}
				fn(Change{Err: err})
				continue
			}
			if bytes.Equal(raw, last) {
				continue
			}
			last = raw
			doc, err := Read(bytes.NewReader(raw))
			fn(Change{Raw: raw, Document: doc, Err: err})
		}
	}
}

// Close stops watching without waiting for Run.
func (w *Watcher) Close() error { return w.w.Close() }
