package fontdiff

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultWatchDelay is how long a watched font file has to stay quiet after a
// change before it is reloaded. Font compilers write their output in several
// steps.
const DefaultWatchDelay = 200 * time.Millisecond

// ReloadEvent reports a reload triggered by a change of the font file. Err is
// the result of Reload; on error the font keeps its previous state.
type ReloadEvent struct {
	Path string
	Err  error
}

// fileStamp identifies a version of a file. Events for attribute changes
// leave it untouched.
type fileStamp struct {
	mod  time.Time
	size int64
}

func stampOf(path string) (fileStamp, error) {
	fi, err := os.Stat(path)
	if err != nil {
		return fileStamp{}, err
	}
	return fileStamp{mod: fi.ModTime(), size: fi.Size()}, nil
}

// Watch reloads the font whenever its file changes on disk, until ctx is
// done. The directory of the font is watched, so files replaced by renaming
// are noticed as well. A change is acted upon only if the file's modification
// time or size differs from the last version seen.
//
// Every reload is reported on the returned channel, which is closed when
// watching ends. Clients have to drain it.
func (f *Font) Watch(ctx context.Context) (<-chan ReloadEvent, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := w.Add(filepath.Dir(f.path)); err != nil {
		w.Close()
		return nil, err
	}
	last, _ := stampOf(f.path)
	name := filepath.Base(f.path)
	out := make(chan ReloadEvent)
	go func() {
		defer close(out)
		defer w.Close()
		var settle <-chan time.Time
		for {
			select {
			case <-ctx.Done():
				tracer().Debugf("stop watching %s: %v", f.path, ctx.Err())
				return
			case ev, ok := <-w.Events:
				if !ok {
					return
				}
				if filepath.Base(ev.Name) != name || ev.Op&(fsnotify.Write|fsnotify.Create) == 0 {
					continue
				}
				settle = time.After(f.conf.watchDelay)
			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				tracer().Errorf("watching %s: %v", f.path, err)
			case <-settle:
				settle = nil
				stamp, err := stampOf(f.path)
				if err != nil {
					tracer().Infof("font file %s not accessible: %v", f.path, err)
					continue
				}
				if stamp == last {
					tracer().Debugf("font file %s touched but unchanged", f.path)
					continue
				}
				last = stamp
				tracer().Infof("font file %s changed, reloading", f.path)
				ev := ReloadEvent{Path: f.path, Err: f.Reload(ctx)}
				select {
				case out <- ev:
				case <-ctx.Done():
					return
				}
			}
		}
	}()
	return out, nil
}
