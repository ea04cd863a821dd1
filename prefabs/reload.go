package prefabs

import (
	"context"
	"io"

	"github.com/charmbracelet/log"
)

// Watch reloads every spec under dir whenever a YAML file there changes and
// delivers the result on the returned channel. A reload that fails to load or
// validate is logged and dropped so the current specs stay in use. Only the
// newest pending reload is kept. The channel closes when ctx ends.
func Watch(ctx context.Context, dir string, logger *log.Logger) (<-chan *Specs, error) {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	w, err := NewWatcher(dir)
	if err != nil {
		return nil, err
	}

	out := make(chan *Specs, 1)
	go func() {
		defer close(out)
		defer w.Close()
		for {
			select {
			case <-ctx.Done():
				return
			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				logger.Warn("prefab watcher", "err", err)
			case c, ok := <-w.Changes:
				if !ok {
					return
				}
				specs, err := LoadAll(dir)
				if err != nil {
					logger.Warn("prefab reload rejected", "file", c.File, "err", err)
					continue
				}
				logger.Info("prefab changed", "file", c.File)
				// replace any reload nobody has picked up yet
				select {
				case <-out:
				default:
				}
				out <- specs
			}
		}
	}()
	return out, nil
}
