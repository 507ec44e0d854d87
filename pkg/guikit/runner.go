package guikit

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/opd-ai/guikit/internal/script"
	"github.com/opd-ai/guikit/internal/toolkit"
)

// Runner drives the client code against one or more widget families.
type Runner struct {
	opts   Options
	stdout io.Writer
	logger Logger
}

// New creates a Runner. Nil fields of opts fall back to their defaults.
func New(opts Options) *Runner {
	stdout := opts.Stdout
	if stdout == nil {
		stdout = os.Stdout
	}
	logger := opts.Logger
	if logger == nil {
		logger = NopLogger()
	}
	if opts.WatchDebounce <= 0 {
		opts.WatchDebounce = DefaultWatchDebounce
	}
	return &Runner{opts: opts, stdout: stdout, logger: logger}
}

// Run demonstrates each named toolkit in order, narrating before each run
// and separating runs with a blank line. With no names, every toolkit in
// toolkit.Names is demonstrated. All names are resolved before anything is
// written, so an unsupported name produces no output.
func (r *Runner) Run(names ...string) error {
	if len(names) == 0 {
		names = toolkit.Names()
	}

	factories := make([]Factory, 0, len(names))
	for _, name := range names {
		f, err := toolkit.NewFactoryFor(name)
		if err != nil {
			return err
		}
		factories = append(factories, f)
	}

	for i, f := range factories {
		if i > 0 {
			if _, err := fmt.Fprintln(r.stdout); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(r.stdout, narration(i, f)); err != nil {
			return err
		}

		r.logger.With("toolkit", f.Name()).Debug("running client code")
		if err := Demonstrate(r.stdout, f); err != nil {
			return fmt.Errorf("demonstrate %s: %w", f.Name(), err)
		}
	}
	return nil
}

func narration(i int, f Factory) string {
	if i == 0 {
		return fmt.Sprintf("Client: Testing client code with the %s GUI toolkit:", f.Name())
	}
	return fmt.Sprintf("Client: Testing the same client code with the %s GUI toolkit:", f.Name())
}

// RunScript executes the Lua client at path in a fresh script host.
func (r *Runner) RunScript(path string) error {
	host, err := script.New(r.opts.scriptConfig(r.stdout))
	if err != nil {
		return fmt.Errorf("failed to create script host: %w", err)
	}
	defer host.Close()

	r.logger.With("path", path).Debug("running script")
	return host.ExecuteFile(path)
}

// Watch runs the Lua client at path, then runs it again after every change
// to the file until ctx is done. Script failures are logged and do not stop
// watching; Watch returns an error only if the file cannot be watched.
func (r *Runner) Watch(ctx context.Context, path string) error {
	log := r.logger.With("path", path)
	runLogged := func() {
		if err := r.RunScript(path); err != nil {
			log.Warn("script failed", "error", err)
		}
	}

	sw, err := newScriptWatcher(path, r.opts.WatchDebounce, func() error {
		log.Info("script changed, re-running")
		runLogged()
		return nil
	}, func(err error) {
		log.Error("script watch error", "error", err)
	})
	if err != nil {
		return fmt.Errorf("failed to watch %s: %w", path, err)
	}

	runLogged()

	sw.run(ctx)
	return nil
}
