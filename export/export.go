// Package export drives one component export: ask where to save, compose
// the file, create the folder and write it. Failures are logged and
// reported in the Result, never returned as errors or panics, so an
// interactive host keeps running whatever happens.
package export

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/afero"
	"go.uber.org/zap"

	"github.com/teranos/sfcgen/component"
	"github.com/teranos/sfcgen/dialog"
	"github.com/teranos/sfcgen/errors"
	"github.com/teranos/sfcgen/logger"
	"github.com/teranos/sfcgen/sfc"
)

// Dialog asks the user for a destination folder. ok is false when the
// user cancels.
type Dialog interface {
	ChooseDestination(ctx context.Context, req dialog.Request) (path string, ok bool, err error)
}

// Job is everything one export reads. Generation depends on nothing else.
type Job struct {
	Registry component.Registry
	Active   string
	Options  sfc.Options
}

// Result reports how an export ended.
type Result struct {
	ExportID  string
	Component string
	State     State
	// Path of the written file, set when State is StateDone
	Path     string
	Err      error
	Duration time.Duration
}

// Orchestrator runs exports against a filesystem and a dialog.
type Orchestrator struct {
	fs      afero.Fs
	dialog  Dialog
	request dialog.Request
	atomic  bool
	log     *zap.SugaredLogger
	locks   *keyedMutex
}

// Option configures an Orchestrator.
type Option func(*Orchestrator)

// WithFs sets the filesystem files are written to (default: OS filesystem).
func WithFs(fs afero.Fs) Option {
	return func(o *Orchestrator) { o.fs = fs }
}

// WithLogger sets the logger (default: the "export" component logger).
func WithLogger(log *zap.SugaredLogger) Option {
	return func(o *Orchestrator) { o.log = log }
}

// WithRequest sets the texts shown by the dialog.
func WithRequest(req dialog.Request) Option {
	return func(o *Orchestrator) { o.request = req }
}

// WithAtomicWrite toggles temp-file-and-rename writes (default: on).
func WithAtomicWrite(atomic bool) Option {
	return func(o *Orchestrator) { o.atomic = atomic }
}

// New creates an orchestrator that asks d for destinations.
func New(d Dialog, opts ...Option) *Orchestrator {
	o := &Orchestrator{
		fs:     afero.NewOsFs(),
		dialog: d,
		atomic: true,
		locks:  newKeyedMutex(),
	}
	for _, opt := range opts {
		opt(o)
	}
	if o.log == nil {
		o.log = logger.ComponentLogger("export")
	}
	return o
}

// Export asks for a destination and writes the active component there.
func (o *Orchestrator) Export(ctx context.Context, job Job) Result {
	return o.run(ctx, job, func(ctx context.Context, res *Result, log *zap.SugaredLogger) (string, bool) {
		o.transition(log, res, StateAwaitingPath)

		dir, ok, err := o.dialog.ChooseDestination(ctx, o.request)
		if err != nil {
			res.Err = errors.WrapDialog(err, "destination prompt failed")
			return "", false
		}
		if !ok {
			o.transition(log, res, StateCancelled)
			return "", false
		}
		log.Debugw("Destination chosen", logger.FieldPath, dir)
		return dir, true
	})
}

// ExportTo writes the active component to dir without asking.
func (o *Orchestrator) ExportTo(ctx context.Context, job Job, dir string) Result {
	return o.run(ctx, job, func(context.Context, *Result, *zap.SugaredLogger) (string, bool) {
		return dir, true
	})
}

// Watch re-exports into dir whenever the registry file at path changes,
// until ctx is done. build turns each reloaded snapshot into a job.
func (o *Orchestrator) Watch(ctx context.Context, path, dir string, build func(*component.Snapshot) Job) error {
	w, err := component.NewWatcher(o.fs, path, func(snap *component.Snapshot) error {
		return o.ExportTo(ctx, build(snap), dir).Err
	})
	if err != nil {
		return err
	}
	return w.Run(ctx)
}

type destinationFunc func(ctx context.Context, res *Result, log *zap.SugaredLogger) (dir string, ok bool)

func (o *Orchestrator) run(ctx context.Context, job Job, destination destinationFunc) (res Result) {
	start := time.Now()
	res = Result{
		ExportID:  uuid.NewString(),
		Component: job.Active,
		State:     StateIdle,
	}

	ctx = logger.WithComponent(logger.WithExportID(ctx, res.ExportID), job.Active)
	log := logger.FromContext(ctx, o.log)

	defer func() {
		if r := recover(); r != nil {
			res.Err = errors.AssertionFailedf("export panicked: %v", r)
		}
		if res.Err != nil {
			o.fail(log, &res)
		}
		res.Duration = time.Since(start)
		if res.State == StateDone {
			log.Infow("Component exported",
				logger.FieldPath, res.Path,
				logger.FieldDurationMS, res.Duration.Milliseconds())
		}
	}()

	dir, ok := destination(ctx, &res, log)
	if !ok {
		return res
	}

	o.compose(ctx, job, dir, &res, log)
	return res
}

// compose generates the text, then creates dir and writes the file. A lookup
// failure stops before anything touches the filesystem.
func (o *Orchestrator) compose(ctx context.Context, job Job, dir string, res *Result, log *zap.SugaredLogger) {
	unlock := o.locks.Lock(job.Active)
	defer unlock()

	o.transition(log, res, StateComposing)

	if err := ctx.Err(); err != nil {
		res.Err = errors.Wrap(err, "export aborted")
		return
	}

	gen := sfc.NewGenerator(job.Options)
	text, err := gen.Generate(job.Registry, job.Active)
	if err != nil {
		res.Err = err
		return
	}

	if err := sfc.EnsureDir(o.fs, dir); err != nil {
		res.Err = err
		return
	}

	path, err := sfc.WriteFile(o.fs, dir, job.Active, gen.FileExtension(), text, o.atomic)
	if err != nil {
		res.Err = err
		return
	}

	res.Path = path
	log.Debugw("Component file written", logger.FieldFile, path, logger.FieldSize, len(text))
	o.transition(log, res, StateDone)
}

func (o *Orchestrator) transition(log *zap.SugaredLogger, res *Result, next State) {
	log.Debugw("Export state", logger.FieldState, next.String(), "from", res.State.String())
	res.State = next
	if next == StateCancelled {
		log.Infow("Export cancelled")
	}
}

func (o *Orchestrator) fail(log *zap.SugaredLogger, res *Result) {
	res.State = StateFailed
	fields := []interface{}{
		logger.FieldError, res.Err.Error(),
		"kind", errorKind(res.Err),
	}
	if hints := errors.FlattenHints(res.Err); hints != "" {
		fields = append(fields, logger.FieldHints, hints)
	}
	log.Errorw("Export failed", fields...)
}

// errorKind names the error category for logs
func errorKind(err error) string {
	switch {
	case errors.IsLookupError(err):
		return "lookup"
	case errors.IsDialogError(err):
		return "dialog"
	case errors.IsFilesystemError(err):
		return "filesystem"
	default:
		return fmt.Sprintf("%T", errors.UnwrapAll(err))
	}
}
