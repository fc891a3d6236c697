package commands

import (
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/teranos/sfcgen/am"
	"github.com/teranos/sfcgen/component"
	"github.com/teranos/sfcgen/dialog"
	"github.com/teranos/sfcgen/errors"
	"github.com/teranos/sfcgen/export"
	"github.com/teranos/sfcgen/logger"
)

// ExportCmd writes the active component as a single-file component
var ExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the active component to a .vue file",
	Long: `Export the active component of a registry snapshot as a single-file component.

The destination directory is asked for interactively unless --out is given.
Submitting an empty answer cancels the export without touching the disk.

Examples:
  sfcgen export -r editor.json                 # Prompt for the destination
  sfcgen export -r editor.json -a NavBar -o src/components
  sfcgen export -r editor.yaml -o src --watch  # Rewrite on every registry change`,
	RunE: runExport,
}

var (
	exportFlags jobFlags
	exportOut   string
	exportWatch bool
)

func init() {
	exportFlags.register(ExportCmd)
	ExportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "Destination directory (skips the prompt)")
	ExportCmd.Flags().BoolVarP(&exportWatch, "watch", "w", false, "Keep exporting whenever the registry file changes (requires --out)")
}

func runExport(cmd *cobra.Command, args []string) error {
	if exportWatch && exportOut == "" {
		return errors.WithHint(
			errors.NewInvalidRequestError("--watch needs a fixed destination"),
			"pass --out DIR together with --watch",
		)
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	snap, err := component.LoadFile(fs, exportFlags.registry)
	if err != nil {
		return err
	}
	job, err := buildJob(cfg, exportFlags, snap)
	if err != nil {
		return err
	}

	var d export.Dialog = dialog.NewPrompt()
	if exportOut != "" {
		d = dialog.Fixed(exportOut)
	}
	o := newOrchestrator(cfg, d)

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	res := o.Export(ctx, job)
	if err := reportResult(res); err != nil {
		return err
	}
	if !exportWatch || res.State != export.StateDone {
		return nil
	}

	pterm.Info.Printfln("Watching %s for changes (Ctrl+C to stop)", exportFlags.registry)
	return o.Watch(ctx, exportFlags.registry, filepath.Dir(res.Path), watchJob(cfg, exportFlags, job))
}

// watchJob turns each reloaded snapshot into a job. A snapshot that names no
// active component keeps the last selection.
func watchJob(cfg *am.Config, flags jobFlags, last export.Job) func(*component.Snapshot) export.Job {
	return func(snap *component.Snapshot) export.Job {
		next, err := buildJob(cfg, flags, snap)
		if err != nil {
			return export.Job{
				Registry: snap.ComponentMap,
				Active:   last.Active,
				Options:  resolveOptions(cfg, flags.typescript, snap),
			}
		}
		last = next
		return next
	}
}

func newOrchestrator(cfg *am.Config, d export.Dialog) *export.Orchestrator {
	return export.New(d,
		export.WithFs(fs),
		export.WithLogger(logger.ComponentLogger("export")),
		export.WithAtomicWrite(cfg.Export.AtomicWrite),
		export.WithRequest(dialog.Request{
			Title:          cfg.Export.Dialog.Title,
			Message:        cfg.Export.Dialog.Message,
			NameFieldLabel: cfg.Export.Dialog.NameFieldLabel,
		}),
	)
}

func buildJob(cfg *am.Config, flags jobFlags, snap *component.Snapshot) (export.Job, error) {
	active, err := resolveActive(flags.active, snap)
	if err != nil {
		return export.Job{}, err
	}
	return export.Job{
		Registry: snap.ComponentMap,
		Active:   active,
		Options:  resolveOptions(cfg, flags.typescript, snap),
	}, nil
}

// reportResult prints the outcome. Cancellation is not an error.
func reportResult(res export.Result) error {
	switch res.State {
	case export.StateDone:
		pterm.Success.Printfln("Exported %s to %s", res.Component, res.Path)
		return nil
	case export.StateCancelled:
		return nil
	default:
		if res.Err == nil {
			return errors.Newf("export of %s ended in state %s", res.Component, res.State)
		}
		return errors.Wrapf(res.Err, "export of %s failed", res.Component)
	}
}
