package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/teranos/sfcgen/am"
	"github.com/teranos/sfcgen/component"
	"github.com/teranos/sfcgen/sfc"
)

// PreviewCmd prints the generated file without writing anything
var PreviewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Print the generated component file to stdout",
	Long: `Generate the active component exactly as export would and print it.
No prompt is shown and nothing is written.

Examples:
  sfcgen preview -r editor.json
  sfcgen preview -r editor.toml -a Card --typescript on`,
	RunE: runPreview,
}

var previewFlags jobFlags

func init() {
	previewFlags.register(PreviewCmd)
}

func runPreview(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	snap, err := component.LoadFile(fs, previewFlags.registry)
	if err != nil {
		return err
	}
	return writePreview(cmd.OutOrStdout(), cfg, previewFlags, snap)
}

func writePreview(w io.Writer, cfg *am.Config, flags jobFlags, snap *component.Snapshot) error {
	job, err := buildJob(cfg, flags, snap)
	if err != nil {
		return err
	}
	text, err := sfc.NewGenerator(job.Options).Generate(job.Registry, job.Active)
	if err != nil {
		return err
	}
	_, err = fmt.Fprint(w, text)
	return err
}
