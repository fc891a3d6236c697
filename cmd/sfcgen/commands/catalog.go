package commands

import (
	"io"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/teranos/sfcgen/sfc"
)

// CatalogCmd lists the element kinds a visual node may use
var CatalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "List the element kinds and their markup",
	RunE: func(cmd *cobra.Command, args []string) error {
		return renderCatalog(cmd.OutOrStdout())
	},
}

func catalogRows() [][]string {
	rows := [][]string{{"Kind", "Opening", "Closing", "Void"}}
	for _, kind := range sfc.Kinds {
		d, _ := kind.Delimiters()
		void := ""
		if d.IsVoid() {
			void = "yes"
		}
		rows = append(rows, []string{string(kind), d.Open, d.Close, void})
	}
	return rows
}

func renderCatalog(w io.Writer) error {
	return pterm.DefaultTable.
		WithHasHeader().
		WithWriter(w).
		WithData(catalogRows()).
		Render()
}
