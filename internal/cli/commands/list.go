package commands

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/leapstack-labs/modelspec/internal/loader"
	"github.com/leapstack-labs/modelspec/pkg/kind"
)

// NewListCommand creates the list command.
func NewListCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List all models with their kinds",
		Long: `List all discovered models with their resolved kind and the derived
classification flags (materialized, symbolic, only-latest).`,
		Example: `  # List all models
  modelspec list

  # List models as JSON
  modelspec list --output json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			output, _ := cmd.Flags().GetString("output")
			return runList(cmd.OutOrStdout(), output)
		},
	}
	cmd.Flags().StringP("output", "o", "table", "Output format (table|json)")
	return cmd
}

func runList(w io.Writer, output string) error {
	models, err := loadModels()
	if err != nil {
		return err
	}

	if output == "json" {
		return renderListJSON(w, models)
	}
	return renderListTable(w, models)
}

func renderListTable(w io.Writer, models []*loader.Model) error {
	if len(models) == 0 {
		_, _ = fmt.Fprintln(w, "(0 models)")
		return nil
	}

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Model", "Kind", "Materialized", "Symbolic", "Only Latest"})

	for _, m := range models {
		name := m.Kind.Name()
		t.AppendRow(table.Row{
			m.Name,
			name.String(),
			name.IsMaterialized(),
			name.IsSymbolic(),
			name.OnlyLatest(),
		})
	}

	t.Render()
	_, _ = fmt.Fprintf(w, "(%d models)\n", len(models))
	return nil
}

func renderListJSON(w io.Writer, models []*loader.Model) error {
	type entry struct {
		Name string         `json:"name"`
		Path string         `json:"path"`
		Kind map[string]any `json:"kind"`
	}
	entries := make([]entry, len(models))
	for i, m := range models {
		entries[i] = entry{
			Name: m.Name,
			Path: m.Path,
			Kind: kind.ToMap(m.Kind),
		}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(entries)
}
