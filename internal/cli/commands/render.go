package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewRenderCommand creates the render command.
func NewRenderCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "render [model...]",
		Short: "Render model kinds as KIND expressions",
		Long: `Render re-emits each model's validated kind as the KIND expression form,
with time formats translated into the configured dialect's native syntax.`,
		Example: `  # Render every model's kind
  modelspec render

  # Render specific models for postgres
  modelspec render events users --dialect postgres`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, args)
		},
	}
}

func runRender(cmd *cobra.Command, args []string) error {
	models, err := loadModels()
	if err != nil {
		return err
	}

	selected := make(map[string]bool, len(args))
	for _, name := range args {
		selected[name] = true
	}

	w := cmd.OutOrStdout()
	found := 0
	for _, m := range models {
		if len(selected) > 0 && !selected[m.Name] {
			continue
		}
		found++
		fmt.Fprintf(w, "%s: %s\n", m.Name, m.Kind.ToExpression(cfg.Dialect).SQL())
	}

	if len(selected) > 0 && found < len(selected) {
		return fmt.Errorf("%d of %d requested models not found", len(selected)-found, len(selected))
	}
	return nil
}
