package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/leapstack-labs/modelspec/internal/loader"
)

// NewValidateCommand creates the validate command.
func NewValidateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Validate the kind declarations of all models",
		Long: `Validate loads every model in the models directory, classifies its kind
declaration, and reports each invalid declaration with the reason.`,
		Example: `  # Validate all models
  modelspec validate

  # Stop at the first error
  modelspec validate --strict`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runValidate(cmd)
		},
	}
}

func runValidate(cmd *cobra.Command) error {
	if cfg == nil {
		return fmt.Errorf("configuration not loaded")
	}
	defaultKind, err := cfg.ResolveDefaultKind()
	if err != nil {
		return err
	}
	l := loader.New(cfg.ModelsDir, loader.WithDefaultKind(defaultKind))

	if cfg.Strict {
		models, err := l.Load()
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%d models validated\n", len(models))
		return nil
	}

	models, problems, err := l.LoadLenient()
	if err != nil {
		return err
	}

	for _, p := range problems {
		fmt.Fprintf(cmd.ErrOrStderr(), "  %s: %v\n", p.Path, p.Err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%d models validated, %d invalid\n", len(models), len(problems))
	if len(problems) > 0 {
		return fmt.Errorf("%d invalid model kind declarations", len(problems))
	}
	return nil
}
