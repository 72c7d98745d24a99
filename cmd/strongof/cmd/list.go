package cmd

import (
	"github.com/spf13/cobra"

	"github.com/authcorp/libs/go/strongof/domains"
	"github.com/authcorp/libs/go/strongof/internal/logging"
)

type listing struct {
	Types []domains.Descriptor `json:"types" yaml:"types" toml:"types"`
}

func newListCommand(a *app) *cobra.Command {
	var patterns bool
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the built-in domain types",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			descriptors := domains.Descriptors()

			t := table{header: []any{"Name", "Description", "Example"}}
			if patterns {
				t.header = append(t.header, "Pattern")
			}
			for _, d := range descriptors {
				row := []string{d.Name, d.Description, d.Example}
				if patterns {
					row = append(row, d.Pattern)
				}
				t.rows = append(t.rows, row)
			}

			a.logger.Info(cmd.Context(), "listed domain types", logging.Int("count", len(descriptors)))
			return a.render(cmd.OutOrStdout(), t, listing{Types: descriptors})
		},
	}
	cmd.Flags().BoolVar(&patterns, "patterns", false, "include the validation pattern of each type")
	return cmd
}
