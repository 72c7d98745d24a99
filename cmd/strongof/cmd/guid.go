package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/authcorp/libs/go/strongof/internal/logging"
	"github.com/authcorp/libs/go/strongof/strong"
)

type guidList struct {
	Guids []guidValue `json:"guids" yaml:"guids" toml:"guids"`
}

func newGuidCommand(a *app) *cobra.Command {
	var (
		count int
		v7    bool
	)
	cmd := &cobra.Command{
		Use:   "guid",
		Short: "Generate random GUIDs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if count < 1 {
				return fmt.Errorf("count must be positive, got %d", count)
			}

			list := guidList{Guids: make([]guidValue, 0, count)}
			t := table{header: []any{"#", "GUID", "Version"}}
			for i := range count {
				g := strong.NewGuid[guidValue]()
				if v7 {
					next, err := strong.NewGuidV7[guidValue]()
					if err != nil {
						return err
					}
					g = next
				}
				list.Guids = append(list.Guids, g)
				t.rows = append(t.rows, []string{strconv.Itoa(i + 1), g.String(), strconv.Itoa(g.Version())})
			}

			a.logger.Debug(cmd.Context(), "generated guids",
				logging.Int("count", count),
				logging.Bool("v7", v7),
			)
			return a.render(cmd.OutOrStdout(), t, list)
		},
	}
	cmd.Flags().IntVarP(&count, "count", "n", 1, "number of GUIDs to generate")
	cmd.Flags().BoolVar(&v7, "v7", false, "generate time-ordered version 7 GUIDs")
	return cmd
}
