package cmd

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/authcorp/libs/go/strongof/domains"
	"github.com/authcorp/libs/go/strongof/internal/logging"
	"github.com/authcorp/libs/go/strongof/validation"
)

// ErrInvalidValues is returned by validate when any value is rejected.
var ErrInvalidValues = errors.New("one or more values are invalid")

type validationReport struct {
	Type    string           `json:"type" yaml:"type" toml:"type"`
	Results []validatedValue `json:"results" yaml:"results" toml:"results"`
}

type validatedValue struct {
	Value string `json:"value" yaml:"value" toml:"value"`
	Valid bool   `json:"valid" yaml:"valid" toml:"valid"`
	Code  string `json:"code,omitempty" yaml:"code,omitempty" toml:"code,omitempty"`
	Error string `json:"error,omitempty" yaml:"error,omitempty" toml:"error,omitempty"`
}

func newValidateCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "validate <type> <value>...",
		Short: "Check raw values against a domain type",
		Long:  `Validate each value against the named domain type (see "strongof list"). The command fails when any value is invalid.`,
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			d, ok := domains.Lookup(args[0])
			if !ok {
				return fmt.Errorf("unknown domain type %q", args[0])
			}

			report := validationReport{Type: d.Name}
			t := table{header: []any{"Value", "Valid", "Reason"}}
			invalid := 0
			for _, raw := range args[1:] {
				result := validatedValue{Value: raw, Valid: true}
				if err := d.Validate(raw); err != nil {
					invalid++
					result.Valid = false
					result.Error = err.Error()
					var ve *validation.ValidationError
					if errors.As(err, &ve) {
						result.Code = ve.Code
					}
					a.logger.Debug(ctx, "value rejected",
						logging.String("type", d.Name),
						logging.String("value", raw),
						logging.String("code", result.Code),
					)
				}
				report.Results = append(report.Results, result)
				t.rows = append(t.rows, []string{raw, strconv.FormatBool(result.Valid), result.Error})
			}

			a.logger.Info(ctx, "validated values",
				logging.String("type", d.Name),
				logging.Int("valid", len(args)-1-invalid),
				logging.Int("invalid", invalid),
			)
			if err := a.render(cmd.OutOrStdout(), t, report); err != nil {
				return err
			}
			if invalid > 0 {
				return ErrInvalidValues
			}
			return nil
		},
	}
}
