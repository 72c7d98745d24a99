package cmd

import (
	"encoding/json"
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/authcorp/libs/go/strongof/domains"
	"github.com/authcorp/libs/go/strongof/internal/logging"
	"github.com/authcorp/libs/go/strongof/strong"
	"github.com/authcorp/libs/go/strongof/strongconv"
)

type (
	stringValue         struct{ strong.Text[stringValue] }
	guidValue           struct{ strong.Guid[guidValue] }
	int32Value          struct{ strong.Int32[int32Value] }
	int64Value          struct{ strong.Int64[int64Value] }
	decimalValue        struct{ strong.Decimal[decimalValue] }
	doubleValue         struct{ strong.Double[doubleValue] }
	charValue           struct{ strong.Char[charValue] }
	boolValue           struct{ strong.Boolean[boolValue] }
	dateTimeValue       struct{ strong.DateTime[dateTimeValue] }
	dateTimeOffsetValue struct{ strong.DateTimeOffset[dateTimeOffsetValue] }
	timeSpanValue       struct{ strong.TimeSpan[timeSpanValue] }
)

// parser reads raw into a wrapper. nf is nil unless a culture was given.
type parser func(raw string, nf *strong.NumberFormat) (strong.Wrapper, error)

func primitive[S strong.Wrapper, PS strong.TextSetter[S]](numeric bool) parser {
	return func(raw string, nf *strong.NumberFormat) (strong.Wrapper, error) {
		if numeric && nf != nil {
			return strong.ParseNumber[S, PS](raw, *nf)
		}
		return strong.Parse[S, PS](raw)
	}
}

var primitives = map[string]parser{
	"string":         primitive[stringValue](false),
	"guid":           primitive[guidValue](false),
	"int32":          primitive[int32Value](true),
	"int64":          primitive[int64Value](true),
	"decimal":        primitive[decimalValue](true),
	"double":         primitive[doubleValue](true),
	"char":           primitive[charValue](false),
	"bool":           primitive[boolValue](false),
	"datetime":       primitive[dateTimeValue](false),
	"datetimeoffset": primitive[dateTimeOffsetValue](false),
	"timespan":       primitive[timeSpanValue](false),
}

type parseResult struct {
	Kind      string `json:"kind" yaml:"kind" toml:"kind"`
	Input     string `json:"input" yaml:"input" toml:"input"`
	Canonical string `json:"canonical" yaml:"canonical" toml:"canonical"`
	JSON      string `json:"json" yaml:"json" toml:"json"`
	Hash      string `json:"hash" yaml:"hash" toml:"hash"`
}

func newParseCommand(a *app) *cobra.Command {
	var culture domains.LanguageCode
	kinds := slices.Sorted(maps.Keys(primitives))

	cmd := &cobra.Command{
		Use:   "parse <kind> <value>",
		Short: "Parse a value into its canonical form",
		Long: "Parse a primitive (" + strings.Join(kinds, ", ") + ") or a domain type and print its " +
			"canonical string, JSON encoding and hash code.",
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, raw := strings.ToLower(args[0]), args[1]

			var nf *strong.NumberFormat
			if !culture.IsEmpty() {
				f := strong.NumberFormatFor(culture.Tag())
				nf = &f
			}

			w, err := parseValue(kind, raw, nf)
			if err != nil {
				a.logger.Warn(cmd.Context(), "parse failed",
					logging.String("kind", kind),
					logging.Error(err),
				)
				return err
			}

			encoded, err := json.Marshal(w)
			if err != nil {
				return fmt.Errorf("encode json: %w", err)
			}
			result := parseResult{
				Kind:      kind,
				Input:     raw,
				Canonical: w.String(),
				JSON:      string(encoded),
				Hash:      fmt.Sprintf("%016x", w.HashCode()),
			}

			a.logger.Info(cmd.Context(), "parsed value",
				logging.String("kind", kind),
				logging.Strong("value", w),
			)
			t := table{
				header: []any{"Kind", "Canonical", "JSON", "Hash"},
				rows:   [][]string{{result.Kind, result.Canonical, result.JSON, result.Hash}},
			}
			return a.render(cmd.OutOrStdout(), t, result)
		},
	}
	strongconv.Var[domains.LanguageCode](cmd.Flags(), &culture, "culture",
		"language tag whose number separators apply to numeric kinds, e.g. de-DE")
	return cmd
}

func parseValue(kind, raw string, nf *strong.NumberFormat) (strong.Wrapper, error) {
	if p, ok := primitives[kind]; ok {
		return p(raw, nf)
	}
	if d, ok := domains.Lookup(kind); ok {
		return d.Create(raw)
	}
	return nil, fmt.Errorf("unknown kind %q", kind)
}
