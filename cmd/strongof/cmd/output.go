package cmd

import (
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"

	"github.com/authcorp/libs/go/strongof/codec"
)

// table is the tabular rendering of a command result.
type table struct {
	header []any
	rows   [][]string
}

// render prints doc in the configured format, or t when the format is
// table. doc must encode as a document with named fields so that TOML can
// represent it.
func (a *app) render(w io.Writer, t table, doc any) error {
	format := a.settings.Output.Value()
	if format == "" || format == "table" {
		tw := tablewriter.NewWriter(w)
		tw.Header(t.header...)
		for _, row := range t.rows {
			if err := tw.Append(row); err != nil {
				return err
			}
		}
		return tw.Render()
	}

	f, err := codec.ParseFormat(format)
	if err != nil {
		return err
	}
	c, err := codec.For(f)
	if err != nil {
		return err
	}
	data, err := c.Encode(doc)
	if err != nil {
		return fmt.Errorf("encode %s: %w", f, err)
	}
	if _, err := w.Write(data); err != nil {
		return err
	}
	if len(data) > 0 && data[len(data)-1] != '\n' {
		_, err = io.WriteString(w, "\n")
	}
	return err
}
