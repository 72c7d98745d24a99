package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/authcorp/libs/go/strongof/strong"
	"github.com/authcorp/libs/go/strongof/validation"
)

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	var out, errOut bytes.Buffer
	root := NewRootCommand(&out, &errOut)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return out.String(), errOut.String(), err
}

func TestListTable(t *testing.T) {
	out, _, err := run(t, "list", "--patterns")
	require.NoError(t, err)

	for _, want := range []string{"NAME", "PATTERN", "EmailAddress", "ada@example.com"} {
		assert.Contains(t, out, want)
	}
}

func TestListJSON(t *testing.T) {
	out, _, err := run(t, "list", "--output", "json")
	require.NoError(t, err)

	var got listing
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.Len(t, got.Types, 15)
	assert.Equal(t, "ColorHex", got.Types[0].Name)
	assert.Equal(t, "Url", got.Types[len(got.Types)-1].Name)
}

func TestValidate(t *testing.T) {
	out, _, err := run(t, "validate", "slug", "my-blog-post", "--output", "yaml")
	require.NoError(t, err)
	assert.Contains(t, out, "type: Slug")
	assert.Contains(t, out, "valid: true")
}

func TestValidateReportsInvalidValues(t *testing.T) {
	out, _, err := run(t, "validate", "Slug", "ok-slug", "Not A Slug", "--output", "json")
	require.ErrorIs(t, err, ErrInvalidValues)

	var report validationReport
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	require.Len(t, report.Results, 2)
	assert.True(t, report.Results[0].Valid)
	assert.False(t, report.Results[1].Valid)
	assert.Equal(t, validation.CodeFormat, report.Results[1].Code)
}

func TestValidateUnknownType(t *testing.T) {
	_, _, err := run(t, "validate", "Postcode", "12345")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown domain type")
}

func TestParse(t *testing.T) {
	tests := []struct {
		name          string
		args          []string
		wantCanonical string
		wantJSON      string
	}{
		{"guid", []string{"guid", "6BA7B810-9DAD-11D1-80B4-00C04FD430C8"}, "6ba7b810-9dad-11d1-80b4-00c04fd430c8", `"6ba7b810-9dad-11d1-80b4-00c04fd430c8"`},
		{"int32", []string{"int32", "42"}, "42", "42"},
		{"decimal culture", []string{"decimal", "1.234,50", "--culture", "de-DE"}, "1234.5", `"1234.5"`},
		{"bool", []string{"bool", "true"}, "true", "true"},
		{"timespan", []string{"timespan", "PT1H30M"}, "1h30m0s", `"PT1H30M"`},
		{"domain type", []string{"EmailAddress", "ada@example.com"}, "ada@example.com", `"ada@example.com"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, _, err := run(t, append([]string{"parse", "--output", "json"}, tt.args...)...)
			require.NoError(t, err)

			var got parseResult
			require.NoError(t, json.Unmarshal([]byte(out), &got))
			assert.Equal(t, tt.wantCanonical, got.Canonical)
			assert.Equal(t, tt.wantJSON, got.JSON)
			assert.Len(t, got.Hash, 16)
		})
	}
}

func TestParseHashMatchesEqualValues(t *testing.T) {
	first, _, err := run(t, "parse", "decimal", "1.0", "--output", "json")
	require.NoError(t, err)
	second, _, err := run(t, "parse", "decimal", "1.00", "--output", "json")
	require.NoError(t, err)

	var a, b parseResult
	require.NoError(t, json.Unmarshal([]byte(first), &a))
	require.NoError(t, json.Unmarshal([]byte(second), &b))
	assert.Equal(t, a.Hash, b.Hash)
}

func TestParseErrors(t *testing.T) {
	_, _, err := run(t, "parse", "int32", "forty-two")
	assert.ErrorIs(t, err, strong.ErrFormat)

	_, _, err = run(t, "parse", "slug", "Not A Slug")
	assert.ErrorIs(t, err, validation.ErrInvalid)

	_, _, err = run(t, "parse", "matrix", "1")
	assert.ErrorContains(t, err, "unknown kind")

	_, _, err = run(t, "parse", "decimal", "1,5", "--culture", "not a tag")
	assert.Error(t, err)
}

func TestGuid(t *testing.T) {
	out, _, err := run(t, "guid", "-n", "3", "--v7", "--output", "json")
	require.NoError(t, err)

	var got guidList
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.Len(t, got.Guids, 3)
	for _, g := range got.Guids {
		assert.Equal(t, 7, g.Version())
	}
	assert.False(t, got.Guids[0].Equals(got.Guids[1]))

	_, _, err = run(t, "guid", "-n", "0")
	assert.Error(t, err)
}

func TestOutputFromEnvironment(t *testing.T) {
	t.Setenv("STRONGOF_OUTPUT", "yaml")
	out, _, err := run(t, "guid")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "guids:"), out)

	t.Setenv("STRONGOF_OUTPUT", "xml")
	_, _, err = run(t, "guid")
	assert.ErrorIs(t, err, validation.ErrInvalid)
}

func TestConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "strongof.yaml")
	require.NoError(t, os.WriteFile(path, []byte("output: toml\nlog_level: debug\n"), 0o600))

	out, logs, err := run(t, "guid", "--config", path)
	require.NoError(t, err)
	assert.Contains(t, out, "guids = [")
	assert.Contains(t, logs, `"correlation_id"`)
	assert.Contains(t, logs, `"level":"DEBUG"`)

	_, _, err = run(t, "guid", "--config", filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
