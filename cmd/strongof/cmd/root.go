// Package cmd implements the strongof command line tool.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/authcorp/libs/go/strongof/internal/logging"
	"github.com/authcorp/libs/go/strongof/strong"
	"github.com/authcorp/libs/go/strongof/strongconv"
)

// OutputFormat names how command results are printed.
type OutputFormat struct{ strong.Text[OutputFormat] }

// IsValidFormat reports whether f is one of table, json, yaml or toml.
func (f OutputFormat) IsValidFormat() bool {
	switch f.Value() {
	case "table", "json", "yaml", "toml":
		return true
	}
	return false
}

type settings struct {
	Output   OutputFormat `mapstructure:"output"`
	LogLevel string       `mapstructure:"log_level"`
}

// app carries the state shared by every subcommand of one invocation.
type app struct {
	v        *viper.Viper
	cfgFile  string
	settings settings
	logger   *logging.Logger
	errOut   io.Writer
}

// Execute runs the root command against the process streams.
func Execute() error {
	return NewRootCommand(os.Stdout, os.Stderr).ExecuteContext(context.Background())
}

// NewRootCommand builds the command tree. Results go to out; logs and
// errors go to errOut.
func NewRootCommand(out, errOut io.Writer) *cobra.Command {
	a := &app{v: viper.New(), errOut: errOut, logger: logging.Nop()}

	root := &cobra.Command{
		Use:          "strongof",
		Short:        "Inspect, validate and parse strongly typed values",
		Long:         `strongof lists the built-in domain types, validates raw strings against them and parses primitives into their canonical form.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init(cmd)
		},
	}
	root.SetOut(out)
	root.SetErr(errOut)

	flags := root.PersistentFlags()
	flags.StringVar(&a.cfgFile, "config", "", "config file (default is $HOME/.strongof/config.yaml)")
	flags.String("output", "table", "output format: table, json, yaml or toml")
	flags.String("log-level", "warn", "log level: debug, info, warn or error")
	_ = a.v.BindPFlag("output", flags.Lookup("output"))
	_ = a.v.BindPFlag("log_level", flags.Lookup("log-level"))

	root.AddCommand(
		newListCommand(a),
		newValidateCommand(a),
		newParseCommand(a),
		newGuidCommand(a),
	)
	return root
}

// init reads the config file and environment, then prepares the logger
// and a correlation ID for this invocation.
func (a *app) init(cmd *cobra.Command) error {
	if a.cfgFile != "" {
		a.v.SetConfigFile(a.cfgFile)
	} else if home, err := os.UserHomeDir(); err == nil {
		a.v.AddConfigPath(filepath.Join(home, ".strongof"))
		a.v.SetConfigName("config")
		a.v.SetConfigType("yaml")
	}
	a.v.SetEnvPrefix("STRONGOF")
	a.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	a.v.AutomaticEnv()

	if err := a.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if a.cfgFile != "" || !errors.As(err, &notFound) {
			return fmt.Errorf("read config: %w", err)
		}
	}

	if err := a.v.Unmarshal(&a.settings, viper.DecodeHook(strongconv.DecodeHook())); err != nil {
		return fmt.Errorf("load settings: %w", err)
	}

	a.logger = logging.New("strongof", logging.ParseLevel(a.settings.LogLevel), a.errOut)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx = logging.WithCorrelationID(ctx, uuid.NewString())
	cmd.SetContext(ctx)

	a.logger.Debug(ctx, "configuration loaded",
		logging.String("command", cmd.Name()),
		logging.String("config_file", a.v.ConfigFileUsed()),
		logging.Strong("output", a.settings.Output),
	)
	return nil
}
