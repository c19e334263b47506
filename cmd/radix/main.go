package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"runtime/debug"
	"strings"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	pflag "github.com/spf13/pflag"

	"github.com/bft-labs/radix/internal/cliconfig"
	"github.com/bft-labs/radix/internal/metrics"
	"github.com/bft-labs/radix/pkg/log"
	"github.com/bft-labs/radix/pkg/radix"
)

const helpDescription = `
Convert numbers between binary, octal, decimal and hexadecimal.

The last ten successful conversions are kept in a history that survives
restarts. Configure via $HOME/.radix/config.toml, RADIX_* environment
variables, or flags.
`

var exampleUsage = strings.TrimSpace(`
  radix convert 1010 --from 2 --to 10
  radix convert ff --from hex --to bin
  radix history
  radix history --watch
  radix history clear
`)

func getVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}
	return "dev"
}

// app carries the state shared by all subcommands of one invocation.
type app struct {
	cfg     cliconfig.Config
	cfgPath string

	logger   *log.ZerologAdapter
	session  *radix.Session
	registry *prometheus.Registry
}

func main() {
	a := &app{cfg: cliconfig.DefaultConfig()}

	root := &cobra.Command{
		Use:               "radix",
		Short:             "Convert numbers between bases 2, 8, 10 and 16",
		Long:              strings.TrimSpace(helpDescription),
		Example:           exampleUsage,
		Version:           fmt.Sprintf("%s %s/%s", getVersion(), runtime.GOOS, runtime.GOARCH),
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.cfgPath, "config", "", "path to config file (default: $HOME/.radix/config.toml)")
	flags.StringVar(&a.cfg.HistoryDir, "history-dir", a.cfg.HistoryDir, "directory holding the conversion history (default: $HOME/.radix)")
	flags.StringVar(&a.cfg.Backend, "backend", a.cfg.Backend, "history storage backend: file or sqlite")
	flags.StringVar(&a.cfg.Locale, "locale", a.cfg.Locale, "locale for history timestamps (en-US, en-GB, de-DE, iso)")
	flags.StringVar(&a.cfg.LogLevel, "log-level", a.cfg.LogLevel, "log level (debug, info, warn, error)")
	flags.StringVar(&a.cfg.LogFormat, "log-format", a.cfg.LogFormat, "log format: auto, console or json")
	flags.StringVar(&a.cfg.MetricsFile, "metrics-file", a.cfg.MetricsFile, "write Prometheus metrics to this file on exit")

	root.AddCommand(newConvertCmd(a), newHistoryCmd(a))

	err := root.Execute()
	if terr := a.teardown(); terr != nil && err == nil {
		err = terr
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", describe(err))
		os.Exit(1)
	}
}

// setup layers file, environment and flag configuration, then opens the session.
func (a *app) setup(cmd *cobra.Command, args []string) error {
	cfgFile := a.cfgPath
	if cfgFile == "" {
		cfgFile = cliconfig.DefaultConfigPath()
	} else if !cliconfig.FileExists(cfgFile) {
		return fmt.Errorf("config file %s not found", cfgFile)
	}

	changed := map[string]bool{}
	cmd.Flags().Visit(func(f *pflag.Flag) { changed[f.Name] = true })

	if err := cliconfig.Load(&a.cfg, cfgFile, changed); err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	a.logger = log.New(log.Options{Level: a.cfg.LogLevel, Format: a.cfg.LogFormat, Out: os.Stderr})
	a.logger.Debug("configuration", log.Any("config", a.cfg))

	opts := []radix.Option{radix.WithLogger(a.logger)}
	if a.cfg.MetricsFile != "" {
		a.registry = prometheus.NewRegistry()
		opts = append(opts, radix.WithEventHandler(metrics.New(a.registry)))
	}

	s, err := radix.New(a.cfg.SessionConfig(), opts...)
	if err != nil {
		return fmt.Errorf("create session: %w", err)
	}
	a.session = s
	a.session.Load(cmd.Context())
	return nil
}

func (a *app) teardown() error {
	if a.session != nil {
		if err := a.session.Close(); err != nil {
			a.logger.Warn("failed to close history backend", log.Err(err))
		}
	}
	if a.registry != nil {
		if err := metrics.WriteTextfile(a.cfg.MetricsFile, a.registry); err != nil {
			return fmt.Errorf("write metrics: %w", err)
		}
	}
	return nil
}

func newConvertCmd(a *app) *cobra.Command {
	from, to := radix.Decimal, radix.Binary

	cmd := &cobra.Command{
		Use:   "convert VALUE",
		Short: "Convert a number and add it to the history",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rec, err := a.session.Convert(cmd.Context(), args[0], from, to)
			var se *radix.StorageError
			if err != nil && !errors.As(err, &se) {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), rec.Output)
			if se != nil {
				// The conversion stands; only saving it failed.
				fmt.Fprintln(cmd.ErrOrStderr(), "Warning:", describe(se))
			}
			return nil
		},
	}

	cmd.Flags().Var(&from, "from", "base of VALUE: 2, 8, 10, 16 (or bin, oct, dec, hex)")
	cmd.Flags().Var(&to, "to", "base to convert to: 2, 8, 10, 16 (or bin, oct, dec, hex)")
	return cmd
}

func newHistoryCmd(a *app) *cobra.Command {
	var watch bool

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show the last ten conversions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			renderHistory(out, a.session.History())
			if !watch {
				return nil
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			return a.session.Watch(ctx, func(h radix.History) {
				fmt.Fprintln(out)
				renderHistory(out, h)
			})
		},
	}
	cmd.Flags().BoolVar(&watch, "watch", false, "keep running and print the history whenever it changes")

	clearCmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete the conversion history",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.session.ClearHistory(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "History cleared successfully!")
			return nil
		},
	}

	cmd.AddCommand(clearCmd)
	return cmd
}

// describe turns an error into the message shown to the user.
func describe(err error) string {
	var digitErr *radix.InvalidDigitsError
	var storageErr *radix.StorageError
	switch {
	case errors.Is(err, radix.ErrEmptyInput):
		return "Please enter a number to convert"
	case errors.As(err, &digitErr):
		return fmt.Sprintf("Invalid characters for base-%d (%s) number", int(digitErr.Base), digitErr.Base.Name())
	case errors.Is(err, radix.ErrParseFailure):
		return "Invalid number format"
	case errors.Is(err, radix.ErrOverflow):
		return "Number is too large (maximum is 64 bits)"
	case errors.As(err, &storageErr):
		if storageErr.Op == "clear" {
			return "Failed to clear history: " + storageErr.Err.Error()
		}
		return "Failed to save history: " + storageErr.Err.Error()
	case errors.Is(err, context.Canceled):
		return "interrupted"
	default:
		return err.Error()
	}
}
