package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime"

	"github.com/go-kit/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/OpenTraceLab/pcasn/internal/config"
	"github.com/OpenTraceLab/pcasn/pkg/library"
)

// app carries the state shared by all subcommands of one invocation.
type app struct {
	v       *viper.Viper
	cfgFile string
	verbose bool

	cfg    *config.Config
	logger log.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{v: viper.New()}

	rootCmd := &cobra.Command{
		Use:   "pcasn",
		Short: "PubChem Compound ASN reader",
		Long: `Read PubChem Compound records in ASN.1 text notation and show the
atoms and bonds they describe.

Examples:
  pcasn parse testdata/ethanol.asn                  # Atoms and bonds of one record
  pcasn parse --split structural compact.asn        # Several tokens per line
  pcasn info testdata/                              # Summary of every record in a tree`,
		Version:           "0.3.0",
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&a.cfgFile, "config", "", "config file (yaml, json or toml)")
	pf.BoolVarP(&a.verbose, "verbose", "v", false, "verbose output (same as --log-level debug)")
	pf.String(config.KeyLogLevel, "info", "log level: debug, info, warn, error or none")
	pf.String(config.KeySplit, config.SplitLines, "line handling: lines or structural")
	pf.Bool(config.KeyStrictBraces, false, "count every brace when skipping unknown blocks")
	pf.Int(config.KeyWorkers, runtime.GOMAXPROCS(0), "files decoded in parallel by info")
	pf.StringSlice(config.KeyExtensions, library.DefaultExtensions, "file extensions picked up by info")

	for _, key := range []string{
		config.KeyLogLevel,
		config.KeySplit,
		config.KeyStrictBraces,
		config.KeyWorkers,
		config.KeyExtensions,
	} {
		_ = a.v.BindPFlag(key, pf.Lookup(key))
	}

	rootCmd.AddCommand(newParseCmd(a))
	rootCmd.AddCommand(newInfoCmd(a))
	return rootCmd
}

func (a *app) setup(cmd *cobra.Command, args []string) error {
	if a.verbose {
		a.v.Set(config.KeyLogLevel, "debug")
	}
	cfg, err := config.Load(a.v, a.cfgFile)
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.logger = cfg.Logger(cmd.ErrOrStderr())
	return nil
}

// Execute runs the root command
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}
