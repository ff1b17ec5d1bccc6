/*
Copyright © 2023 Kovalev Pavel kovalev5690@gmail.com
*/package cmd

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/Pavel7004/goHidCmd/pkg/config"
	"github.com/Pavel7004/goHidCmd/pkg/hexcmd"
	"github.com/Pavel7004/goHidCmd/pkg/logging"
)

type options struct {
	configPath string
	prefix     string
	maxBytes   int
	verbose    bool
}

var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "hidcmd <input-file>",
		Short: "Utility that turns a file of hex bytes into a hidtool write command",
		Long: `hidcmd reads a text file of whitespace separated hex byte values
and prints the hidtool command line that writes them to the device.

Example: hidcmd sequence.txt
For a file containing "FF 01" and "A3" this prints:
  ./hidtool write FF,01,A3`,
		Args:          cobra.ExactArgs(1),
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return buildCommand(cmd, opts, args[0])
		},
	}

	cmd.Flags().StringVarP(&opts.configPath, "config", "c", "", "config file (.toml or .hcl)")
	cmd.Flags().StringVar(&opts.prefix, "prefix", hexcmd.DefaultPrefix, "command prefix printed before the values")
	cmd.Flags().IntVar(&opts.maxBytes, "max-bytes", 0, fmt.Sprintf("fail when the file holds more values than this, 0 disables (hidtool takes %d)", hexcmd.DeviceMaxBytes))
	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "debug logging on stderr")

	return cmd
}

func Execute() {
	os.Exit(execute(rootCmd))
}

func execute(cmd *cobra.Command) int {
	err := cmd.Execute()
	return report(cmd.OutOrStdout(), cmd.ErrOrStderr(), err)
}

func buildCommand(cmd *cobra.Command, opts *options, path string) error {
	log := logging.New(cmd.ErrOrStderr(), logging.ProfileRuntime)
	if opts.verbose {
		log = log.Level(zerolog.DebugLevel)
	}

	cfg, err := resolveConfig(cmd, opts)
	if err != nil {
		return err
	}
	log.Debug().
		Str("prefix", cfg.Prefix).
		Int("max_bytes", cfg.MaxBytes).
		Str("input", path).
		Msg("Resolved config")

	line, err := hexcmd.NewBuilder(cfg.Prefix, cfg.MaxBytes, log).Build(path)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), line)
	return err
}

// resolveConfig layers explicitly set flags over the config file over defaults.
func resolveConfig(cmd *cobra.Command, opts *options) (config.Config, error) {
	cfg := config.Default()
	if opts.configPath != "" {
		loaded, err := config.Load(opts.configPath)
		if err != nil {
			return config.Config{}, err
		}
		cfg = loaded
	}

	if cmd.Flags().Changed("prefix") {
		cfg.Prefix = opts.prefix
	}
	if cmd.Flags().Changed("max-bytes") {
		cfg.MaxBytes = opts.maxBytes
	}

	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}
