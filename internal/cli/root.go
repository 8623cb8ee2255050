// SPDX-License-Identifier: EPL-2.0

// Package cli implements the audspec command line.
package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/ik5/audspec/fft"
	"github.com/ik5/audspec/render"
)

// NewRootCommand builds the audspec command tree with its own viper
// instance, so several commands can coexist in one process (tests).
func NewRootCommand(stdout, stderr io.Writer) *cobra.Command {
	v := viper.New()
	var configFile string

	cmd := &cobra.Command{
		Use:   "audspec <input-file>",
		Short: "Plot the time-averaged magnitude spectrum of an audio file",
		Long: `audspec decodes an audio file (WAV, AIFF, MP3 or Ogg Vorbis), splits it into
2048-sample windows with 50% overlap, averages the FFT magnitudes of all
windows and saves the result in dB as a line plot.

Configuration is read from flags, AUDSPEC_* environment variables and an
optional YAML file given with --config, in that order of precedence.

The format is chosen by file extension. A bare "config" argument runs the
config subcommand; prefix an input path with "./" when it could clash.`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return fmt.Errorf("expected exactly one input file, got %d\nusage: %s", len(args), cmd.UseLine())
			}
			return nil
		},
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return initConfig(cmd, v, configFile)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := LoadConfig(v)
			if err != nil {
				return err
			}

			log, err := newLogger(cfg.LogLevel, stderr)
			if err != nil {
				return err
			}

			return run(cfg, args[0], log, cmd.OutOrStdout())
		},
	}

	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	flags := cmd.PersistentFlags()
	flags.StringVar(&configFile, "config", "", "config file (YAML)")
	flags.StringP("output", "o", DefaultOutput, "output image; format from extension (png, jpg, tif, svg, pdf, eps)")
	flags.String("log-level", DefaultLogLevel, "log level (trace, debug, info, warn, error)")
	flags.String("backend", fft.DefaultBackend, "FFT backend ("+strings.Join(fft.Names(), ", ")+")")
	flags.Int("workers", 1, "windows transformed in parallel chunks")
	flags.String("channels", "mix", "multi-channel handling (mix, interleaved)")
	flags.Int("width", render.DefaultWidth, "image width in pixels")
	flags.Int("height", render.DefaultHeight, "image height in pixels")

	cmd.AddCommand(newConfigCommand(v))

	return cmd
}

// Execute runs the command line and returns the process exit status.
func Execute() int {
	cmd := NewRootCommand(os.Stdout, os.Stderr)

	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}

	return 0
}

// initConfig reads the config file, if any, and wires env vars and flags.
func initConfig(cmd *cobra.Command, v *viper.Viper, configFile string) error {
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("reading config file: %w", err)
		}
	}

	return bindFlags(cmd, v)
}

// bindFlags binds each cobra flag to its viper key (dashes become
// underscores) and to the matching AUDSPEC_ environment variable.
func bindFlags(cmd *cobra.Command, v *viper.Viper) error {
	var lastErr error

	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		if f.Name == "config" || f.Name == "help" {
			return
		}

		key := strings.ReplaceAll(f.Name, "-", "_")

		if err := v.BindPFlag(key, f); err != nil {
			lastErr = err
		}

		if err := v.BindEnv(key, envPrefix+"_"+strings.ToUpper(key)); err != nil {
			lastErr = err
		}
	})

	return lastErr
}
