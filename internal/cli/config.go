// SPDX-License-Identifier: EPL-2.0

package cli

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/ik5/audspec"
	"github.com/ik5/audspec/fft"
	"github.com/ik5/audspec/render"
)

const (
	envPrefix       = "AUDSPEC"
	DefaultOutput   = "fft_spectrum_db.png"
	DefaultLogLevel = "warn"
)

// Config is the effective configuration of one invocation. FFT and hop
// sizes are fixed at spectrum.DefaultConfig and deliberately absent.
type Config struct {
	Output   string `mapstructure:"output" yaml:"output"`
	LogLevel string `mapstructure:"log_level" yaml:"log_level"`
	Backend  string `mapstructure:"backend" yaml:"backend"`
	Workers  int    `mapstructure:"workers" yaml:"workers"`
	Channels string `mapstructure:"channels" yaml:"channels"`
	Width    int    `mapstructure:"width" yaml:"width"`
	Height   int    `mapstructure:"height" yaml:"height"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("output", DefaultOutput)
	v.SetDefault("log_level", DefaultLogLevel)
	v.SetDefault("backend", fft.DefaultBackend)
	v.SetDefault("workers", 1)
	v.SetDefault("channels", audspec.Mix.String())
	v.SetDefault("width", render.DefaultWidth)
	v.SetDefault("height", render.DefaultHeight)
}

// LoadConfig decodes and validates the configuration held by v.
func LoadConfig(v *viper.Viper) (*Config, error) {
	cfg := &Config{}

	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unable to decode configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks every field that can come from a flag, env var or file.
func (c *Config) Validate() error {
	if c.Output == "" {
		return fmt.Errorf("output path must not be empty")
	}

	if f := render.FormatOf(c.Output); !render.Supported(f) {
		return fmt.Errorf("output %q: unsupported image format %q", c.Output, f)
	}

	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("log level: %w", err)
	}

	if _, err := fft.Lookup(c.Backend); err != nil {
		return err
	}

	if c.Workers < 1 {
		return fmt.Errorf("workers must be at least 1, got %d", c.Workers)
	}

	if _, err := audspec.ParseChannelMode(c.Channels); err != nil {
		return err
	}

	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("image size %dx%d, both sides must be positive", c.Width, c.Height)
	}

	return nil
}
