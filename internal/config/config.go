// Package config loads the jsonschema CLI's configuration file
// (.jsonschema.yaml, or a path given by --config) via spf13/viper, matching
// the lacquerai-lacquer teacher's pattern of a thin typed view over one
// viper instance.
package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config is the CLI's resolved configuration.
type Config struct {
	// Format lists the format checkers to enable by name (e.g. "date-time",
	// "email"); empty means all built-ins.
	Format []string `mapstructure:"format"`
	// FailFast switches the CLI to the throwing handler, stopping at the
	// first Issue instead of collecting every one.
	FailFast bool `mapstructure:"fail_fast"`
}

// Load reads configuration from (in ascending priority) defaults, a config
// file named .jsonschema (yaml/json/toml, searched in cwd and $HOME), and
// environment variables prefixed JSONSCHEMA_.
func Load(explicitPath string) (*Config, error) {
	v := viper.New()
	v.SetDefault("fail_fast", false)
	v.SetEnvPrefix("jsonschema")
	v.AutomaticEnv()

	if explicitPath != "" {
		v.SetConfigFile(explicitPath)
	} else {
		v.SetConfigName(".jsonschema")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME")
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("jsonschema: reading config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("jsonschema: parsing config: %w", err)
	}
	return &cfg, nil
}
