// Package config holds the server's runtime settings. Settings come from
// three layers, each overriding the last: built-in defaults, an optional
// config file, and the client's initializationOptions.
package config

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/viper"
)

type Config struct {
	// LogFile receives server logs; empty means stderr. Logging to stdout
	// would corrupt the protocol stream.
	LogFile string `json:"log_file" mapstructure:"log_file"`
	// LogVerbosity follows commonlog levels: 0 errors only, 2 info, 3+ debug.
	LogVerbosity int `json:"log_verbosity" mapstructure:"log_verbosity"`
	// TriggerCharacters are advertised to the client during initialize.
	TriggerCharacters []string `json:"trigger_characters" mapstructure:"trigger_characters"`
	// MaxCompletionItems caps a single completion response; 0 means no cap.
	MaxCompletionItems int `json:"max_completion_items" mapstructure:"max_completion_items"`
}

func Default() Config {
	return Config{
		LogVerbosity:      2,
		TriggerCharacters: []string{" ", "."},
	}
}

// LoadFile reads settings from path on top of the defaults. An empty path
// searches the standard locations; a missing file there is not an error.
func LoadFile(path string) (Config, error) {
	cfg := Default()

	v := viper.New()
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("$HOME/.config/cql-lsp")
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path == "" && errors.As(err, &notFound) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("reading config: %w", err)
	}

	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config: %w", err)
	}
	return cfg, nil
}

// Merge overlays the client's initializationOptions onto cfg. opts is the
// raw decoded JSON value from the initialize request; only fields it
// carries overwrite, everything else keeps its value. A nil opts is a no-op.
func Merge(cfg Config, opts any) (Config, error) {
	if opts == nil {
		return cfg, nil
	}

	data, err := json.Marshal(opts)
	if err != nil {
		return Config{}, fmt.Errorf("encoding initialization options: %w", err)
	}
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("decoding initialization options: %w", err)
	}
	return cfg, nil
}
