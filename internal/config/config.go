package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Load reads a YAML configuration file into a struct.
// The path parameter is the location of the file on disk.
// The result parameter should be a pointer to a struct that the
// configuration will be unmarshaled into.
func Load(path string, result interface{}) error {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	if err := v.Unmarshal(result); err != nil {
		return fmt.Errorf("failed to unmarshal config data: %w", err)
	}

	return nil
}

// LoadKey reads a YAML configuration file and unmarshals a single
// top-level key into a struct, leaving the rest of the file alone.
func LoadKey(path, key string, result interface{}) error {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	if !v.IsSet(key) {
		return fmt.Errorf("config key %q not found in %s", key, path)
	}

	if err := v.UnmarshalKey(key, result); err != nil {
		return fmt.Errorf("failed to unmarshal config key %q: %w", key, err)
	}

	return nil
}
