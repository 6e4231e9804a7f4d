// Package config loads application settings from conventional locations. An
// app named "kotoba" looks for kotoba.{json,yaml,toml,...} in the working
// directory, ./config, ./data, ~/.kotoba and ~/.config/kotoba, in that order.
package config

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

// App holds the loaded settings of one named application.
type App struct {
	name  string
	viper *viper.Viper
}

// New creates an unloaded config for the named application.
func New(name string) *App {
	return &App{name: name, viper: viper.New()}
}

// Name returns the application name.
func (a *App) Name() string { return a.name }

// Load searches the conventional locations for a config file and reads the
// first one found. A missing file is not an error; the defaults apply.
func (a *App) Load() error {
	a.viper.SetConfigName(a.name)
	a.viper.AddConfigPath(".")
	a.viper.AddConfigPath("./config")
	a.viper.AddConfigPath("./data")
	a.viper.AddConfigPath(filepath.Join("$HOME", "."+a.name))
	a.viper.AddConfigPath(filepath.Join("$HOME", ".config", a.name))

	err := a.viper.ReadInConfig()
	var notFound viper.ConfigFileNotFoundError
	if errors.As(err, &notFound) {
		log.Debug().Str("app", a.name).Msg("no config file found, using defaults")
		return nil
	}
	if err != nil {
		return fmt.Errorf("config: load %s: %w", a.name, err)
	}
	log.Debug().Str("file", a.viper.ConfigFileUsed()).Msg("config loaded")
	return nil
}

// LoadFile reads settings from an explicit file path. Unlike Load, a missing
// file is an error.
func (a *App) LoadFile(path string) error {
	a.viper.SetConfigFile(path)
	if err := a.viper.ReadInConfig(); err != nil {
		return fmt.Errorf("config: load %s: %w", path, err)
	}
	return nil
}

// Path returns the file the settings were read from, or "" when defaults are
// in effect.
func (a *App) Path() string { return a.viper.ConfigFileUsed() }

// SetDefault registers a fallback value for a key.
func (a *App) SetDefault(key string, value any) {
	a.viper.SetDefault(key, value)
}

// Has reports whether a key is set, by file or by default.
func (a *App) Has(key string) bool { return a.viper.IsSet(key) }

// GetString returns a string setting, or fallback when unset.
func (a *App) GetString(key, fallback string) string {
	if !a.viper.IsSet(key) {
		return fallback
	}
	return a.viper.GetString(key)
}

// GetInt returns an integer setting, or fallback when unset.
func (a *App) GetInt(key string, fallback int) int {
	if !a.viper.IsSet(key) {
		return fallback
	}
	return a.viper.GetInt(key)
}

// GetBool returns a boolean setting, or fallback when unset.
func (a *App) GetBool(key string, fallback bool) bool {
	if !a.viper.IsSet(key) {
		return fallback
	}
	return a.viper.GetBool(key)
}
