// Copyright (C) 2022-2025, InYourArea Ltd. All rights reserved.
// See the file LICENSE for licensing terms.

package config

import (
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/inyourarea/jigsaw/pkg/constants"
	"github.com/inyourarea/jigsaw/pkg/utils"
)

type Config struct{}

func New() *Config {
	return &Config{}
}

func (*Config) ConfigFileExists() bool {
	return viper.ConfigFileUsed() != ""
}

func (*Config) ConfigValueIsSet(key string) bool {
	return viper.IsSet(key)
}

func (*Config) GetConfigStringValue(key string) string {
	return viper.GetString(key)
}

func (*Config) GetConfigBoolValue(key string) bool {
	return viper.GetBool(key)
}

// SetConfigValue persists key to the config file, creating the file under
// the base dir when no config file exists yet.
func (*Config) SetConfigValue(key string, value interface{}) error {
	viper.Set(key, value)
	if viper.ConfigFileUsed() != "" {
		return viper.WriteConfig()
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return err
	}
	path := filepath.Join(home, constants.BaseDirName,
		constants.DefaultConfigFileName+"."+constants.DefaultConfigFileType)
	if err := os.MkdirAll(filepath.Dir(path), constants.DefaultPerms755); err != nil {
		return err
	}
	if err := utils.WriteJSON(path, viper.AllSettings()); err != nil {
		return err
	}
	viper.SetConfigFile(path)
	return nil
}

// GetConfigPath returns the path to the configuration file
func (*Config) GetConfigPath() string {
	return viper.ConfigFileUsed()
}

// RegistryURL returns the CrossRoads registry endpoint, falling back to the
// production default when unset.
func (c *Config) RegistryURL() string {
	if url := c.GetConfigStringValue(constants.ConfigRegistryURLKey); url != "" {
		return url
	}
	return constants.DefaultRegistryURL
}

// IndexURL returns the private package index endpoint.
func (c *Config) IndexURL() string {
	if url := c.GetConfigStringValue(constants.ConfigIndexURLKey); url != "" {
		return url
	}
	return constants.DefaultIndexURL
}

// IndexToken returns the bearer token for the package index, empty when the
// index is unauthenticated.
func (c *Config) IndexToken() string {
	return c.GetConfigStringValue(constants.ConfigIndexTokenKey)
}

// DefaultEnv returns the environment used when a command does not name one.
func (c *Config) DefaultEnv() string {
	if env := c.GetConfigStringValue(constants.ConfigDefaultEnvKey); env != "" {
		return env
	}
	return constants.StagingEnv
}
