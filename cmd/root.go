// Copyright (C) 2022-2025, InYourArea Ltd. All rights reserved.
// See the file LICENSE for licensing terms.
package cmd

import (
	"fmt"
	"os"
	"os/user"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/inyourarea/jigsaw/cmd/configcmd"
	"github.com/inyourarea/jigsaw/cmd/releasecmd"
	"github.com/inyourarea/jigsaw/cmd/resolvecmd"
	"github.com/inyourarea/jigsaw/pkg/application"
	"github.com/inyourarea/jigsaw/pkg/config"
	"github.com/inyourarea/jigsaw/pkg/constants"
	"github.com/inyourarea/jigsaw/pkg/crossroads"
	"github.com/inyourarea/jigsaw/pkg/prompts"
	"github.com/inyourarea/jigsaw/pkg/ux"
)

var (
	app *application.Jigsaw

	Version = "0.0.0-dev"

	cfgFile        string
	logLevel       string
	nonInteractive bool
)

func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use: "jigsaw",
		Long: `Jigsaw - release tooling for InYourArea service packages.

Jigsaw packages a service directory, runs its tests, bumps and tags its
version, uploads the archive to the package index and publishes the new
version to the CrossRoads service registry.

COMMAND OVERVIEW:

  release     Package release workflow (test/bump/upload/publish/install/status)
  resolve     Look up a service host through CrossRoads
  config      Tool configuration

QUICK START:

  # Run the package tests
  jigsaw release test

  # Cut a patch release and push it to the index
  jigsaw release upload

  # Publish the uploaded version to staging
  jigsaw release publish --env stag

  # See where each environment currently points
  jigsaw release status

For detailed command help, use: jigsaw <command> --help`,
		PersistentPreRunE: createApp,
		Version:           Version,
	}

	rootCmd.CompletionOptions.HiddenDefaultCmd = true

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.jigsaw/config.json)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "ERROR", "log level for the application")
	rootCmd.PersistentFlags().BoolVar(&nonInteractive, "non-interactive", false,
		"Disable prompts; fail if required values are missing (also enabled when stdin is not a TTY or CI=1)")
	rootCmd.PersistentFlags().Bool("verbose", false, "Show verbose output (info level logs)")
	rootCmd.PersistentFlags().Bool("debug", false, "Show debug output (debug level logs)")
	rootCmd.PersistentFlags().Bool("quiet", false, "Show only errors (quiet mode)")

	// add sub commands
	rootCmd.AddCommand(releasecmd.NewCmd(app))
	rootCmd.AddCommand(resolvecmd.NewCmd(app))
	rootCmd.AddCommand(configcmd.NewCmd(app))

	return rootCmd
}

func createApp(cmd *cobra.Command, _ []string) error {
	baseDir, err := setupEnv()
	if err != nil {
		return err
	}
	log, err := setupLogging(baseDir, cmd)
	if err != nil {
		return err
	}

	cf := config.New()
	initConfig(log)

	// If --non-interactive flag is set, propagate to env so IsInteractive() sees it
	if nonInteractive {
		_ = os.Setenv(prompts.EnvNonInteractive, "1")
	}

	// Interactive by default on TTY, non-interactive when:
	// JIGSAW_NON_INTERACTIVE=1, CI=1, --non-interactive flag, or stdin is piped
	prompter := prompts.NewPrompterForMode(nonInteractive)

	registry := crossroads.New(cf.RegistryURL(), log)

	app.Setup(baseDir, log, cf, prompter, registry)
	return nil
}

func setupEnv() (string, error) {
	// Set base dir
	usr, err := user.Current()
	if err != nil {
		// no logger here yet
		fmt.Printf("unable to get system user %s\n", err)
		return "", err
	}
	baseDir := filepath.Join(usr.HomeDir, constants.BaseDirName)

	// Create base dir if it doesn't exist
	if err := os.MkdirAll(baseDir, 0o750); err != nil {
		// no logger here yet
		fmt.Printf("failed creating the basedir %s: %s\n", baseDir, err)
		return "", err
	}

	// Create packages dir if it doesn't exist
	packagesDir := filepath.Join(baseDir, constants.PackagesDir)
	if err := os.MkdirAll(packagesDir, 0o750); err != nil {
		fmt.Printf("failed creating the packages dir %s: %s\n", packagesDir, err)
		return "", err
	}

	// Create cache dir if it doesn't exist
	cacheDir := filepath.Join(baseDir, constants.CacheDir)
	if err := os.MkdirAll(cacheDir, 0o750); err != nil {
		fmt.Printf("failed creating the cache dir %s: %s\n", cacheDir, err)
		return "", err
	}

	return baseDir, nil
}

func setupLogging(baseDir string, cmd *cobra.Command) (*zap.Logger, error) {
	logDir := filepath.Join(baseDir, constants.LogDir)
	if err := os.MkdirAll(logDir, 0o750); err != nil {
		return nil, fmt.Errorf("failed creating log directory: %w", err)
	}

	// Level can be overridden by flags after they are parsed
	level := zapcore.ErrorLevel
	switch {
	case cmd.Flags().Changed("debug"):
		level = zapcore.DebugLevel
	case cmd.Flags().Changed("verbose"):
		level = zapcore.InfoLevel
	case cmd.Flags().Changed("quiet"):
		level = zapcore.ErrorLevel
	case logLevel != "":
		parsed, err := zapcore.ParseLevel(strings.ToLower(logLevel))
		if err != nil {
			return nil, fmt.Errorf("invalid log level %q: %w", logLevel, err)
		}
		level = parsed
	}

	zapConf := zap.NewProductionConfig()
	zapConf.Level = zap.NewAtomicLevelAt(level)
	zapConf.OutputPaths = []string{filepath.Join(logDir, constants.LogFileName)}
	zapConf.ErrorOutputPaths = zapConf.OutputPaths
	log, err := zapConf.Build()
	if err != nil {
		return nil, fmt.Errorf("failed setting up logging, exiting: %w", err)
	}

	// create the user facing logger as a global var
	// User output goes to stdout, logs go to the file
	ux.NewUserLog(log, os.Stdout)
	return log, nil
}

// initConfig reads in config file and ENV variables if set.
// Priority: flags > env vars > config file > defaults
func initConfig(log *zap.Logger) {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Search for config in ~/.jigsaw/ directory
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)
		jigsawDir := filepath.Join(home, constants.BaseDirName) // ~/.jigsaw/
		viper.AddConfigPath(jigsawDir)
		viper.SetConfigType(constants.DefaultConfigFileType)
		viper.SetConfigName(constants.DefaultConfigFileName) // config.json
	}

	// JIGSAW_CROSSROADS_URL -> crossroads-url, etc.
	_ = viper.BindEnv(constants.ConfigRegistryURLKey, constants.RegistryURLEnvVar)
	_ = viper.BindEnv(constants.ConfigIndexURLKey, constants.IndexURLEnvVar)
	_ = viper.BindEnv(constants.ConfigIndexTokenKey, constants.IndexTokenEnvVar)

	viper.AutomaticEnv() // read in environment variables that match

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		log.Debug("using config file", zap.String("config-file", viper.ConfigFileUsed()))
	}
	// No config file is normal - most users don't have one, so we silently continue
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	app = application.New()
	rootCmd := NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "\nERROR: %s\n", err)
		os.Exit(1)
	}
}
