// Copyright (C) 2022-2025, InYourArea Ltd. All rights reserved.
// See the file LICENSE for licensing terms.
package application

import (
	"path/filepath"

	"go.uber.org/zap"

	"github.com/inyourarea/jigsaw/pkg/config"
	"github.com/inyourarea/jigsaw/pkg/constants"
	"github.com/inyourarea/jigsaw/pkg/crossroads"
	"github.com/inyourarea/jigsaw/pkg/prompts"
)

// Jigsaw is the app container threaded through every command.
type Jigsaw struct {
	Log      *zap.Logger
	baseDir  string
	Conf     *config.Config
	Prompt   prompts.Prompter
	Registry *crossroads.Registry
}

func New() *Jigsaw {
	return &Jigsaw{}
}

func (app *Jigsaw) Setup(
	baseDir string,
	log *zap.Logger,
	conf *config.Config,
	prompt prompts.Prompter,
	registry *crossroads.Registry,
) {
	app.baseDir = baseDir
	app.Log = log
	app.Conf = conf
	app.Prompt = prompt
	app.Registry = registry
}

func (app *Jigsaw) GetBaseDir() string {
	return app.baseDir
}

func (app *Jigsaw) GetLogDir() string {
	return filepath.Join(app.baseDir, constants.LogDir)
}

func (app *Jigsaw) GetLogPath() string {
	return filepath.Join(app.GetLogDir(), constants.LogFileName)
}

func (app *Jigsaw) GetPackagesDir() string {
	return filepath.Join(app.baseDir, constants.PackagesDir)
}

func (app *Jigsaw) GetCacheDir() string {
	return filepath.Join(app.baseDir, constants.CacheDir)
}

func (app *Jigsaw) ConfigFileExists() bool {
	return app.Conf.ConfigFileExists()
}
