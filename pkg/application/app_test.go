// Copyright (C) 2022-2025, InYourArea Ltd. All rights reserved.
// See the file LICENSE for licensing terms.
package application

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/inyourarea/jigsaw/pkg/config"
	"github.com/inyourarea/jigsaw/pkg/prompts"
)

func TestAppDirs(t *testing.T) {
	app := New()
	baseDir := t.TempDir()
	app.Setup(baseDir, zap.NewNop(), config.New(), prompts.NewNonInteractivePrompter(), nil)

	require.Equal(t, baseDir, app.GetBaseDir())
	require.Equal(t, filepath.Join(baseDir, "logs"), app.GetLogDir())
	require.Equal(t, filepath.Join(baseDir, "logs", "jigsaw.log"), app.GetLogPath())
	require.Equal(t, filepath.Join(baseDir, "packages"), app.GetPackagesDir())
	require.Equal(t, filepath.Join(baseDir, "cache"), app.GetCacheDir())
}
