// Copyright (C) 2022-2025, InYourArea Ltd. All rights reserved.
// See the file LICENSE for licensing terms.

package release

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/inyourarea/jigsaw/pkg/constants"
)

// InstallLocally packs the working copy of the package in dir and unpacks
// it under packagesDir/<name>/<version>, replacing any previous install of
// that version. Local tooling resolves these installs before the index, so
// this is the development-loop equivalent of an editable install.
func InstallLocally(dir string, m *Manifest, packagesDir string, log *zap.Logger) (string, error) {
	if log == nil {
		log = zap.NewNop()
	}

	var buf bytes.Buffer
	if err := Pack(dir, m.Include, m.Exclude, &buf); err != nil {
		return "", fmt.Errorf("failed to pack %s: %w", m.Name, err)
	}

	dest := filepath.Join(packagesDir, m.Name, m.Version)
	if err := os.RemoveAll(dest); err != nil {
		return "", err
	}
	if err := os.MkdirAll(dest, constants.DefaultPerms755); err != nil {
		return "", err
	}
	if err := Extract(&buf, dest); err != nil {
		return "", fmt.Errorf("failed to unpack into %s: %w", dest, err)
	}

	log.Info("installed locally",
		zap.String("package", m.Name),
		zap.String("version", m.Version),
		zap.String("path", dest))
	return dest, nil
}
