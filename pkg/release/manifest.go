// Copyright (C) 2022-2025, InYourArea Ltd. All rights reserved.
// See the file LICENSE for licensing terms.

// Package release implements the packaging and release workflows behind the
// jigsaw CLI: version bumping, archive building, index upload, registry
// publishing and local installs.
package release

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/mod/semver"
	"gopkg.in/yaml.v3"

	"github.com/inyourarea/jigsaw/pkg/constants"
)

// ErrNoManifest is returned when a directory holds neither a jigsaw.yaml
// nor a VERSION file.
var ErrNoManifest = errors.New("no jigsaw.yaml or VERSION file found")

// Manifest describes a releasable package. It lives in jigsaw.yaml at the
// package root; packages that predate the manifest carry a bare VERSION
// file instead, which loads as a name-only manifest.
type Manifest struct {
	Name        string   `yaml:"name"`
	Version     string   `yaml:"version"`
	Description string   `yaml:"description,omitempty"`
	Author      string   `yaml:"author,omitempty"`
	Test        TestSpec `yaml:"test,omitempty"`
	Include     []string `yaml:"include,omitempty"`
	Exclude     []string `yaml:"exclude,omitempty"`

	// true when the package has only a VERSION file; Save then writes the
	// version token back to that file instead of creating a manifest.
	versionFileOnly bool
}

// TestSpec configures the package test run.
type TestSpec struct {
	Command string `yaml:"command,omitempty"`
}

// LoadManifest reads the package manifest from dir.
func LoadManifest(dir string) (*Manifest, error) {
	manifestPath := filepath.Join(dir, constants.ManifestFileName)
	data, err := os.ReadFile(manifestPath)
	switch {
	case err == nil:
		var m Manifest
		if err := yaml.Unmarshal(data, &m); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", constants.ManifestFileName, err)
		}
		if err := m.validate(); err != nil {
			return nil, err
		}
		return &m, nil
	case !errors.Is(err, os.ErrNotExist):
		return nil, err
	}

	versionPath := filepath.Join(dir, constants.VersionFileName)
	data, err = os.ReadFile(versionPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w in %s", ErrNoManifest, dir)
		}
		return nil, err
	}

	absDir, err := filepath.Abs(dir)
	if err != nil {
		return nil, err
	}
	m := Manifest{
		Name:            filepath.Base(absDir),
		Version:         strings.TrimSpace(string(data)),
		versionFileOnly: true,
	}
	if err := m.validate(); err != nil {
		return nil, err
	}
	return &m, nil
}

func (m *Manifest) validate() error {
	if m.Name == "" {
		return errors.New("manifest is missing a package name")
	}
	if !semver.IsValid("v" + strings.TrimPrefix(m.Version, "v")) {
		return fmt.Errorf("version %q is not a valid semantic version", m.Version)
	}
	return nil
}

// Save writes the manifest back to dir, to whichever file it was loaded
// from.
func (m *Manifest) Save(dir string) error {
	if m.versionFileOnly {
		versionPath := filepath.Join(dir, constants.VersionFileName)
		return os.WriteFile(versionPath, []byte(m.Version+"\n"), constants.WriteReadReadPerms)
	}

	data, err := yaml.Marshal(m)
	if err != nil {
		return fmt.Errorf("failed to marshal manifest: %w", err)
	}
	manifestPath := filepath.Join(dir, constants.ManifestFileName)
	return os.WriteFile(manifestPath, data, constants.WriteReadReadPerms)
}

// VersionFile returns the file holding the version token, relative to the
// package dir.
func (m *Manifest) VersionFile() string {
	if m.versionFileOnly {
		return constants.VersionFileName
	}
	return constants.ManifestFileName
}

// TestCommand returns the configured test command, or the default.
func (m *Manifest) TestCommand() string {
	if m.Test.Command != "" {
		return m.Test.Command
	}
	return constants.DefaultTestCommand
}

// TaggedVersion returns the version with the v prefix used for git tags.
func (m *Manifest) TaggedVersion() string {
	return "v" + strings.TrimPrefix(m.Version, "v")
}
