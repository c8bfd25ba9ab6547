// Copyright (C) 2022-2025, InYourArea Ltd. All rights reserved.
// See the file LICENSE for licensing terms.
package release

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/inyourarea/jigsaw/internal/testutils"
)

func TestLoadManifest(t *testing.T) {
	dir := testutils.WritePackage(t, "skyscraper-api", "0.0.26")

	m, err := LoadManifest(dir)
	require.NoError(t, err)
	require.Equal(t, "skyscraper-api", m.Name)
	require.Equal(t, "0.0.26", m.Version)
	require.Equal(t, "go test ./...", m.TestCommand())
	require.Equal(t, "v0.0.26", m.TaggedVersion())
	require.Equal(t, "jigsaw.yaml", m.VersionFile())
}

func TestLoadManifestCustomTestCommand(t *testing.T) {
	dir := t.TempDir()
	manifest := `name: quilt
version: 1.2.3
test:
  command: sh ./run_tests.sh
include:
  - "*.go"
exclude:
  - "*.log"
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "jigsaw.yaml"), []byte(manifest), 0o644))

	m, err := LoadManifest(dir)
	require.NoError(t, err)
	require.Equal(t, "sh ./run_tests.sh", m.TestCommand())
	require.Equal(t, []string{"*.go"}, m.Include)
	require.Equal(t, []string{"*.log"}, m.Exclude)
}

func TestLoadManifestVersionFileFallback(t *testing.T) {
	dir := testutils.WriteVersionFilePackage(t, "0.0.26")

	m, err := LoadManifest(dir)
	require.NoError(t, err)
	require.Equal(t, filepath.Base(dir), m.Name)
	require.Equal(t, "0.0.26", m.Version)
	require.Equal(t, "VERSION", m.VersionFile())
}

func TestLoadManifestMissing(t *testing.T) {
	_, err := LoadManifest(t.TempDir())
	require.ErrorIs(t, err, ErrNoManifest)
}

func TestLoadManifestRejectsBadVersion(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "jigsaw.yaml"),
		[]byte("name: broken\nversion: not-a-version\n"), 0o644))

	_, err := LoadManifest(dir)
	require.Error(t, err)
	require.Contains(t, err.Error(), "not a valid semantic version")
}

func TestSaveRoundTrip(t *testing.T) {
	dir := testutils.WritePackage(t, "skyscraper-api", "0.0.26")

	m, err := LoadManifest(dir)
	require.NoError(t, err)
	m.Version = "0.0.27"
	require.NoError(t, m.Save(dir))

	reloaded, err := LoadManifest(dir)
	require.NoError(t, err)
	require.Equal(t, "0.0.27", reloaded.Version)
}

func TestSaveVersionFileOnly(t *testing.T) {
	dir := testutils.WriteVersionFilePackage(t, "1.0.0")

	m, err := LoadManifest(dir)
	require.NoError(t, err)
	m.Version = "1.0.1"
	require.NoError(t, m.Save(dir))

	// the bump must land in VERSION, not create a manifest
	_, err = os.Stat(filepath.Join(dir, "jigsaw.yaml"))
	require.True(t, os.IsNotExist(err))

	data, err := os.ReadFile(filepath.Join(dir, "VERSION"))
	require.NoError(t, err)
	require.Equal(t, "1.0.1\n", string(data))
}
