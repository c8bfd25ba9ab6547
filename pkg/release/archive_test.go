// Copyright (C) 2022-2025, InYourArea Ltd. All rights reserved.
// See the file LICENSE for licensing terms.
package release

import (
	"archive/tar"
	"bytes"
	"compress/gzip"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/inyourarea/jigsaw/internal/testutils"
)

func buildArchiveWithEntry(t *testing.T, name string) io.Reader {
	t.Helper()
	var buf bytes.Buffer
	gw := gzip.NewWriter(&buf)
	tw := tar.NewWriter(gw)
	content := []byte("gotcha")
	require.NoError(t, tw.WriteHeader(&tar.Header{
		Name:     name,
		Typeflag: tar.TypeReg,
		Mode:     0o644,
		Size:     int64(len(content)),
	}))
	_, err := tw.Write(content)
	require.NoError(t, err)
	require.NoError(t, tw.Close())
	require.NoError(t, gw.Close())
	return &buf
}

func TestPackExtractRoundTrip(t *testing.T) {
	src := testutils.WritePackage(t, "skyscraper-api", "0.0.26")

	var buf bytes.Buffer
	require.NoError(t, Pack(src, nil, nil, &buf))

	dst := t.TempDir()
	require.NoError(t, Extract(&buf, dst))

	data, err := os.ReadFile(filepath.Join(dst, "jigsaw.yaml"))
	require.NoError(t, err)
	require.Contains(t, string(data), "skyscraper-api")

	data, err = os.ReadFile(filepath.Join(dst, "docs", "README.md"))
	require.NoError(t, err)
	require.Contains(t, string(data), "# skyscraper-api")
}

func TestPackSkipsGitDir(t *testing.T) {
	src := testutils.WritePackage(t, "svc", "1.0.0")
	require.NoError(t, os.MkdirAll(filepath.Join(src, ".git", "objects"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(src, ".git", "HEAD"), []byte("ref: refs/heads/main\n"), 0o644))

	var buf bytes.Buffer
	require.NoError(t, Pack(src, nil, nil, &buf))

	dst := t.TempDir()
	require.NoError(t, Extract(&buf, dst))

	_, err := os.Stat(filepath.Join(dst, ".git"))
	require.True(t, os.IsNotExist(err))
}

func TestPackHonorsExcludes(t *testing.T) {
	src := testutils.WritePackage(t, "svc", "1.0.0")
	require.NoError(t, os.WriteFile(filepath.Join(src, "debug.log"), []byte("noise"), 0o644))

	var buf bytes.Buffer
	require.NoError(t, Pack(src, nil, []string{"*.log", "docs"}, &buf))

	dst := t.TempDir()
	require.NoError(t, Extract(&buf, dst))

	_, err := os.Stat(filepath.Join(dst, "debug.log"))
	require.True(t, os.IsNotExist(err))
	_, err = os.Stat(filepath.Join(dst, "docs"))
	require.True(t, os.IsNotExist(err))
	_, err = os.Stat(filepath.Join(dst, "main.go"))
	require.NoError(t, err)
}

func TestPackHonorsIncludes(t *testing.T) {
	src := testutils.WritePackage(t, "svc", "1.0.0")
	require.NoError(t, os.WriteFile(filepath.Join(src, "secret.env"), []byte("TOKEN=x"), 0o644))

	var buf bytes.Buffer
	require.NoError(t, Pack(src, []string{"*.go", "jigsaw.yaml"}, nil, &buf))

	dst := t.TempDir()
	require.NoError(t, Extract(&buf, dst))

	_, err := os.Stat(filepath.Join(dst, "secret.env"))
	require.True(t, os.IsNotExist(err))
	_, err = os.Stat(filepath.Join(dst, "docs", "README.md"))
	require.True(t, os.IsNotExist(err))
	_, err = os.Stat(filepath.Join(dst, "main.go"))
	require.NoError(t, err)
	_, err = os.Stat(filepath.Join(dst, "jigsaw.yaml"))
	require.NoError(t, err)
}

func TestExtractRejectsPathTraversal(t *testing.T) {
	// hand-build an archive with a hostile entry
	var buf bytes.Buffer
	require.NoError(t, Pack(testutils.WritePackage(t, "svc", "1.0.0"), nil, nil, &buf))

	hostile := buildArchiveWithEntry(t, "../escape.txt")
	err := Extract(hostile, t.TempDir())
	require.Error(t, err)
	require.Contains(t, err.Error(), "invalid file path")
}

func TestInstallLocally(t *testing.T) {
	src := testutils.WritePackage(t, "skyscraper-api", "0.0.26")
	m, err := LoadManifest(src)
	require.NoError(t, err)

	packagesDir := t.TempDir()
	dest, err := InstallLocally(src, m, packagesDir, nil)
	require.NoError(t, err)
	require.Equal(t, filepath.Join(packagesDir, "skyscraper-api", "0.0.26"), dest)

	_, err = os.Stat(filepath.Join(dest, "main.go"))
	require.NoError(t, err)

	// reinstalling the same version replaces the previous copy
	require.NoError(t, os.WriteFile(filepath.Join(dest, "stale.txt"), []byte("old"), 0o644))
	_, err = InstallLocally(src, m, packagesDir, nil)
	require.NoError(t, err)
	_, err = os.Stat(filepath.Join(dest, "stale.txt"))
	require.True(t, os.IsNotExist(err))
}
