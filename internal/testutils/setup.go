// Copyright (C) 2022-2025, InYourArea Ltd. All rights reserved.
// See the file LICENSE for licensing terms.
package testutils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// WritePackage lays out a throwaway package dir with a jigsaw.yaml and a
// couple of source files, and returns its path.
func WritePackage(t *testing.T, name, version string) string {
	t.Helper()
	dir := t.TempDir()

	manifest := "name: " + name + "\nversion: " + version + "\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "jigsaw.yaml"), []byte(manifest), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "main.go"), []byte("package main\n"), 0o644))
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "docs"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "docs", "README.md"), []byte("# "+name+"\n"), 0o644))

	return dir
}

// WriteVersionFilePackage lays out a pre-manifest package carrying only a
// VERSION file.
func WriteVersionFilePackage(t *testing.T, version string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "VERSION"), []byte(version+"\n"), 0o644))
	return dir
}
