// Copyright (C) 2022-2025, InYourArea Ltd. All rights reserved.
// See the file LICENSE for licensing terms.
package e2e

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"os/exec"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The suite drives a built jigsaw binary against fake index and registry
// servers. Build the binary and opt in with:
//
//	go build -o jigsaw . && RUN_E2E=1 go test ./tests/e2e/...
func skipUnlessE2E(t *testing.T) {
	t.Helper()
	if os.Getenv("RUN_E2E") == "" {
		t.Skip("Skipping e2e test, set RUN_E2E=1 to run")
	}
}

func runCommand(ctx context.Context, env []string, args ...string) *exec.Cmd {
	cmd := exec.CommandContext(ctx, "jigsaw", args...)
	cmd.Env = append(os.Environ(), env...)
	return cmd
}

func writePackage(t *testing.T, version string) string {
	t.Helper()
	dir := t.TempDir()
	manifest := "name: listings-api\nversion: " + version + "\ntest:\n  command: \"true\"\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "jigsaw.yaml"), []byte(manifest), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "main.go"), []byte("package main\n"), 0o644))
	return dir
}

// TestReleaseUpload exercises the full upload flow: tests run, the patch
// version is bumped and the archive lands on the index.
func TestReleaseUpload(t *testing.T) {
	skipUnlessE2E(t)

	var uploadedPath string
	index := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		uploadedPath = r.URL.Path
		w.WriteHeader(http.StatusCreated)
	}))
	defer index.Close()

	dir := writePackage(t, "1.2.3")

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	cmd := runCommand(ctx, []string{"JIGSAW_INDEX_URL=" + index.URL},
		"release", "upload", "--dir", dir, "--non-interactive")
	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "upload failed: %s", string(output))

	assert.Equal(t, "/v1/packages/listings-api/1.2.4", uploadedPath)
	assert.Contains(t, string(output), "1.2.3 -> 1.2.4")
}

// TestReleaseStatus renders the deployments table from the registry.
func TestReleaseStatus(t *testing.T) {
	skipUnlessE2E(t)

	registry := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/v1/services/listings-api/deployments", r.URL.Path)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"deployments": []map[string]any{
				{"env": "stag", "host": "listings-api.stag.inyourarea.co.uk", "version": "1.2.4"},
			},
		})
	}))
	defer registry.Close()

	dir := writePackage(t, "1.2.4")

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	cmd := runCommand(ctx, []string{"JIGSAW_CROSSROADS_URL=" + registry.URL},
		"release", "status", "--dir", dir)
	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "status failed: %s", string(output))

	assert.Contains(t, string(output), "stag")
	assert.Contains(t, string(output), "listings-api.stag.inyourarea.co.uk")
}

// TestResolve looks a service host up through the registry.
func TestResolve(t *testing.T) {
	skipUnlessE2E(t)

	registry := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/v1/services/listings-api", r.URL.Path)
		require.Equal(t, "prod", r.URL.Query().Get("env"))
		_ = json.NewEncoder(w).Encode(map[string]string{
			"host": "https://listings-api.inyourarea.co.uk",
		})
	}))
	defer registry.Close()

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	cmd := runCommand(ctx, []string{"JIGSAW_CROSSROADS_URL=" + registry.URL},
		"resolve", "listings-api", "--env", "prod")
	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "resolve failed: %s", string(output))

	assert.Contains(t, string(output), "https://listings-api.inyourarea.co.uk")
}

// TestConfigRoundtrip sets a key and reads it back.
func TestConfigRoundtrip(t *testing.T) {
	skipUnlessE2E(t)

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	setCmd := runCommand(ctx, nil, "config", "set", "default-env", "stag")
	output, err := setCmd.CombinedOutput()
	require.NoError(t, err, "config set failed: %s", string(output))

	getCmd := runCommand(ctx, nil, "config", "get", "default-env")
	output, err = getCmd.CombinedOutput()
	require.NoError(t, err, "config get failed: %s", string(output))
	assert.Contains(t, string(output), "stag")
}
