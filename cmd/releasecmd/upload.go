// Copyright (C) 2022-2025, InYourArea Ltd. All rights reserved.
// See the file LICENSE for licensing terms.
package releasecmd

import (
	"errors"
	"os"

	"github.com/spf13/cobra"

	"github.com/inyourarea/jigsaw/pkg/release"
	"github.com/inyourarea/jigsaw/pkg/ux"
)

var (
	skipTests bool
	skipBump  bool
)

// jigsaw release upload command
func newUploadCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "upload",
		Short: "Upload the package to the index",
		Long: `Run the package tests, bump the patch version, then pack the package
directory and push the archive to the package index.

Use --skip-tests and --skip-bump to push the current version as-is.`,
		RunE: runUpload,
		Args: cobra.NoArgs,
	}

	cmd.Flags().BoolVar(&skipTests, "skip-tests", false, "upload without running the test suite")
	cmd.Flags().BoolVar(&skipBump, "skip-bump", false, "upload the current version without a patch bump")

	return cmd
}

func runUpload(cmd *cobra.Command, _ []string) error {
	m, err := release.LoadManifest(dir)
	if err != nil {
		return err
	}

	if !skipTests {
		ux.Logger.PrintToUser("Running tests for %s: %s", m.Name, m.TestCommand())
		if err := release.RunTests(cmd.Context(), dir, m, os.Stdout, os.Stderr); err != nil {
			ux.Logger.RedXToUser("Tests failed for %s, not uploading", m.Name)
			return err
		}
		ux.Logger.GreenCheckmarkToUser("Tests passed for %s", m.Name)
	}

	if !skipBump {
		result, err := release.Bump(dir, release.BumpPatch, app.Log)
		if err != nil {
			return err
		}
		ux.Logger.PrintToUser("Bumped version %s -> %s", result.Previous, result.Version)
		// reload so the upload sees the bumped version
		m, err = release.LoadManifest(dir)
		if err != nil {
			return err
		}
	}

	uploader, err := release.NewUploader(app.Conf.IndexURL(), app.Conf.IndexToken(), os.Stdout, app.Log)
	if err != nil {
		return err
	}
	defer uploader.Close()

	size, err := uploader.Upload(cmd.Context(), dir, m)
	if err != nil {
		if errors.Is(err, release.ErrVersionExists) {
			ux.Logger.RedXToUser("Version %s of %s is already on the index; bump before uploading", m.Version, m.Name)
		}
		return err
	}

	ux.Logger.GreenCheckmarkToUser("Uploaded %s %s", m.Name, m.Version)
	ux.Logger.SizeToUser("Archive size:", size)
	return nil
}
