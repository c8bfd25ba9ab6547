// Copyright (C) 2022-2025, InYourArea Ltd. All rights reserved.
// See the file LICENSE for licensing terms.
package releasecmd

import (
	"github.com/spf13/cobra"

	"github.com/inyourarea/jigsaw/pkg/release"
	"github.com/inyourarea/jigsaw/pkg/ux"
)

// jigsaw release install command
func newInstallCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "install",
		Short: "Install the working copy locally",
		Long: `Pack the package directory and unpack it under ~/.jigsaw/packages, so
local tooling picks up the working copy instead of the index version.`,
		RunE: runInstall,
		Args: cobra.NoArgs,
	}
}

func runInstall(_ *cobra.Command, _ []string) error {
	m, err := release.LoadManifest(dir)
	if err != nil {
		return err
	}

	dest, err := release.InstallLocally(dir, m, app.GetPackagesDir(), app.Log)
	if err != nil {
		return err
	}

	ux.Logger.GreenCheckmarkToUser("Installed %s %s to %s", m.Name, m.Version, dest)
	return nil
}
