// Copyright (C) 2022-2025, InYourArea Ltd. All rights reserved.
// See the file LICENSE for licensing terms.
package releasecmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/inyourarea/jigsaw/pkg/release"
	"github.com/inyourarea/jigsaw/pkg/ux"
)

// jigsaw release test command
func newTestCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "test",
		Short: "Run the package test suite",
		Long:  "Run the test command from the manifest (go test ./... when unset) in the package directory.",
		RunE:  runTest,
		Args:  cobra.NoArgs,
	}
}

func runTest(cmd *cobra.Command, _ []string) error {
	m, err := release.LoadManifest(dir)
	if err != nil {
		return err
	}

	ux.Logger.PrintToUser("Running tests for %s: %s", m.Name, m.TestCommand())
	if err := release.RunTests(cmd.Context(), dir, m, os.Stdout, os.Stderr); err != nil {
		ux.Logger.RedXToUser("Tests failed for %s", m.Name)
		return err
	}
	ux.Logger.GreenCheckmarkToUser("Tests passed for %s", m.Name)
	return nil
}
