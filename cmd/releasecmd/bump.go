// Copyright (C) 2022-2025, InYourArea Ltd. All rights reserved.
// See the file LICENSE for licensing terms.
package releasecmd

import (
	"github.com/spf13/cobra"

	"github.com/inyourarea/jigsaw/pkg/release"
	"github.com/inyourarea/jigsaw/pkg/ux"
)

// jigsaw release bump command
func newBumpCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "bump [patch | minor | major]",
		Short: "Bump the package version",
		Long: `Increment the version in the manifest, then commit and tag the change
when the package directory is a git worktree. Prompts for the bump kind
when none is given.`,
		RunE: runBump,
		Args: cobra.MaximumNArgs(1),
	}
}

func runBump(_ *cobra.Command, args []string) error {
	var arg string
	if len(args) == 1 {
		arg = args[0]
	} else {
		var err error
		arg, err = app.Prompt.CaptureList("Which version component should be bumped?",
			[]string{string(release.BumpPatch), string(release.BumpMinor), string(release.BumpMajor)})
		if err != nil {
			return err
		}
	}

	kind, err := release.ParseBumpKind(arg)
	if err != nil {
		return err
	}

	result, err := release.Bump(dir, kind, app.Log)
	if err != nil {
		return err
	}

	ux.Logger.GreenCheckmarkToUser("Bumped version %s -> %s", result.Previous, result.Version)
	if result.Tagged {
		ux.Logger.PrintToUser("Created tag v%s", result.Version)
	} else {
		ux.Logger.PrintToUser("Not a git repository, version file updated only")
	}
	return nil
}
