// Copyright (C) 2022-2025, InYourArea Ltd. All rights reserved.
// See the file LICENSE for licensing terms.
package releasecmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/inyourarea/jigsaw/pkg/application"
)

var (
	app *application.Jigsaw

	// package directory the subcommands operate on
	dir string
)

func NewCmd(injectedApp *application.Jigsaw) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "release",
		Short: "Manage the package release workflow",
		Long: `Test, version, upload, publish and install the package in the
current directory (or --dir).

A package is a directory with a jigsaw.yaml manifest; older packages with a
bare VERSION file work too. The usual flow is:

  jigsaw release test      # run the package test suite
  jigsaw release upload    # test, bump patch, pack and push to the index
  jigsaw release publish   # point an environment at the uploaded version
  jigsaw release status    # show where each environment points`,
		Run: func(cmd *cobra.Command, args []string) {
			err := cmd.Help()
			if err != nil {
				fmt.Println(err)
			}
		},
	}
	app = injectedApp

	cmd.PersistentFlags().StringVar(&dir, "dir", ".", "package directory")

	cmd.AddCommand(newTestCmd())
	cmd.AddCommand(newBumpCmd())
	cmd.AddCommand(newUploadCmd())
	cmd.AddCommand(newPublishCmd())
	cmd.AddCommand(newInstallCmd())
	cmd.AddCommand(newStatusCmd())

	return cmd
}
