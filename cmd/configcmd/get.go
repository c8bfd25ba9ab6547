// Copyright (C) 2022-2025, InYourArea Ltd. All rights reserved.
// See the file LICENSE for licensing terms.
package configcmd

import (
	"github.com/spf13/cobra"

	"github.com/inyourarea/jigsaw/pkg/ux"
)

// jigsaw config get command
func newGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get [key]",
		Short: "Print a config value",
		RunE:  handleGet,
		Args:  cobra.ExactArgs(1),
	}
}

func handleGet(_ *cobra.Command, args []string) error {
	key := args[0]
	if err := validKey(key); err != nil {
		return err
	}
	ux.Logger.PrintToUser("%s", app.Conf.GetConfigStringValue(key))
	return nil
}
