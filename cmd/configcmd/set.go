// Copyright (C) 2022-2025, InYourArea Ltd. All rights reserved.
// See the file LICENSE for licensing terms.
package configcmd

import (
	"github.com/spf13/cobra"

	"github.com/inyourarea/jigsaw/pkg/ux"
)

// jigsaw config set command
func newSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set [key] [value]",
		Short: "Persist a config value",
		Long:  "Write a key to the config file, creating the file when it does not exist yet.",
		RunE:  handleSet,
		Args:  cobra.ExactArgs(2),
	}
}

func handleSet(_ *cobra.Command, args []string) error {
	key, value := args[0], args[1]
	if err := validKey(key); err != nil {
		return err
	}
	if err := app.Conf.SetConfigValue(key, value); err != nil {
		return err
	}
	ux.Logger.GreenCheckmarkToUser("Set %s", key)
	return nil
}
