// Copyright (C) 2022-2025, InYourArea Ltd. All rights reserved.
// See the file LICENSE for licensing terms.
package configcmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/inyourarea/jigsaw/pkg/application"
	"github.com/inyourarea/jigsaw/pkg/constants"
)

var app *application.Jigsaw

// the settable keys, in display order
var configKeys = []string{
	constants.ConfigRegistryURLKey,
	constants.ConfigIndexURLKey,
	constants.ConfigIndexTokenKey,
	constants.ConfigDefaultEnvKey,
}

func NewCmd(injectedApp *application.Jigsaw) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Modify configuration for Jigsaw",
		Long:  `Customize configuration for Jigsaw`,
		Run: func(cmd *cobra.Command, args []string) {
			err := cmd.Help()
			if err != nil {
				fmt.Println(err)
			}
		},
	}
	app = injectedApp

	cmd.AddCommand(newGetCmd())
	cmd.AddCommand(newSetCmd())
	cmd.AddCommand(newListCmd())

	return cmd
}

func validKey(key string) error {
	for _, k := range configKeys {
		if k == key {
			return nil
		}
	}
	return fmt.Errorf("unknown config key %q", key)
}
