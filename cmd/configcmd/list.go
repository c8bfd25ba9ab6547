// Copyright (C) 2022-2025, InYourArea Ltd. All rights reserved.
// See the file LICENSE for licensing terms.
package configcmd

import (
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/inyourarea/jigsaw/pkg/constants"
	"github.com/inyourarea/jigsaw/pkg/ux"
)

// jigsaw config list command
func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Show all config values",
		RunE:  handleList,
		Args:  cobra.NoArgs,
	}
}

func handleList(_ *cobra.Command, _ []string) error {
	rows := make([][]string, 0, len(configKeys))
	for _, key := range configKeys {
		value := app.Conf.GetConfigStringValue(key)
		if key == constants.ConfigIndexTokenKey && value != "" {
			value = strings.Repeat("*", 8)
		}
		rows = append(rows, []string{key, value})
	}
	if err := ux.PrintTable(os.Stdout, []string{"Key", "Value"}, rows); err != nil {
		return err
	}
	if app.ConfigFileExists() {
		ux.Logger.PrintToUser("Config file: %s", app.Conf.GetConfigPath())
	}
	return nil
}
