// Copyright (C) 2022-2025, InYourArea Ltd. All rights reserved.
// See the file LICENSE for licensing terms.
package releasecmd

import (
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/inyourarea/jigsaw/pkg/release"
	"github.com/inyourarea/jigsaw/pkg/ux"
)

// jigsaw release status command
func newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the package's deployments",
		Long:  "List the CrossRoads registrations for the package, one row per environment.",
		RunE:  runStatus,
		Args:  cobra.NoArgs,
	}
}

func runStatus(cmd *cobra.Command, _ []string) error {
	m, err := release.LoadManifest(dir)
	if err != nil {
		return err
	}

	deployments, err := app.Registry.Deployments(cmd.Context(), m.Name)
	if err != nil {
		return err
	}

	if len(deployments) == 0 {
		ux.Logger.PrintToUser("No deployments registered for %s", m.Name)
		return nil
	}

	rows := make([][]string, 0, len(deployments))
	for _, d := range deployments {
		rows = append(rows, []string{
			d.Env,
			d.Version,
			d.Host,
			d.UpdatedAt.Format(time.RFC3339),
		})
	}
	return ux.PrintTable(os.Stdout, []string{"Environment", "Version", "Host", "Updated"}, rows)
}
