// Copyright (C) 2022-2025, InYourArea Ltd. All rights reserved.
// See the file LICENSE for licensing terms.
package releasecmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/inyourarea/jigsaw/pkg/constants"
	"github.com/inyourarea/jigsaw/pkg/release"
	"github.com/inyourarea/jigsaw/pkg/ux"
)

var (
	publishEnvs []string
	publishYes  bool
)

// jigsaw release publish command
func newPublishCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "publish [env]...",
		Short: "Publish the package version to CrossRoads",
		Long: `Register the manifest version with the CrossRoads service registry so
clients in the given environments resolve to it. Environments are given
as arguments or through --env; with neither, the configured default-env
is used. Publishing to prod asks for confirmation; pass --yes to skip
the prompt in scripts.`,
		RunE: runPublish,
		Args: cobra.ArbitraryArgs,
	}

	cmd.Flags().StringSliceVar(&publishEnvs, "env", nil,
		"environments to publish to (defaults to the configured default-env)")
	cmd.Flags().BoolVar(&publishYes, "yes", false, "publish to prod without asking")

	return cmd
}

func runPublish(cmd *cobra.Command, args []string) error {
	m, err := release.LoadManifest(dir)
	if err != nil {
		return err
	}

	envs := append(args, publishEnvs...)
	if len(envs) == 0 {
		envs = []string{app.Conf.DefaultEnv()}
	}

	for _, env := range envs {
		if env != constants.ProductionEnv || publishYes {
			continue
		}
		prompt := fmt.Sprintf("Publish %s %s to prod?", m.Name, m.Version)
		yes, err := app.Prompt.CaptureNoYes(prompt)
		if err != nil {
			return err
		}
		if !yes {
			ux.Logger.PrintToUser("Publish cancelled")
			return nil
		}
		break
	}

	publisher := release.NewPublisher(app.Registry, app.Log)
	waitDone := make(chan struct{})
	go ux.Logger.PrintWait(waitDone)
	results, publishErr := publisher.Publish(cmd.Context(), m, envs)
	close(waitDone)
	ux.Logger.PrintToUser("")

	rows := make([][]string, 0, len(results))
	for _, result := range results {
		status := "published"
		if result.Err != nil {
			status = result.Err.Error()
		}
		rows = append(rows, []string{result.Env, m.Version, status})
	}
	if err := ux.PrintTable(os.Stdout, []string{"Environment", "Version", "Status"}, rows); err != nil {
		return err
	}

	if publishErr != nil {
		return publishErr
	}
	ux.Logger.GreenCheckmarkToUser("Published %s %s", m.Name, m.Version)
	return nil
}
