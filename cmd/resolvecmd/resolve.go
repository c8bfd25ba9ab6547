// Copyright (C) 2022-2025, InYourArea Ltd. All rights reserved.
// See the file LICENSE for licensing terms.
package resolvecmd

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/inyourarea/jigsaw/pkg/application"
	"github.com/inyourarea/jigsaw/pkg/crossroads"
	"github.com/inyourarea/jigsaw/pkg/ux"
)

var (
	app *application.Jigsaw

	resolveEnv string
)

// jigsaw resolve command
func NewCmd(injectedApp *application.Jigsaw) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "resolve [service]",
		Short: "Look up a service host through CrossRoads",
		Long: `Ask the CrossRoads registry which host currently serves the given
service in an environment. This is the lookup the generated clients do
before every request; running it by hand is useful when a service
misbehaves in one environment only.`,
		RunE: runResolve,
		Args: cobra.ExactArgs(1),
	}
	app = injectedApp

	cmd.Flags().StringVar(&resolveEnv, "env", "", "environment to resolve in (defaults to the configured default-env)")

	return cmd
}

func runResolve(cmd *cobra.Command, args []string) error {
	service := args[0]
	env := resolveEnv
	if env == "" {
		env = app.Conf.DefaultEnv()
	}

	host, err := app.Registry.Resolve(cmd.Context(), service, env)
	if err != nil {
		if errors.Is(err, crossroads.ErrNotFound) {
			ux.Logger.RedXToUser("Service %s is not registered in %s", service, env)
		}
		return err
	}

	ux.Logger.PrintToUser("%s", host)
	return nil
}
