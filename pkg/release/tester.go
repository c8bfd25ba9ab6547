// Copyright (C) 2022-2025, InYourArea Ltd. All rights reserved.
// See the file LICENSE for licensing terms.

package release

import (
	"context"
	"fmt"
	"io"
	"os/exec"

	"github.com/inyourarea/jigsaw/pkg/utils"
)

// RunTests runs the package's test command in dir, streaming output to the
// given writers. The command's exit status passes through as the returned
// error.
func RunTests(ctx context.Context, dir string, m *Manifest, stdout, stderr io.Writer) error {
	args, err := utils.SplitCommand(m.TestCommand())
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("package %s has an empty test command", m.Name)
	}

	cmd := exec.CommandContext(ctx, args[0], args[1:]...)
	cmd.Dir = dir
	cmd.Stdout = stdout
	cmd.Stderr = stderr

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("test command %q failed: %w", m.TestCommand(), err)
	}
	return nil
}
