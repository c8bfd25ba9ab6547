// Copyright (C) 2022-2025, InYourArea Ltd. All rights reserved.
// See the file LICENSE for licensing terms.
package utils

import (
	"fmt"
	"regexp"
	"strings"
)

// RemoveLineCleanChars removes ANSI escape codes and other terminal control characters from a string
// This is useful for cleaning up command output before pattern matching
func RemoveLineCleanChars(s string) string {
	ansiRegex := regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)
	s = ansiRegex.ReplaceAllString(s, "")

	s = strings.ReplaceAll(s, "\r", "")

	controlRegex := regexp.MustCompile(`[\x00-\x08\x0B-\x0C\x0E-\x1F]`)
	s = controlRegex.ReplaceAllString(s, "")

	return s
}

// SplitCommand splits a command line into argv, honoring single and double
// quotes. No shell expansion is performed.
func SplitCommand(command string) ([]string, error) {
	var (
		args    []string
		current strings.Builder
		quote   rune
		inArg   bool
	)
	for _, r := range command {
		switch {
		case quote != 0:
			if r == quote {
				quote = 0
			} else {
				current.WriteRune(r)
			}
		case r == '\'' || r == '"':
			quote = r
			inArg = true
		case r == ' ' || r == '\t':
			if inArg {
				args = append(args, current.String())
				current.Reset()
				inArg = false
			}
		default:
			current.WriteRune(r)
			inArg = true
		}
	}
	if quote != 0 {
		return nil, fmt.Errorf("unbalanced quote in command: %s", command)
	}
	if inArg {
		args = append(args, current.String())
	}
	return args, nil
}
