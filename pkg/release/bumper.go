// Copyright (C) 2022-2025, InYourArea Ltd. All rights reserved.
// See the file LICENSE for licensing terms.

package release

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	git "github.com/go-git/go-git/v5"
	gitconfig "github.com/go-git/go-git/v5/config"
	"github.com/go-git/go-git/v5/plumbing/object"
	"go.uber.org/zap"
	"golang.org/x/mod/semver"

	"github.com/inyourarea/jigsaw/pkg/constants"
)

// BumpKind selects which version component to increment.
type BumpKind string

const (
	BumpPatch BumpKind = "patch"
	BumpMinor BumpKind = "minor"
	BumpMajor BumpKind = "major"
)

// ParseBumpKind maps a CLI argument to a BumpKind.
func ParseBumpKind(s string) (BumpKind, error) {
	switch BumpKind(s) {
	case BumpPatch, BumpMinor, BumpMajor:
		return BumpKind(s), nil
	default:
		return "", fmt.Errorf("unknown bump kind %q, expected patch, minor or major", s)
	}
}

// BumpResult reports what Bump did.
type BumpResult struct {
	Previous string
	Version  string
	// Tagged is true when the package dir is a git worktree and the bump
	// was committed and tagged.
	Tagged bool
}

// NextVersion increments current according to kind. Pre-release and build
// suffixes are dropped, matching the external bump tool the Makefile used.
func NextVersion(current string, kind BumpKind) (string, error) {
	trimmed := strings.TrimPrefix(current, "v")
	if !semver.IsValid("v" + trimmed) {
		return "", fmt.Errorf("version %q is not a valid semantic version", current)
	}

	core := trimmed
	if i := strings.IndexAny(core, "-+"); i >= 0 {
		core = core[:i]
	}
	parts := strings.Split(core, ".")
	if len(parts) != 3 {
		return "", fmt.Errorf("version %q does not have major.minor.patch form", current)
	}

	nums := make([]int, 3)
	for i, part := range parts {
		n, err := strconv.Atoi(part)
		if err != nil {
			return "", fmt.Errorf("version component %q is not a number: %w", part, err)
		}
		nums[i] = n
	}

	switch kind {
	case BumpMajor:
		nums[0]++
		nums[1], nums[2] = 0, 0
	case BumpMinor:
		nums[1]++
		nums[2] = 0
	case BumpPatch:
		nums[2]++
	default:
		return "", fmt.Errorf("unknown bump kind %q", kind)
	}

	return fmt.Sprintf("%d.%d.%d", nums[0], nums[1], nums[2]), nil
}

// Bump increments the package version in dir and writes it back. When the
// dir is a git worktree the version file is committed and the release is
// tagged v<version>.
func Bump(dir string, kind BumpKind, log *zap.Logger) (*BumpResult, error) {
	if log == nil {
		log = zap.NewNop()
	}

	m, err := LoadManifest(dir)
	if err != nil {
		return nil, err
	}

	next, err := NextVersion(m.Version, kind)
	if err != nil {
		return nil, err
	}

	result := &BumpResult{Previous: m.Version, Version: next}
	m.Version = next
	if err := m.Save(dir); err != nil {
		return nil, err
	}
	log.Info("bumped version",
		zap.String("kind", string(kind)),
		zap.String("from", result.Previous),
		zap.String("to", next))

	tagged, err := commitAndTag(dir, m)
	if err != nil {
		return nil, err
	}
	result.Tagged = tagged
	return result, nil
}

func commitAndTag(dir string, m *Manifest) (bool, error) {
	repo, err := git.PlainOpen(dir)
	if errors.Is(err, git.ErrRepositoryNotExists) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	wt, err := repo.Worktree()
	if err != nil {
		return false, err
	}
	if _, err := wt.Add(m.VersionFile()); err != nil {
		return false, err
	}

	// use the global git config to try identifying the author
	authorName := constants.GitRepoCommitName
	authorEmail := constants.GitRepoCommitEmail
	if conf, err := gitconfig.LoadConfig(gitconfig.GlobalScope); err == nil &&
		conf.Author.Name != "" && conf.Author.Email != "" {
		authorName = conf.Author.Name
		authorEmail = conf.Author.Email
	}

	now := time.Now()
	commit, err := wt.Commit(fmt.Sprintf("release %s", m.TaggedVersion()), &git.CommitOptions{
		Author: &object.Signature{
			Name:  authorName,
			Email: authorEmail,
			When:  now,
		},
	})
	if err != nil {
		return false, fmt.Errorf("failed to commit version bump: %w", err)
	}

	if _, err := repo.CreateTag(m.TaggedVersion(), commit, nil); err != nil {
		return false, fmt.Errorf("failed to tag release: %w", err)
	}
	return true, nil
}
