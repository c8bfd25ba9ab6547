// Copyright (C) 2022-2025, InYourArea Ltd. All rights reserved.
// See the file LICENSE for licensing terms.

package release

import (
	"archive/tar"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/inyourarea/jigsaw/pkg/constants"
)

// Pack writes a tar.gz archive of the package dir to out. The .git
// directory is always skipped, along with any path matching an exclude
// glob. When include globs are given, only files matching one of them are
// archived. Globs match against the slash-separated relative path.
func Pack(src string, include, exclude []string, out io.Writer) error {
	gw := gzip.NewWriter(out)
	defer gw.Close()

	tw := tar.NewWriter(gw)
	defer tw.Close()

	return filepath.Walk(src, func(file string, fi os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		relPath, err := filepath.Rel(src, file)
		if err != nil {
			return err
		}
		if relPath == "." {
			return nil
		}
		name := filepath.ToSlash(relPath)

		if name == ".git" || strings.HasPrefix(name, ".git/") {
			if fi.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		for _, pattern := range exclude {
			matched, err := filepath.Match(pattern, name)
			if err != nil {
				return fmt.Errorf("bad exclude pattern %q: %w", pattern, err)
			}
			if matched {
				if fi.IsDir() {
					return filepath.SkipDir
				}
				return nil
			}
		}
		if len(include) > 0 {
			// dirs are still walked; Extract recreates parents for the
			// files that do match
			if fi.IsDir() {
				return nil
			}
			matchedAny := false
			for _, pattern := range include {
				matched, err := filepath.Match(pattern, name)
				if err != nil {
					return fmt.Errorf("bad include pattern %q: %w", pattern, err)
				}
				if matched {
					matchedAny = true
					break
				}
			}
			if !matchedAny {
				return nil
			}
		}

		header, err := tar.FileInfoHeader(fi, file)
		if err != nil {
			return err
		}
		header.Name = name

		if err := tw.WriteHeader(header); err != nil {
			return err
		}

		if !fi.Mode().IsRegular() {
			return nil
		}

		f, err := os.Open(file)
		if err != nil {
			return err
		}
		defer f.Close()

		if _, err := io.Copy(tw, f); err != nil {
			return err
		}
		return nil
	})
}

// Extract unpacks a tar.gz archive into dst.
func Extract(r io.Reader, dst string) error {
	gr, err := gzip.NewReader(r)
	if err != nil {
		return fmt.Errorf("failed to create gzip reader: %w", err)
	}
	defer gr.Close()

	tr := tar.NewReader(gr)

	destAbs, err := filepath.Abs(dst)
	if err != nil {
		return err
	}

	for {
		header, err := tr.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}

		target := filepath.Join(dst, header.Name)

		// Guard against path traversal out of dst
		targetAbs, err := filepath.Abs(target)
		if err != nil {
			return err
		}
		if !strings.HasPrefix(targetAbs, destAbs+string(os.PathSeparator)) {
			return fmt.Errorf("invalid file path in archive: %s", header.Name)
		}

		switch header.Typeflag {
		case tar.TypeDir:
			if err := os.MkdirAll(target, constants.DefaultPerms755); err != nil {
				return err
			}
		case tar.TypeReg:
			if err := os.MkdirAll(filepath.Dir(target), constants.DefaultPerms755); err != nil {
				return err
			}
			out, err := os.OpenFile(target, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, os.FileMode(header.Mode))
			if err != nil {
				return err
			}
			if _, err := io.Copy(out, tr); err != nil { //nolint:gosec // G110: trusted archives from our own index
				_ = out.Close()
				return err
			}
			if err := out.Close(); err != nil {
				return err
			}
		}
	}
	return nil
}
