// Copyright (C) 2022-2025, InYourArea Ltd. All rights reserved.
// See the file LICENSE for licensing terms.

package release

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/schollz/progressbar/v3"
	"go.uber.org/zap"

	"github.com/inyourarea/jigsaw/pkg/client"
)

// ErrVersionExists is returned when the index already holds an archive for
// this package version. Bump before re-uploading.
var ErrVersionExists = errors.New("version already uploaded to the index")

// Uploader pushes package archives to the private package index.
type Uploader struct {
	cli   *client.Client
	token string
	out   io.Writer
	log   *zap.Logger
}

// NewUploader builds an uploader against the index at indexURL. The token
// may be empty for unauthenticated indexes.
func NewUploader(indexURL, token string, out io.Writer, log *zap.Logger) (*Uploader, error) {
	if log == nil {
		log = zap.NewNop()
	}
	cli, err := client.New(
		client.WithHost(indexURL),
		client.WithLogger(log),
	)
	if err != nil {
		return nil, err
	}
	return &Uploader{cli: cli, token: token, out: out, log: log}, nil
}

// Close releases the uploader's connections.
func (u *Uploader) Close() {
	u.cli.Close()
}

// Upload packs the package dir and PUTs the archive to the index under
// /v1/packages/<name>/<version>. Returns the archive size.
func (u *Uploader) Upload(ctx context.Context, dir string, m *Manifest) (int64, error) {
	var buf bytes.Buffer
	if err := Pack(dir, m.Include, m.Exclude, u.packWriter(&buf, m)); err != nil {
		return 0, fmt.Errorf("failed to pack %s: %w", m.Name, err)
	}
	size := int64(buf.Len())
	u.log.Info("packed archive",
		zap.String("package", m.Name),
		zap.String("version", m.Version),
		zap.Int64("bytes", size))

	opts := []client.RequestOption{
		client.WithBody("application/gzip", buf.Bytes()),
	}
	if u.token != "" {
		opts = append(opts, client.WithHeader("Authorization", "Bearer "+u.token))
	}

	path := fmt.Sprintf("/v1/packages/%s/%s", m.Name, m.Version)
	res, err := u.cli.Put(ctx, path, opts...)
	if err != nil {
		return 0, err
	}
	defer func() {
		_, _ = io.Copy(io.Discard, res.Body)
		_ = res.Body.Close()
	}()

	switch {
	case res.StatusCode == http.StatusConflict:
		return 0, fmt.Errorf("%w: %s %s", ErrVersionExists, m.Name, m.Version)
	case res.StatusCode < 200 || res.StatusCode > 299:
		return 0, fmt.Errorf("index refused %s %s with status %d", m.Name, m.Version, res.StatusCode)
	}
	return size, nil
}

// packWriter tees the archive through a progress bar when out is a TTY.
func (u *Uploader) packWriter(buf *bytes.Buffer, m *Manifest) io.Writer {
	f, ok := u.out.(*os.File)
	if !ok || !(isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())) {
		return buf
	}
	bar := progressbar.DefaultBytes(-1, fmt.Sprintf("packing %s", m.Name))
	return io.MultiWriter(buf, bar)
}
