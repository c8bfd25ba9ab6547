// Copyright (C) 2022-2025, InYourArea Ltd. All rights reserved.
// See the file LICENSE for licensing terms.

// Package crossroads talks to the CrossRoads service registry, which maps
// (service, environment) pairs to hosts. It is the resolver behind the
// client library's auto-resolve mode and the target of release publishing.
package crossroads

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"go.uber.org/zap"

	"github.com/inyourarea/jigsaw/pkg/constants"
)

// ErrNotFound is returned when a service has no registration for the
// requested environment.
var ErrNotFound = errors.New("service not registered")

// Resolver resolves a service name within an environment to a host URL.
type Resolver interface {
	Resolve(ctx context.Context, service, env string) (string, error)
}

// Registration is one service deployment record.
type Registration struct {
	Service string `json:"service"`
	Env     string `json:"env"`
	Host    string `json:"host,omitempty"`
	Version string `json:"version"`
}

// Deployment is a registry row as reported by the deployments listing.
type Deployment struct {
	Env       string    `json:"env"`
	Host      string    `json:"host"`
	Version   string    `json:"version"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Registry is an HTTP client for the CrossRoads API.
//
// It deliberately sits on plain net/http: the generic client resolves hosts
// through this type, so it cannot be built on top of that client.
type Registry struct {
	baseURL    string
	httpClient *http.Client
	log        *zap.Logger
}

var _ Resolver = (*Registry)(nil)

func New(baseURL string, log *zap.Logger) *Registry {
	if log == nil {
		log = zap.NewNop()
	}
	return &Registry{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: constants.APIRequestTimeout,
		},
		log: log,
	}
}

// Resolve returns the host registered for service in env.
func (r *Registry) Resolve(ctx context.Context, service, env string) (string, error) {
	endpoint := fmt.Sprintf("%s/v1/services/%s?env=%s",
		r.baseURL, url.PathEscape(service), url.QueryEscape(env))

	var reply struct {
		Host string `json:"host"`
	}
	if err := r.doJSON(ctx, http.MethodGet, endpoint, nil, &reply); err != nil {
		return "", fmt.Errorf("resolving %s in %s: %w", service, env, err)
	}

	r.log.Info("resolved service host",
		zap.String("service", service),
		zap.String("env", env),
		zap.String("host", reply.Host))
	return reply.Host, nil
}

// Register records a service deployment for an environment.
func (r *Registry) Register(ctx context.Context, reg Registration) error {
	endpoint := fmt.Sprintf("%s/v1/services/%s/deployments/%s",
		r.baseURL, url.PathEscape(reg.Service), url.PathEscape(reg.Env))

	body, err := json.Marshal(reg)
	if err != nil {
		return fmt.Errorf("failed to marshal registration: %w", err)
	}
	if err := r.doJSON(ctx, http.MethodPut, endpoint, body, nil); err != nil {
		return fmt.Errorf("registering %s %s in %s: %w", reg.Service, reg.Version, reg.Env, err)
	}
	return nil
}

// Deployments lists the per-environment deployments of a service.
func (r *Registry) Deployments(ctx context.Context, service string) ([]Deployment, error) {
	endpoint := fmt.Sprintf("%s/v1/services/%s/deployments", r.baseURL, url.PathEscape(service))

	var reply struct {
		Deployments []Deployment `json:"deployments"`
	}
	if err := r.doJSON(ctx, http.MethodGet, endpoint, nil, &reply); err != nil {
		return nil, fmt.Errorf("listing deployments of %s: %w", service, err)
	}
	return reply.Deployments, nil
}

func (r *Registry) doJSON(ctx context.Context, method, endpoint string, body []byte, out interface{}) error {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	res, err := r.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to reach registry: %w", err)
	}
	defer res.Body.Close()

	switch {
	case res.StatusCode == http.StatusNotFound:
		return ErrNotFound
	case res.StatusCode < 200 || res.StatusCode > 299:
		return fmt.Errorf("registry replied with status %d", res.StatusCode)
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, res.Body)
		return nil
	}
	if err := json.NewDecoder(res.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode registry reply: %w", err)
	}
	return nil
}
