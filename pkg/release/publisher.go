// Copyright (C) 2022-2025, InYourArea Ltd. All rights reserved.
// See the file LICENSE for licensing terms.

package release

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"

	"github.com/inyourarea/jigsaw/pkg/constants"
	"github.com/inyourarea/jigsaw/pkg/crossroads"
)

// Registrar is the registry surface publishing needs.
type Registrar interface {
	Register(ctx context.Context, reg crossroads.Registration) error
}

// Result is the outcome of publishing to one environment.
type Result struct {
	Env string
	Err error
}

// Publisher registers package versions with the CrossRoads registry.
type Publisher struct {
	registrar   Registrar
	concurrency int64
	log         *zap.Logger
}

func NewPublisher(registrar Registrar, log *zap.Logger) *Publisher {
	if log == nil {
		log = zap.NewNop()
	}
	return &Publisher{
		registrar:   registrar,
		concurrency: constants.PublishConcurrency,
		log:         log,
	}
}

// Publish registers the manifest's version in every named environment
// concurrently. Each environment gets its own Result; the returned error
// summarizes failures without hiding the per-env detail.
func (p *Publisher) Publish(ctx context.Context, m *Manifest, envs []string) ([]Result, error) {
	results := make([]Result, len(envs))

	sem := semaphore.NewWeighted(p.concurrency)
	group, ctx := errgroup.WithContext(ctx)

	for i, env := range envs {
		i, env := i, env
		results[i].Env = env
		group.Go(func() error {
			if err := sem.Acquire(ctx, 1); err != nil {
				results[i].Err = err
				return nil
			}
			defer sem.Release(1)

			err := p.registrar.Register(ctx, crossroads.Registration{
				Service: m.Name,
				Env:     env,
				Version: m.Version,
			})
			results[i].Err = err
			if err != nil {
				p.log.Error("publish failed",
					zap.String("env", env),
					zap.Error(err))
			} else {
				p.log.Info("published",
					zap.String("package", m.Name),
					zap.String("version", m.Version),
					zap.String("env", env))
			}
			return nil
		})
	}

	// goroutines report through results, not the group error
	_ = group.Wait()

	failed := 0
	for _, r := range results {
		if r.Err != nil {
			failed++
		}
	}
	if failed > 0 {
		return results, fmt.Errorf("publish failed for %d of %d environments", failed, len(envs))
	}
	return results, nil
}
