// Copyright (C) 2022-2025, InYourArea Ltd. All rights reserved.
// See the file LICENSE for licensing terms.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// Resolver is a testify mock of crossroads.Resolver.
type Resolver struct {
	mock.Mock
}

func (m *Resolver) Resolve(ctx context.Context, service, env string) (string, error) {
	args := m.Called(ctx, service, env)
	return args.String(0), args.Error(1)
}
