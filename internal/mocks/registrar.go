// Copyright (C) 2022-2025, InYourArea Ltd. All rights reserved.
// See the file LICENSE for licensing terms.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/inyourarea/jigsaw/pkg/crossroads"
)

// Registrar is a testify mock of release.Registrar.
type Registrar struct {
	mock.Mock
}

func (m *Registrar) Register(ctx context.Context, reg crossroads.Registration) error {
	args := m.Called(ctx, reg)
	return args.Error(0)
}
