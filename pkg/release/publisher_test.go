// Copyright (C) 2022-2025, InYourArea Ltd. All rights reserved.
// See the file LICENSE for licensing terms.
package release

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/inyourarea/jigsaw/internal/mocks"
	"github.com/inyourarea/jigsaw/pkg/crossroads"
)

func TestPublishAllEnvironments(t *testing.T) {
	m := &Manifest{Name: "skyscraper-api", Version: "0.0.27"}

	registrar := &mocks.Registrar{}
	for _, env := range []string{"stag", "prod"} {
		registrar.On("Register", mock.Anything, crossroads.Registration{
			Service: "skyscraper-api",
			Env:     env,
			Version: "0.0.27",
		}).Return(nil).Once()
	}

	publisher := NewPublisher(registrar, nil)
	results, err := publisher.Publish(context.Background(), m, []string{"stag", "prod"})
	require.NoError(t, err)
	require.Len(t, results, 2)
	for _, r := range results {
		require.NoError(t, r.Err)
	}
	registrar.AssertExpectations(t)
}

func TestPublishPartialFailure(t *testing.T) {
	m := &Manifest{Name: "svc", Version: "1.0.0"}
	boom := errors.New("registry down")

	registrar := &mocks.Registrar{}
	registrar.On("Register", mock.Anything, mock.MatchedBy(func(reg crossroads.Registration) bool {
		return reg.Env == "stag"
	})).Return(nil)
	registrar.On("Register", mock.Anything, mock.MatchedBy(func(reg crossroads.Registration) bool {
		return reg.Env == "prod"
	})).Return(boom)

	publisher := NewPublisher(registrar, nil)
	results, err := publisher.Publish(context.Background(), m, []string{"stag", "prod"})
	require.Error(t, err)
	require.Contains(t, err.Error(), "1 of 2")

	byEnv := map[string]error{}
	for _, r := range results {
		byEnv[r.Env] = r.Err
	}
	require.NoError(t, byEnv["stag"])
	require.ErrorIs(t, byEnv["prod"], boom)
}

func TestPublishNoEnvironments(t *testing.T) {
	publisher := NewPublisher(&mocks.Registrar{}, nil)
	results, err := publisher.Publish(context.Background(), &Manifest{Name: "svc", Version: "1.0.0"}, nil)
	require.NoError(t, err)
	require.Empty(t, results)
}
