// Copyright (C) 2022-2025, InYourArea Ltd. All rights reserved.
// See the file LICENSE for licensing terms.
package crossroads

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestResolve(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/v1/services/skyscraper-api", r.URL.Path)
		require.Equal(t, "stag", r.URL.Query().Get("env"))
		_ = json.NewEncoder(w).Encode(map[string]string{
			"host": "https://skyscraper-api.stag.inyourarea.co.uk",
		})
	}))
	defer srv.Close()

	registry := New(srv.URL, nil)
	host, err := registry.Resolve(context.Background(), "skyscraper-api", "stag")
	require.NoError(t, err)
	require.Equal(t, "https://skyscraper-api.stag.inyourarea.co.uk", host)
}

func TestResolveNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	registry := New(srv.URL, nil)
	_, err := registry.Resolve(context.Background(), "nope", "stag")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestRegister(t *testing.T) {
	var got Registration
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPut, r.Method)
		require.Equal(t, "/v1/services/skyscraper-api/deployments/prod", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	registry := New(srv.URL, nil)
	err := registry.Register(context.Background(), Registration{
		Service: "skyscraper-api",
		Env:     "prod",
		Version: "0.0.27",
	})
	require.NoError(t, err)
	require.Equal(t, "skyscraper-api", got.Service)
	require.Equal(t, "0.0.27", got.Version)
}

func TestRegisterServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	registry := New(srv.URL, nil)
	err := registry.Register(context.Background(), Registration{
		Service: "svc", Env: "stag", Version: "1.0.0",
	})
	require.Error(t, err)
	require.Contains(t, err.Error(), "status 500")
}

func TestDeployments(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/v1/services/skyscraper-api/deployments", r.URL.Path)
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"deployments": []map[string]string{
				{"env": "stag", "host": "https://stag.example", "version": "0.0.27"},
				{"env": "prod", "host": "https://prod.example", "version": "0.0.26"},
			},
		})
	}))
	defer srv.Close()

	registry := New(srv.URL, nil)
	deployments, err := registry.Deployments(context.Background(), "skyscraper-api")
	require.NoError(t, err)
	require.Len(t, deployments, 2)
	require.Equal(t, "stag", deployments[0].Env)
	require.Equal(t, "0.0.26", deployments[1].Version)
}
