// Copyright (C) 2022-2025, InYourArea Ltd. All rights reserved.
// See the file LICENSE for licensing terms.
package client

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/inyourarea/jigsaw/pkg/constants"
)

func TestRetriesStatus(t *testing.T) {
	tests := []struct {
		name       string
		retryCodes []string
		status     int
		expected   bool
	}{
		{"5xx matches 500", []string{"5xx"}, 500, true},
		{"5xx matches 503", []string{"5xx"}, 503, true},
		{"5xx ignores 404", []string{"5xx"}, 404, false},
		{"5xx ignores 200", []string{"5xx"}, 200, false},
		{"exact code matches", []string{"429"}, 429, true},
		{"exact code ignores neighbor", []string{"429"}, 428, false},
		{"mixed", []string{"5xx", "429"}, 429, true},
		{"empty never retries", nil, 500, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := SessionConfig{RetryCodes: tt.retryCodes}
			require.Equal(t, tt.expected, config.RetriesStatus(tt.status))
		})
	}
}

func TestSessionConfigValidate(t *testing.T) {
	valid := SessionConfig{RetryCodes: []string{"5xx", "429", "503"}}
	require.NoError(t, valid.validate())

	for _, code := range []string{"xx5", "6xx", "42", "5000", "server"} {
		invalid := SessionConfig{RetryCodes: []string{code}}
		require.Error(t, invalid.validate(), "code %q should not validate", code)
	}
}

func TestSessionConfigDefaults(t *testing.T) {
	config := DefaultSessionConfig()
	require.Equal(t, []string{"5xx"}, config.RetryCodes)
	require.True(t, config.RetryOnConnErr)
	require.False(t, config.RetryOnTimeout)
	require.Equal(t, constants.DefaultRequestTimeout, config.Timeout)

	partial := SessionConfig{RetryCodes: []string{"429"}, Timeout: time.Second}.withDefaults()
	require.Equal(t, time.Second, partial.Timeout)
	require.Equal(t, constants.DefaultRetryWait, partial.RetryWait)
	require.Equal(t, constants.DefaultRetryElapsed, partial.RetryElapsed)
}
