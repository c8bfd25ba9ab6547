// Copyright (C) 2022-2025, InYourArea Ltd. All rights reserved.
// See the file LICENSE for licensing terms.

package client

import (
	"fmt"
	"regexp"
	"time"

	"github.com/inyourarea/jigsaw/pkg/constants"
)

// retryCodePattern accepts exact status codes ("503") and class patterns ("5xx").
var retryCodePattern = regexp.MustCompile(`^([1-5]xx|[1-5]\d{2})$`)

// SessionConfig contains session configuration for Client.
// That includes the retry specification, per-request timeout etc.
type SessionConfig struct {
	// RetryCodes lists response statuses that are retried before the
	// response is handed to the caller. Entries are exact codes ("503")
	// or class patterns ("5xx").
	RetryCodes []string

	// RetryOnConnErr retries requests that failed to reach the host.
	RetryOnConnErr bool

	// RetryOnTimeout retries requests that timed out.
	RetryOnTimeout bool

	// Timeout bounds each individual request attempt.
	Timeout time.Duration

	// RetryWait is the initial backoff interval between attempts,
	// RetryMaxWait caps it, and RetryElapsed bounds the whole retry loop.
	RetryWait    time.Duration
	RetryMaxWait time.Duration
	RetryElapsed time.Duration
}

// DefaultSessionConfig returns the policy the original generic-cli shipped
// with: retry server errors and connection errors, exponential wait, give
// up after 30 seconds.
func DefaultSessionConfig() SessionConfig {
	return SessionConfig{
		RetryCodes:     []string{"5xx"},
		RetryOnConnErr: true,
		RetryOnTimeout: false,
		Timeout:        constants.DefaultRequestTimeout,
		RetryWait:      constants.DefaultRetryWait,
		RetryMaxWait:   constants.DefaultRetryMaxWait,
		RetryElapsed:   constants.DefaultRetryElapsed,
	}
}

func (c *SessionConfig) validate() error {
	for _, code := range c.RetryCodes {
		if !retryCodePattern.MatchString(code) {
			return fmt.Errorf("retry code %q is neither a status code nor a class pattern like 5xx", code)
		}
	}
	return nil
}

// withDefaults fills zero durations so a partially specified config keeps
// the default policy for the rest.
func (c SessionConfig) withDefaults() SessionConfig {
	defaults := DefaultSessionConfig()
	if c.Timeout == 0 {
		c.Timeout = defaults.Timeout
	}
	if c.RetryWait == 0 {
		c.RetryWait = defaults.RetryWait
	}
	if c.RetryMaxWait == 0 {
		c.RetryMaxWait = defaults.RetryMaxWait
	}
	if c.RetryElapsed == 0 {
		c.RetryElapsed = defaults.RetryElapsed
	}
	return c
}

// RetriesStatus reports whether a response status is configured for retry.
func (c *SessionConfig) RetriesStatus(status int) bool {
	for _, code := range c.RetryCodes {
		if len(code) == 3 && code[1] == 'x' {
			if status/100 == int(code[0]-'0') {
				return true
			}
			continue
		}
		if fmt.Sprintf("%d", status) == code {
			return true
		}
	}
	return false
}
