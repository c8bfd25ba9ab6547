// Copyright (C) 2022-2025, InYourArea Ltd. All rights reserved.
// See the file LICENSE for licensing terms.

package client

import (
	"errors"
	"fmt"
)

// ErrShouldRetry signals the retry loop that an attempt must be repeated
// even though the response itself came back fine. Response checks installed
// with WithResponseCheck return it (usually wrapped) to force a retry.
var ErrShouldRetry = errors.New("should retry")

// StatusError is the terminal error when a request kept hitting a
// retryable status until the retry budget ran out.
type StatusError struct {
	Method string
	URL    string
	Code   int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s %s replied with status %d", e.Method, e.URL, e.Code)
}
