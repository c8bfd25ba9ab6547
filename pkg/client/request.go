// Copyright (C) 2022-2025, InYourArea Ltd. All rights reserved.
// See the file LICENSE for licensing terms.

package client

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
)

// RequestOption customizes a single request issued by the client.
type RequestOption func(*request)

type request struct {
	headers http.Header
	query   url.Values
	body    []byte
	err     error
}

func newRequest(opts []RequestOption) *request {
	r := &request{
		headers: make(http.Header),
		query:   make(url.Values),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// WithHeader sets a request header.
func WithHeader(key, value string) RequestOption {
	return func(r *request) {
		r.headers.Set(key, value)
	}
}

// WithQuery adds a query parameter.
func WithQuery(key, value string) RequestOption {
	return func(r *request) {
		r.query.Add(key, value)
	}
}

// WithBody sets a raw request body. The body is buffered so retried
// attempts resend it from the start.
func WithBody(contentType string, body []byte) RequestOption {
	return func(r *request) {
		r.body = body
		r.headers.Set("Content-Type", contentType)
	}
}

// WithJSONBody marshals v as the request body.
func WithJSONBody(v interface{}) RequestOption {
	return func(r *request) {
		body, err := json.Marshal(v)
		if err != nil {
			r.err = fmt.Errorf("failed to marshal request body: %w", err)
			return
		}
		r.body = body
		r.headers.Set("Content-Type", "application/json")
	}
}
