// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

var (
	// ErrInvalidAuthorizationHeader is returned when the "Authorization"
	// header is present but does not carry a bearer token.
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")

	// ErrInvalidRequestBody is returned when a request body is not the
	// expected JSON document.
	ErrInvalidRequestBody = errors.New("invalid request body")

	// ErrRequestTooLarge is returned when a request body exceeds
	// maxContentLength.
	ErrRequestTooLarge = errors.New("request body too large")

	// ErrInvalidParameter is returned for a malformed query parameter.
	ErrInvalidParameter = errors.New("invalid query parameter")
)
