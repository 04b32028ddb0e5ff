// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// ErrMalformedIdentifier is returned when the {identifier} path segment is
// not a valid percent-encoded string.
var ErrMalformedIdentifier = errors.New("malformed identifier in path")
