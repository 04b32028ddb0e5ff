// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators holds the input checks applied before a request reaches
// the registry.
//
// A Validator accepts a value and an optional list of rule names; with no
// names every rule of the validator is applied. Services hold validators
// behind the interface so transports and storage stay free of input rules.
package validators

import "context"

// Validator validates an arbitrary input value, optionally restricted to the
// named rules.
type Validator interface {
	Validate(context.Context, any, ...string) error
}
