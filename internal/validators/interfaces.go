// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks service inputs before they reach the record
// store.
//
// Core concepts:
//   - Validator: generic interface to validate arbitrary values or structures.
//     Scalars (ids, status names, limits) are scoped with a field name.
//
// Struct rules are declared as `validate` tags on the models and enforced
// with go-playground/validator; rules spanning several fields are
// registered as struct-level validations.
package validators

import "context"

// Validator defines a generic validation interface for arbitrary input values.
type Validator interface {

	// Validate validates the provided input. Scalar inputs need the name of
	// the field they represent.
	Validate(context.Context, any, ...string) error
}
