// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys, identifier
// generation, a monotonic clock, HTTP response writing, and JWT token
// generation and validation.
package utils

import (
	"context"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// OperatorCtxKey is the key used to store the authenticated admin operator
// (the "sub" claim of the admin token) in the context.
//
// Example of writing a value to the context:
//
//	ctx := context.WithValue(ctx, utils.OperatorCtxKey, "retention-bot")
var OperatorCtxKey = contextKey("operator")

// GetOperatorFromContext retrieves the admin operator from the context.
//
// Returns the operator name and an ok flag:
//   - ok == true : value is found, is a string and is not empty
//   - ok == false: value is missing or has an unexpected type
func GetOperatorFromContext(ctx context.Context) (string, bool) {
	operator, ok := ctx.Value(OperatorCtxKey).(string)
	return operator, ok && operator != ""
}
