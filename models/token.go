// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// Token wraps an admin JWT.
//
// It embeds [jwt.Token] for signing and claim inspection and
// [jwt.RegisteredClaims] for standard claim access. The subject claim names
// the operator or service the token was issued to.
type Token struct {
	*jwt.Token `json:"-"`

	jwt.RegisteredClaims

	// SignedString is the compact JWS representation of the token.
	SignedString string `json:"-"`

	// Operator is a cached copy of the "sub" claim.
	Operator string `json:"-"`
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t *Token) String() string {
	return t.SignedString
}
