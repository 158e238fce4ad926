// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import "github.com/google/uuid"

// IDGenerator produces unique record identifiers.
type IDGenerator interface {
	Generate() string
}

// UUIDGenerator issues version 7 UUIDs: the leading 48 bits are the Unix
// millisecond timestamp and the generator keeps a per-process sequence, so
// identifiers created in quick succession sort lexicographically in creation
// order.
type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// Generate returns a new UUIDv7 string. If the entropy source fails it falls
// back to a random (v4) UUID, which keeps uniqueness but loses ordering.
func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
