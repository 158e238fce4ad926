// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the admin CLI's transport to the records server.
//
// [AdminAdapter] decouples the CLI commands from the protocol. The package
// ships an HTTP/REST implementation ([NewHTTPAdminAdapter]) that attaches a
// bearer JWT to every request.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] (e.g. [ErrNotFound] for
// 404, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-derma-records/models"
)

// AdminAdapter defines the administrative operations of the records server.
// Implementations handle serialisation, the Authorization header and the
// mapping of transport errors to the sentinel values of this package.
type AdminAdapter interface {
	// SetToken stores the bearer token attached to all subsequent requests.
	SetToken(token string)

	// Token returns the bearer token currently stored, or "" if none is set.
	Token() string

	// List fetches one page of records, newest first, optionally filtered by
	// risk level.
	List(ctx context.Context, query models.ListQuery) (models.ListResult, error)

	// ListByStatus fetches up to limit records in the given cloud status.
	ListByStatus(ctx context.Context, status models.CloudStatus, limit int) ([]models.AnalysisRecord, error)

	// Stats fetches the aggregate breakdown of all stored records.
	Stats(ctx context.Context) (models.Stats, error)

	// Expiring lists the records whose retention period has elapsed.
	Expiring(ctx context.Context) ([]models.AnalysisRecord, error)

	// Purge runs one purge pass on the server and returns the number of
	// records removed.
	Purge(ctx context.Context) (int, error)

	// RequestDeletion opens a deletion request for the record.
	RequestDeletion(ctx context.Context, analysisID string) (models.DeletionRecord, error)

	// CompleteDeletion closes the newest pending deletion request.
	CompleteDeletion(ctx context.Context, analysisID string) (models.DeletionRecord, error)

	// Delete removes the record and reports whether it existed.
	Delete(ctx context.Context, analysisID string) (bool, error)
}
