// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Bounds of [ListQuery]. They keep Offset well inside int range.
const (
	MaxListPage  = 1_000_000
	MaxListLimit = 1000
)

// ListQuery selects one page of analysis records, newest first.
type ListQuery struct {
	Page      int        `json:"page" validate:"gte=1,lte=1000000"`
	Limit     int        `json:"limit" validate:"gte=1,lte=1000"`
	RiskLevel *RiskLevel `json:"risk_level,omitempty" validate:"omitempty,oneof=low medium high"`
}

// Offset returns the number of rows skipped before the page starts.
func (q ListQuery) Offset() int {
	return (q.Page - 1) * q.Limit
}

// ListResult is one page of records plus the number of records matching the
// filter before pagination.
type ListResult struct {
	Records []AnalysisRecord `json:"records"`
	Total   int              `json:"total"`
	Page    int              `json:"page"`
	Limit   int              `json:"limit"`
}

// Stats is an aggregate breakdown of all stored records. Categories without
// any record are absent from the maps.
type Stats struct {
	Total           int                   `json:"total"`
	ByRiskLevel     map[RiskLevel]int     `json:"by_risk_level"`
	ByCloudStatus   map[CloudStatus]int   `json:"by_cloud_status"`
	ByCaptureMethod map[CaptureMethod]int `json:"by_capture_method"`
}
