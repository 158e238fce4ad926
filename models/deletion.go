package models

import "time"

// DeletionStatus is the state of a deletion request.
type DeletionStatus string

const (
	DeletionPending   DeletionStatus = "pending"
	DeletionCompleted DeletionStatus = "completed"
)

// DeletionRecord is one entry of the deletion-request ledger. A record may
// accumulate several requests when earlier ones never completed.
type DeletionRecord struct {
	ID          string         `json:"id"`
	AnalysisID  string         `json:"analysis_id"`
	RequestedAt time.Time      `json:"requested_at"`
	CompletedAt *time.Time     `json:"completed_at,omitempty"`
	Status      DeletionStatus `json:"status"`
}
