// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Stage labels used in the processing audit log.
const (
	StageImageCapture   = "image_capture"
	StageLocalInference = "local_inference"
	StageCloudAnalysis  = "cloud_analysis"
)

// LogStatus is the outcome recorded for a pipeline stage.
type LogStatus string

const (
	LogStarted   LogStatus = "started"
	LogCompleted LogStatus = "completed"
	LogFailed    LogStatus = "failed"
)

// ProcessingLogEntry is one append-only audit row describing a stage
// transition of an analysis record. AnalysisID is a logical reference only;
// entries outlive the record they describe.
type ProcessingLogEntry struct {
	ID         string    `json:"id"`
	AnalysisID string    `json:"analysis_id"`
	Stage      string    `json:"stage"`
	Status     LogStatus `json:"status"`
	Details    *string   `json:"details,omitempty"`
	Timestamp  time.Time `json:"timestamp"`
}
