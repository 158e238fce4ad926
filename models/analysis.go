// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// ImageFormat is the encoding of the captured lesion image.
type ImageFormat string

const (
	ImageFormatJPEG ImageFormat = "jpeg"
	ImageFormatPNG  ImageFormat = "png"
)

// RiskLevel is the risk category produced by cloud synthesis.
type RiskLevel string

const (
	RiskLow    RiskLevel = "low"
	RiskMedium RiskLevel = "medium"
	RiskHigh   RiskLevel = "high"
)

// CloudStatus is the lifecycle state of the cloud-synthesis stage of a record.
type CloudStatus string

const (
	CloudStatusPending    CloudStatus = "pending"
	CloudStatusProcessing CloudStatus = "processing"
	CloudStatusCompleted  CloudStatus = "completed"
	CloudStatusFailed     CloudStatus = "failed"
)

// CaptureMethod tells how the image reached the application.
type CaptureMethod string

const (
	CaptureCamera  CaptureMethod = "camera"
	CaptureGallery CaptureMethod = "gallery"
)

// RetentionPolicy governs when a record becomes eligible for deletion.
type RetentionPolicy string

const (
	RetentionRetain        RetentionPolicy = "retain"
	RetentionDeleteAfter7  RetentionPolicy = "delete_after_7_days"
	RetentionDeleteAfter30 RetentionPolicy = "delete_after_30_days"
)

// Window returns the age after which a record with this policy expires.
// ok is false for policies that never expire.
func (p RetentionPolicy) Window() (window time.Duration, ok bool) {
	switch p {
	case RetentionDeleteAfter7:
		return 7 * 24 * time.Hour, true
	case RetentionDeleteAfter30:
		return 30 * 24 * time.Hour, true
	default:
		return 0, false
	}
}

// TimedRetentionPolicies lists every policy that has an expiry window.
var TimedRetentionPolicies = []RetentionPolicy{RetentionDeleteAfter7, RetentionDeleteAfter30}

// Defaults applied by the record store when the caller omits optional fields.
const (
	DefaultConfidence      = 0.85
	DefaultImageFormat     = ImageFormatJPEG
	DefaultCaptureMethod   = CaptureCamera
	DefaultRetentionPolicy = RetentionRetain
)

// AnalysisRecord is the persisted representation of one screening attempt.
//
// RiskLevel, SkinConditions, Recommendations and AIResponse are only
// meaningful once CloudAnalysisStatus is [CloudStatusCompleted]; see
// [AnalysisRecord.IsReportTrusted].
type AnalysisRecord struct {
	ID string `json:"id"`

	ImageData   string      `json:"image_data"`
	ImagePath   *string     `json:"image_path,omitempty"`
	ImageFormat ImageFormat `json:"image_format"`

	Symptoms        string   `json:"symptoms"`
	RedFlagSymptoms []string `json:"red_flag_symptoms"`

	RiskLevel       RiskLevel `json:"risk_level"`
	SkinConditions  []string  `json:"skin_conditions"`
	Recommendations []string  `json:"recommendations"`
	AIResponse      string    `json:"ai_response"`

	LocalAIResults *LocalInferenceResult `json:"local_ai_results,omitempty"`
	Confidence     *float64              `json:"confidence,omitempty"`

	CloudAnalysisStatus CloudStatus     `json:"cloud_analysis_status"`
	CaptureMethod       CaptureMethod   `json:"capture_method"`
	DataRetentionPolicy RetentionPolicy `json:"data_retention_policy"`
	IsEncrypted         bool            `json:"is_encrypted"`

	AnalysisDate          time.Time  `json:"analysis_date"`
	UpdatedAt             time.Time  `json:"updated_at"`
	ProcessingStartedAt   *time.Time `json:"processing_started_at,omitempty"`
	ProcessingCompletedAt *time.Time `json:"processing_completed_at,omitempty"`

	Notes *string `json:"notes,omitempty"`
}

// IsReportTrusted reports whether the cloud-stage outputs of the record can be
// relied on.
func (a AnalysisRecord) IsReportTrusted() bool {
	return a.CloudAnalysisStatus == CloudStatusCompleted
}

// NewAnalysis is the input of the record store create operation.
//
// Pointer fields distinguish "absent" from "empty": the store requires the
// image payload, symptoms, risk level placeholder, skin conditions,
// recommendations and AI response to be present, but does not check that
// symptoms are non-empty.
type NewAnalysis struct {
	ImageData       *string         `json:"image_data" validate:"required"`
	ImagePath       *string         `json:"image_path,omitempty"`
	ImageFormat     ImageFormat     `json:"image_format,omitempty" validate:"omitempty,oneof=jpeg png"`
	Symptoms        *string         `json:"symptoms" validate:"required"`
	RedFlagSymptoms []string        `json:"red_flag_symptoms,omitempty"`
	RiskLevel       *RiskLevel      `json:"risk_level" validate:"required,oneof=low medium high"`
	SkinConditions  []string        `json:"skin_conditions" validate:"required"`
	Recommendations []string        `json:"recommendations" validate:"required"`
	AIResponse      *string         `json:"ai_response" validate:"required"`
	Confidence      *float64        `json:"confidence,omitempty" validate:"omitempty,gte=0,lte=1"`
	CaptureMethod   CaptureMethod   `json:"capture_method,omitempty" validate:"omitempty,oneof=camera gallery"`
	RetentionPolicy RetentionPolicy `json:"data_retention_policy,omitempty" validate:"omitempty,oneof=retain delete_after_7_days delete_after_30_days"`
	IsEncrypted     bool            `json:"is_encrypted,omitempty"`
	Notes           *string         `json:"notes,omitempty"`
}

// StatusPayload carries the cloud-synthesis output for a transition to
// [CloudStatusCompleted], or an optional failure reason for
// [CloudStatusFailed].
type StatusPayload struct {
	AIResponse      *string    `json:"ai_response,omitempty"`
	SkinConditions  []string   `json:"skin_conditions,omitempty"`
	Recommendations []string   `json:"recommendations,omitempty"`
	RiskLevel       *RiskLevel `json:"risk_level,omitempty" validate:"omitempty,oneof=low medium high"`
	Reason          *string    `json:"reason,omitempty"`
}

// StatusChange is a request to move a record to a new cloud status.
type StatusChange struct {
	Status  CloudStatus    `json:"status" validate:"required,oneof=processing completed failed"`
	Payload *StatusPayload `json:"payload,omitempty"`
}

// IsComplete reports whether p carries every output a transition to
// [CloudStatusCompleted] must record. A nil payload is incomplete.
func (p *StatusPayload) IsComplete() bool {
	return p != nil &&
		p.AIResponse != nil &&
		p.SkinConditions != nil &&
		p.Recommendations != nil &&
		p.RiskLevel != nil
}
