package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-derma-records/internal/logger"
	"github.com/MKhiriev/go-derma-records/models"
)

// Structured columns (string sequences and the local inference payload) are
// stored as text: a version prefix followed by JSON. Values written before
// the prefix existed are bare JSON and are still accepted on read.
const codecV1Prefix = "v1:"

func encodeValue(v any) (string, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrEncodingValue, err)
	}

	return codecV1Prefix + string(b), nil
}

// decodeValue parses raw into dst. An empty raw value leaves dst untouched.
func decodeValue(raw string, dst any) error {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}

	payload, _ := strings.CutPrefix(raw, codecV1Prefix)

	return json.Unmarshal([]byte(payload), dst)
}

func encodeStrings(values []string) (string, error) {
	if values == nil {
		values = []string{}
	}

	return encodeValue(values)
}

// decodeStrings never fails: a malformed stored value reads as an empty
// sequence and is reported with a warning.
func decodeStrings(ctx context.Context, raw, column, analysisID string) []string {
	values := []string{}
	if err := decodeValue(raw, &values); err != nil || values == nil {
		if err != nil {
			logger.FromContext(ctx).Warn().Err(err).
				Str("func", "store.decodeStrings").
				Str("column", column).
				Str("analysis_id", analysisID).
				Msg("malformed stored value treated as empty")
		}
		return []string{}
	}

	return values
}

func encodeLocalResult(result *models.LocalInferenceResult) (sql.NullString, error) {
	if result == nil {
		return sql.NullString{}, nil
	}

	encoded, err := encodeValue(result)
	if err != nil {
		return sql.NullString{}, err
	}

	return sql.NullString{String: encoded, Valid: true}, nil
}

// decodeLocalResult returns nil for NULL, empty and malformed values.
func decodeLocalResult(ctx context.Context, raw sql.NullString, analysisID string) *models.LocalInferenceResult {
	if !raw.Valid || strings.TrimSpace(raw.String) == "" {
		return nil
	}

	var result *models.LocalInferenceResult
	if err := decodeValue(raw.String, &result); err != nil {
		logger.FromContext(ctx).Warn().Err(err).
			Str("func", "store.decodeLocalResult").
			Str("analysis_id", analysisID).
			Msg("malformed local inference result treated as absent")
		return nil
	}

	return result
}
