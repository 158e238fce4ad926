package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidField       = errors.New("invalid field")
	ErrInvalidAnalysisID  = errors.New("invalid analysis ID")
	ErrIncompletePayload  = errors.New("completed status requires ai_response, skin_conditions, recommendations and risk_level")
	ErrInvalidCloudStatus = errors.New("invalid cloud status")
	ErrInvalidLimit       = errors.New("limit must be between 1 and 1000")
)
