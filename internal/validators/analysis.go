package validators

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/MKhiriev/go-derma-records/models"
)

// Field names of scalar inputs.
const (
	// FieldAnalysisID targets an analysis record identifier taken from a path.
	FieldAnalysisID = "analysis_id"

	// FieldCloudStatus targets a cloud analysis status name.
	FieldCloudStatus = "cloud_status"

	// FieldRetentionPolicy targets a retention policy name.
	FieldRetentionPolicy = "data_retention_policy"

	// FieldLimit targets a result size limit.
	FieldLimit = "limit"
)

const (
	analysisIDRule      = "required,max=64"
	cloudStatusRule     = "required,oneof=pending processing completed failed"
	retentionPolicyRule = "required,oneof=retain delete_after_7_days delete_after_30_days"
	limitRule           = "gte=1,lte=1000"

	// completeTag is reported by the StatusChange struct-level rule.
	completeTag = "complete"
)

// AnalysisValidator validates the inputs of the record store services.
type AnalysisValidator struct {
	validate *validator.Validate
}

// NewAnalysisValidator returns a validator with the domain rules
// registered. Error messages use the JSON names of fields.
func NewAnalysisValidator() Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	v.RegisterStructValidation(statusChangeRule, models.StatusChange{})

	return &AnalysisValidator{validate: v}
}

// Validate dispatches on the dynamic type of obj.
//
// Supported structs (value or pointer): NewAnalysis, StatusChange,
// ListQuery, LocalInferenceUpdate, CustomSymptom. Strings and ints are
// validated as the scalar named by the first field argument.
func (v *AnalysisValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.NewAnalysis, *models.NewAnalysis,
		models.StatusChange, *models.StatusChange,
		models.ListQuery, *models.ListQuery,
		models.LocalInferenceUpdate, *models.LocalInferenceUpdate,
		models.CustomSymptom, *models.CustomSymptom:
		return v.validateStruct(ctx, value)

	case string:
		return v.validateString(ctx, value, fields...)
	case models.CloudStatus:
		return v.validateString(ctx, string(value), FieldCloudStatus)
	case models.RetentionPolicy:
		return v.validateString(ctx, string(value), FieldRetentionPolicy)

	case int:
		if len(fields) == 0 || fields[0] != FieldLimit {
			return ErrUnknownField
		}
		if err := v.validate.VarCtx(ctx, value, limitRule); err != nil {
			return ErrInvalidLimit
		}
		return nil

	default:
		return ErrUnsupportedType
	}
}

func (v *AnalysisValidator) validateStruct(ctx context.Context, obj any) error {
	err := v.validate.StructCtx(ctx, obj)
	if err == nil {
		return nil
	}

	var invalid *validator.InvalidValidationError
	if errors.As(err, &invalid) {
		return ErrUnsupportedType
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	problems := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		if fe.Tag() == completeTag {
			return ErrIncompletePayload
		}
		problems = append(problems, describe(fe))
	}

	return fmt.Errorf("%w: %s", ErrInvalidField, strings.Join(problems, "; "))
}

func (v *AnalysisValidator) validateString(ctx context.Context, value string, fields ...string) error {
	if len(fields) == 0 {
		return ErrUnknownField
	}

	switch fields[0] {
	case FieldAnalysisID:
		if err := v.validate.VarCtx(ctx, value, analysisIDRule); err != nil {
			return fmt.Errorf("%w: %q", ErrInvalidAnalysisID, value)
		}
	case FieldCloudStatus:
		if err := v.validate.VarCtx(ctx, value, cloudStatusRule); err != nil {
			return fmt.Errorf("%w: %q", ErrInvalidCloudStatus, value)
		}
	case FieldRetentionPolicy:
		if err := v.validate.VarCtx(ctx, value, retentionPolicyRule); err != nil {
			return fmt.Errorf("%w: %s: %q", ErrInvalidField, FieldRetentionPolicy, value)
		}
	default:
		return ErrUnknownField
	}

	return nil
}

// statusChangeRule requires the full synthesis output for a transition to
// completed.
func statusChangeRule(sl validator.StructLevel) {
	change, ok := sl.Current().Interface().(models.StatusChange)
	if !ok {
		return
	}
	if change.Status == models.CloudStatusCompleted && !change.Payload.IsComplete() {
		sl.ReportError(change.Payload, "payload", "Payload", completeTag, "")
	}
}

func describe(fe validator.FieldError) string {
	if fe.Param() != "" {
		return fmt.Sprintf("%s must satisfy %s=%s", fe.Field(), fe.Tag(), fe.Param())
	}
	return fmt.Sprintf("%s is %s", fe.Field(), fe.Tag())
}
