package models

// Defaults for user-added red-flag suggestions.
const (
	CustomSymptomCategory = "custom"
	CustomSymptomPriority = 3
)

// ReferenceSymptom is a suggested red-flag symptom label shown to the user.
type ReferenceSymptom struct {
	ID       string `json:"id"`
	Text     string `json:"text" validate:"required"`
	Category string `json:"category"`
	Priority int    `json:"priority" validate:"gte=0"`
}

// CustomSymptom is the input of the add-custom operation. Empty Category and
// nil Priority fall back to [CustomSymptomCategory] and [CustomSymptomPriority].
type CustomSymptom struct {
	Text     string `json:"text" validate:"required"`
	Category string `json:"category,omitempty"`
	Priority *int   `json:"priority,omitempty" validate:"omitempty,gte=0"`
}
