package store

import "github.com/MKhiriev/go-derma-records/models"

// Categories of the built-in red-flag catalog.
const (
	CategoryEvolution  = "evolution"
	CategoryAppearance = "appearance"
	CategorySymptom    = "symptom"
)

// DefaultReferenceSymptoms is the catalog seeded on first start. Priority 1
// suggestions are shown first.
var DefaultReferenceSymptoms = []models.ReferenceSymptom{
	{Text: "Rapidly growing lesion", Category: CategoryEvolution, Priority: 1},
	{Text: "Changed shape or size", Category: CategoryEvolution, Priority: 1},
	{Text: "Changed color", Category: CategoryEvolution, Priority: 1},
	{Text: "New lesion after age 40", Category: CategoryEvolution, Priority: 2},
	{Text: "Irregular or blurred border", Category: CategoryAppearance, Priority: 1},
	{Text: "Several colors in one spot", Category: CategoryAppearance, Priority: 1},
	{Text: "Asymmetric shape", Category: CategoryAppearance, Priority: 2},
	{Text: "Diameter larger than 6 mm", Category: CategoryAppearance, Priority: 2},
	{Text: "Looks different from other moles", Category: CategoryAppearance, Priority: 2},
	{Text: "Bleeding without injury", Category: CategorySymptom, Priority: 1},
	{Text: "Sore that does not heal", Category: CategorySymptom, Priority: 1},
	{Text: "Oozing or crusting", Category: CategorySymptom, Priority: 2},
	{Text: "Persistent itching", Category: CategorySymptom, Priority: 2},
	{Text: "Pain or tenderness", Category: CategorySymptom, Priority: 2},
	{Text: "Spreading redness around the spot", Category: CategorySymptom, Priority: 3},
}
