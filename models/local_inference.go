package models

// LocalInferenceResult is the preliminary signal produced by the on-device
// vision model before cloud synthesis.
//
// Tier1 holds the coarse class distribution (fungal, inflammatory, normal,
// malignant, benign) and Tier2 the per-disease distribution. The store does
// not interpret any of it.
type LocalInferenceResult struct {
	Tier1                map[string]float64 `json:"tier1,omitempty"`
	Tier2                map[string]float64 `json:"tier2,omitempty"`
	MalignantProbability *float64           `json:"ai_malignant_prob,omitempty"`
	Description          string             `json:"description,omitempty"`
	Model                string             `json:"model,omitempty"`
	Extra                map[string]any     `json:"extra,omitempty"`
}

// LocalInferenceUpdate is the input of the local-inference collaborator.
type LocalInferenceUpdate struct {
	Result     *LocalInferenceResult `json:"result" validate:"required"`
	Confidence float64               `json:"confidence" validate:"gte=0,lte=1"`
}
