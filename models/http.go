package models

// SymptomsUpdate is the body of PUT /api/analyses/{id}/symptoms.
// A nil RedFlagSymptoms leaves the stored red flags unchanged.
type SymptomsUpdate struct {
	Symptoms        string    `json:"symptoms"`
	RedFlagSymptoms *[]string `json:"red_flag_symptoms,omitempty"`
}

// NotesUpdate is the body of PUT /api/analyses/{id}/notes.
type NotesUpdate struct {
	Notes string `json:"notes"`
}

// RetentionUpdate is the body of PUT /api/analyses/{id}/retention.
type RetentionUpdate struct {
	Policy RetentionPolicy `json:"data_retention_policy"`
}

// DeleteResult reports whether a delete call removed a record.
type DeleteResult struct {
	Deleted bool `json:"deleted"`
}

// PurgeResult reports how many expired records a purge run removed.
type PurgeResult struct {
	Purged int `json:"purged"`
}
