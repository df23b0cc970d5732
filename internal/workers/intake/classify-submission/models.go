// internal/workers/intake/classify-submission/models.go
package classifysubmission

type Input struct {
	YearBuilt int `json:"yearBuilt"`

	// Received flags keyed by document id. Additional documents never gate
	// the outcome; their missing set is reported for the outcome email.
	RequiredReceived   map[string]bool `json:"requiredReceived"`
	AdditionalReceived map[string]bool `json:"additionalReceived,omitempty"`
}

type Output struct {
	Outcome           string   `json:"outcome"`
	RequiredComplete  bool     `json:"requiredComplete"`
	MissingRequired   []string `json:"missingRequired"`
	MissingAdditional []string `json:"missingAdditional"`
}
