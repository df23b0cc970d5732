// internal/workers/intake/render-outcome/models.go
package renderoutcome

type Input struct {
	Outcome string `json:"outcome"`

	AssociationName  string  `json:"associationName"`
	Agency           string  `json:"agency"`
	Region           string  `json:"region"`
	EffectiveDate    string  `json:"effectiveDate"` // MM/DD/YYYY
	YearBuilt        int     `json:"yearBuilt"`
	RoofReplacement  int     `json:"roofReplacement"`
	Stories          int     `json:"stories"`
	ConstructionType string  `json:"constructionType"`
	TIV              float64 `json:"tiv"`

	// ReasonKeys drives the declined email. Ignored for other outcomes.
	ReasonKeys []string `json:"reasonKeys,omitempty"`

	// Missing document ids drive the not-cleared and reserved emails.
	MissingRequired   []string `json:"missingRequired,omitempty"`
	MissingAdditional []string `json:"missingAdditional,omitempty"`

	// SubmissionDate pins deadline computation for reproducible output.
	SubmissionDate string `json:"submissionDate,omitempty"` // YYYY-MM-DD
}

type Output struct {
	EmailSubject string `json:"emailSubject,omitempty"`
	EmailBody    string `json:"emailBody"`
	PipelineRow  string `json:"pipelineRow,omitempty"`
}
