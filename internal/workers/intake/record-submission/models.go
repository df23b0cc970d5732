// internal/workers/intake/record-submission/models.go
package recordsubmission

import "time"

type Input struct {
	AssociationName  string  `json:"associationName"`
	Agency           string  `json:"agency"`
	County           string  `json:"county"`
	Region           string  `json:"region"`
	EffectiveDate    string  `json:"effectiveDate"` // MM/DD/YYYY
	YearBuilt        int     `json:"yearBuilt"`
	RoofReplacement  int     `json:"roofReplacement"`
	Stories          int     `json:"stories"`
	ConstructionType string  `json:"constructionType"`
	TIV              float64 `json:"tiv"`

	Outcome    string   `json:"outcome"`
	ReasonKeys []string `json:"reasonKeys,omitempty"`
}

type Output struct {
	SubmissionID string    `json:"submissionId"`
	RecordedAt   time.Time `json:"recordedAt"`
}

// historyDocument is the Elasticsearch representation of one recorded pass.
type historyDocument struct {
	SubmissionID     string   `json:"submissionId"`
	AssociationName  string   `json:"associationName"`
	Agency           string   `json:"agency"`
	County           string   `json:"county"`
	Region           string   `json:"region"`
	EffectiveDate    string   `json:"effectiveDate"`
	YearBuilt        int      `json:"yearBuilt"`
	RoofReplacement  int      `json:"roofReplacement"`
	Stories          int      `json:"stories"`
	ConstructionType string   `json:"constructionType"`
	TIV              float64  `json:"tiv"`
	Outcome          string   `json:"outcome"`
	ReasonKeys       []string `json:"reasonKeys"`
	RecordedAt       string   `json:"recordedAt"`
}
