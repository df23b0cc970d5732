// internal/workers/intake/search-history/models.go
package searchhistory

type Input struct {
	AssociationName string `json:"associationName,omitempty"`
	Agency          string `json:"agency,omitempty"`
	Outcome         string `json:"outcome,omitempty"`

	Page     int `json:"page,omitempty"`     // 1-based
	PageSize int `json:"pageSize,omitempty"` // defaults from config
}

type SubmissionRecord struct {
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

type Output struct {
	Total       int                `json:"total"`
	Page        int                `json:"page"`
	PageSize    int                `json:"pageSize"`
	Submissions []SubmissionRecord `json:"submissions"`
	FromCache   bool               `json:"fromCache"`
}
