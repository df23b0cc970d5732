// internal/workers/intake/evaluate-eligibility/models.go
package evaluateeligibility

import "clearance-workers/internal/clearance/catalog"

type Input struct {
	AssociationName  string  `json:"associationName"`
	Agency           string  `json:"agency"`
	County           string  `json:"county"`
	EffectiveDate    string  `json:"effectiveDate"` // MM/DD/YYYY
	YearBuilt        int     `json:"yearBuilt"`
	RoofReplacement  int     `json:"roofReplacement"`
	Stories          int     `json:"stories"`
	ConstructionType string  `json:"constructionType"`
	TIV              float64 `json:"tiv"`

	// SubmissionDate pins the evaluation date for reproducible decisions.
	// Defaults to the current date when absent.
	SubmissionDate string `json:"submissionDate,omitempty"` // YYYY-MM-DD

	// ManualReasonKeys bypasses the rule evaluation: the supplied catalog keys
	// become the decline reasons verbatim.
	ManualReasonKeys []string `json:"manualReasonKeys,omitempty"`

	// BypassReferral accepts a submission whose only reasons are the
	// referral-eligible TIV bands. Set after a manager signs off.
	BypassReferral bool `json:"bypassReferral,omitempty"`
}

type Output struct {
	Eligible         bool             `json:"eligible"`
	ReferralEligible bool             `json:"referralEligible"`
	ReferralOnly     bool             `json:"referralOnly"`
	Reasons          []catalog.Reason `json:"reasons"`
	Region           string           `json:"region"`
}
