// internal/workers/intake/derive-documents/models.go
package derivedocuments

import "clearance-workers/internal/clearance/documents"

type Input struct {
	AssociationName            string `json:"associationName"`
	YearBuilt                  int    `json:"yearBuilt"`
	RoofReplacement            int    `json:"roofReplacement"`
	Stories                    int    `json:"stories"`
	HasSupplementalApplication bool   `json:"hasSupplementalApplication"`

	// SubmissionDate pins the derivation date for reproducible checklists.
	SubmissionDate string `json:"submissionDate,omitempty"` // YYYY-MM-DD
}

type Output struct {
	RequiredDocuments   []documents.Requirement `json:"requiredDocuments"`
	AdditionalDocuments []documents.Requirement `json:"additionalDocuments"`
}
