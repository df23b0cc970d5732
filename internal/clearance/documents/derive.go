// Package documents derives the document checklist for a submission and
// provides the ordering and consolidation helpers the renderer depends on.
package documents

import (
	"strings"
	"time"

	"clearance-workers/internal/clearance/catalog"
)

// Requirement is one checklist entry: a stable id, the display label, and an
// optional explanatory clause.
type Requirement struct {
	ID          catalog.DocumentID `json:"id"`
	Label       string             `json:"label"`
	Description string             `json:"description,omitempty"`
}

func requirement(id catalog.DocumentID) Requirement {
	return Requirement{ID: id, Label: id.Label(), Description: id.Description()}
}

// BasicRequired returns the always-required document set in catalog order.
func BasicRequired() []Requirement {
	ids := catalog.BasicDocuments()
	out := make([]Requirement, 0, len(ids))
	for _, id := range ids {
		out = append(out, requirement(id))
	}
	return out
}

// lossRunFloor is the earliest loss-run period requested regardless of
// building age.
const lossRunFloor = 2020

// LossRunRequired returns one requirement per applicable loss-run period,
// ascending, from max(2020, year built) through the year before today.
func LossRunRequired(yearBuilt int, today time.Time) []Requirement {
	start := lossRunFloor
	if yearBuilt > start {
		start = yearBuilt
	}

	var out []Requirement
	for year := start; year < today.Year(); year++ {
		out = append(out, requirement(catalog.LossRunDocument(year)))
	}
	return out
}

// DeriveParams carries the property attributes that drive the additional
// document rules.
type DeriveParams struct {
	YearBuilt                  int
	RoofReplacement            int
	Stories                    int
	AssociationName            string
	HasSupplementalApplication bool
}

// Additional-document rule thresholds.
const (
	additionalLossHistoryMaxYear = 2017
	buildingUpdatesYearCutoff    = 1980
	structuralInspectionStories  = 3
	structuralInspectionMinAge   = 25
	roofInspectionMinAge         = 15
)

// DeriveAdditional computes the conditionally-required additional documents.
// All rules are additive. The returned order is derivation order; callers that
// render a list apply the priority sort separately.
func DeriveAdditional(p DeriveParams, today time.Time) []Requirement {
	out := []Requirement{
		requirement(catalog.DocFinancials),
		requirement(catalog.DocReserveStudy),
		requirement(catalog.DocBoardMeetingMinutes),
		requirement(catalog.DocWindMitigation),
		requirement(catalog.DocFloodPolicy),
		requirement(catalog.DocTargetPremium),
		requirement(catalog.DocRenewalPremium),
		requirement(catalog.DocExpiringPremium),
		requirement(catalog.DocProducer),
		requirement(catalog.DocSiteMap),
	}

	if p.HasSupplementalApplication {
		out = append(out,
			requirement(catalog.DocEngineerInspection),
			requirement(catalog.DocPriorClaims),
		)
	}

	name := strings.ToLower(p.AssociationName)
	if !strings.Contains(name, "condo") && !strings.Contains(name, "condominium") {
		out = append(out, requirement(catalog.DocAssociationDocuments))
	}

	if p.YearBuilt <= additionalLossHistoryMaxYear {
		out = append(out, requirement(catalog.DocAdditionalLossHistory))
	}

	buildingAge := today.Year() - p.YearBuilt
	if p.Stories >= structuralInspectionStories && buildingAge >= structuralInspectionMinAge {
		out = append(out, requirement(catalog.DocStructuralInspection))
	}

	if p.YearBuilt < buildingUpdatesYearCutoff {
		out = append(out, requirement(catalog.DocBuildingUpdates))
	}

	roofAge := today.Year() - p.RoofReplacement
	if roofAge >= roofInspectionMinAge {
		out = append(out, requirement(catalog.DocRoofInspection))
	}

	return out
}

// RequirementForID rebuilds a Requirement from its id, covering both catalog
// documents and loss-run periods.
func RequirementForID(id catalog.DocumentID) (Requirement, bool) {
	if !catalog.IsKnownDocument(id) {
		return Requirement{}, false
	}
	return requirement(id), true
}
