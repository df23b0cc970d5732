package catalog

import "fmt"

// ReasonKey identifies a decline reason in the catalog.
type ReasonKey string

// Reason pairs a catalog key with its canonical rendered sentence. Auto-derived
// and manually selected reasons share the same catalog, so the same key always
// renders the same text.
type Reason struct {
	Key  ReasonKey `json:"key"`
	Text string    `json:"text"`
}

// Keys produced by the eligibility evaluator.
const (
	ReasonAgencyNotAppointed ReasonKey = "Agency Not Appointed"
	ReasonFrameStories       ReasonKey = "Frame > 5 Stories"
	ReasonEffectiveDate      ReasonKey = "Effective Date"
	ReasonTIVBelowMinimum    ReasonKey = "TIV < $5M"
	ReasonGardenStyleTIV     ReasonKey = "Garden Style TIV > $60M"
	ReasonTIVAboveMaximum    ReasonKey = "TIV > $100M"
	ReasonBuildingAge        ReasonKey = "Building Age"
	ReasonRoofAge            ReasonKey = "Roof Age"
)

// Keys only reachable through manual selection.
const (
	ReasonRegionalCapacity    ReasonKey = "Regional Capacity"
	ReasonBuildingValuation   ReasonKey = "Building Valuation"
	ReasonNoOpeningProtection ReasonKey = "No Opening Protection"
	ReasonFloodInsurance      ReasonKey = "Flood Insurance"
	ReasonLossHistory         ReasonKey = "Loss History"
	ReasonOpenClaim           ReasonKey = "Open Claim"
	ReasonNoPriorInsurance    ReasonKey = "No Prior Insurance"
	ReasonMidtermSubmission   ReasonKey = "Midterm Submission"
	ReasonProtectionClass     ReasonKey = "PC 9 or 10"
	ReasonExistingDamage      ReasonKey = "Existing Damage"
	ReasonLimitedAccess       ReasonKey = "Limited Access"
	ReasonOccupancy           ReasonKey = "Occupancy"
	ReasonAdditionalFactors   ReasonKey = "Additional Declination Reasons"
)

var declineReasonTexts = map[ReasonKey]string{
	ReasonAgencyNotAppointed: "Agency Not Appointed",
	ReasonFrameStories:       "Frame > 5 stories: The subject property includes predominantly frame building(s) > 5 stories.",
	ReasonEffectiveDate:      "Effective Date: Requested effective date is > 120 days past the submission date; account cannot be reserved at this time.",
	ReasonTIVBelowMinimum:    "TIV < $5M: TIV is less than $5,000,000",
	ReasonGardenStyleTIV:     "Garden Style TIV > $60M: Per premises TIV exceeds $60M. We are generally looking for $5M-$60M TIVs for garden style risks (1-3 stories).",
	ReasonTIVAboveMaximum:    "TIV > $100M: Per premises TIV exceeds $100M",
	ReasonBuildingAge:        "Building Age/Updates: Building age(s) exceeds 30 years and there is insufficient documentation confirming adequate building updates.",
	ReasonRoofAge:            "Roof Age/Updates: Roof age(s) exceeds 15 years and there is insufficient documentation confirming adequate roof condition.",

	ReasonRegionalCapacity:    "Regional Capacity: The account is not being pursued due to current regional capacity limitations.",
	ReasonBuildingValuation:   "Building Valuation: Building valuation is < $120/sf and/or is not aligned with the standard valuation range for like kind and quality construction.",
	ReasonNoOpeningProtection: "No Opening Protection on Coast: The property lacks opening protection and is located on the coast.",
	ReasonFloodInsurance:      "Flood Insurance: The subject property is within 3 miles of the coast and no documentation was received confirming flood insurance is in place.",
	ReasonLossHistory:         "Loss History: The applicant's loss history does not align with program guidelines.",
	ReasonOpenClaim:           "Open Claim: There is a current open claim that does not align with program guidelines.",
	ReasonNoPriorInsurance:    "No prior insurance: Risks with no prior insurance do not meet program eligibility guidelines.",
	ReasonMidtermSubmission:   "Midterm Submission: Midterm submissions do not meet program eligibility guidelines.",
	ReasonProtectionClass:     "PC 9 or 10: The subject property is in a protection class 9 or 10 region.",
	ReasonExistingDamage:      "Existing Damage: There is existing unrepaired damage that does not align with program guidelines.",
	ReasonLimitedAccess:       "Limited means of ingress/egress: Communities in areas with less than 2 means of ingress/egress do not align with underwriting appetite.",
	ReasonOccupancy:           "Occupancy: Properties with less than 50% residential occupancy do not meet program eligibility guidelines.",
	ReasonAdditionalFactors:   "Additional Declination Reasons: Please be aware there may be additional factors influencing the reason for decline that were not identified in the initial review.  Resubmission of this account with additional information addressing the above referenced items may not necessarily result in the account being reopened and reserved.",
}

// ReasonForKey resolves a catalog key to its full Reason.
func ReasonForKey(key ReasonKey) (Reason, error) {
	text, ok := declineReasonTexts[key]
	if !ok {
		return Reason{}, fmt.Errorf("decline reason key %q is not in the catalog", key)
	}
	return Reason{Key: key, Text: text}, nil
}

// MustReason resolves an evaluator-produced key. Evaluator keys are compile-time
// constants, so a miss is a programming error.
func MustReason(key ReasonKey) Reason {
	r, err := ReasonForKey(key)
	if err != nil {
		panic(err)
	}
	return r
}

// ManualReasonKeys returns every key available for manual selection, in a
// stable display order.
func ManualReasonKeys() []ReasonKey {
	return []ReasonKey{
		ReasonRegionalCapacity,
		ReasonBuildingAge,
		ReasonRoofAge,
		ReasonBuildingValuation,
		ReasonNoOpeningProtection,
		ReasonFloodInsurance,
		ReasonLossHistory,
		ReasonOpenClaim,
		ReasonNoPriorInsurance,
		ReasonMidtermSubmission,
		ReasonProtectionClass,
		ReasonExistingDamage,
		ReasonLimitedAccess,
		ReasonOccupancy,
		ReasonAdditionalFactors,
	}
}
