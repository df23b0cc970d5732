// Package eligibility implements the underwriting decision rules that map a
// property submission to an ordered list of decline reasons.
package eligibility

import (
	"time"

	"clearance-workers/internal/clearance/catalog"
	"clearance-workers/internal/clearance/submission"
)

// Result is the outcome of one evaluation pass. Reasons preserve evaluation
// order because the declined email reproduces them verbatim.
type Result struct {
	Reasons []catalog.Reason
	// ReferralEligible marks submissions whose TIV band allows a manager
	// referral instead of an outright decline.
	ReferralEligible bool
}

// Eligible reports whether the submission proceeds to document collection.
func (r Result) Eligible() bool {
	return len(r.Reasons) == 0
}

// ReferralOnly reports whether every fired reason belongs to the
// referral-eligible TIV bands (age reasons ride along and do not block a
// referral on their own).
func (r Result) ReferralOnly() bool {
	if !r.ReferralEligible || len(r.Reasons) == 0 {
		return false
	}
	for _, reason := range r.Reasons {
		switch reason.Key {
		case catalog.ReasonGardenStyleTIV, catalog.ReasonTIVAboveMaximum,
			catalog.ReasonBuildingAge, catalog.ReasonRoofAge:
		default:
			return false
		}
	}
	return true
}

// Evaluate runs the decision rules against a submission. Deterministic and
// side-effect free; today is passed in so results are reproducible.
//
// Check order is fixed: agency, frame height, stale effective date, then the
// mutually exclusive TIV band chain. Age reasons are appended last and only
// when another reason already fired, building before roof.
func Evaluate(p submission.Property, today time.Time) Result {
	var reasons []catalog.Reason

	if p.Agency == catalog.AgencyUnknown {
		reasons = append(reasons, catalog.MustReason(catalog.ReasonAgencyNotAppointed))
	}

	if p.ConstructionType == catalog.ConstructionFrame && p.Stories > catalog.MaxFrameStories {
		reasons = append(reasons, catalog.MustReason(catalog.ReasonFrameStories))
	}

	if daysBetween(today, p.EffectiveDate) > catalog.MaxEffectiveDateDays {
		reasons = append(reasons, catalog.MustReason(catalog.ReasonEffectiveDate))
	}

	// TIV banding: first match wins, never stacked.
	referralEligible := false
	switch {
	case p.TIV < catalog.MinTIV:
		reasons = append(reasons, catalog.MustReason(catalog.ReasonTIVBelowMinimum))
	case p.Stories <= 3 && p.TIV > catalog.MaxGardenStyleTIV:
		reasons = append(reasons, catalog.MustReason(catalog.ReasonGardenStyleTIV))
		referralEligible = true
	case p.TIV > catalog.MaxTIV:
		reasons = append(reasons, catalog.MustReason(catalog.ReasonTIVAboveMaximum))
		referralEligible = true
	}

	// Age reasons are supplemental: they never decline a submission alone.
	if len(reasons) > 0 {
		if p.BuildingAge(today) > 30 {
			reasons = append(reasons, catalog.MustReason(catalog.ReasonBuildingAge))
		}
		if p.RoofAge(today) > 15 {
			reasons = append(reasons, catalog.MustReason(catalog.ReasonRoofAge))
		}
	}

	return Result{Reasons: reasons, ReferralEligible: referralEligible}
}

// ReasonsForKeys resolves a manual override: the caller supplies explicit
// catalog keys and the evaluator performs no computation. Order is preserved.
func ReasonsForKeys(keys []catalog.ReasonKey) ([]catalog.Reason, error) {
	reasons := make([]catalog.Reason, 0, len(keys))
	for _, key := range keys {
		reason, err := catalog.ReasonForKey(key)
		if err != nil {
			return nil, err
		}
		reasons = append(reasons, reason)
	}
	return reasons, nil
}

func daysBetween(from, to time.Time) int {
	fromDay := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)
	toDay := time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, time.UTC)
	return int(toDay.Sub(fromDay).Hours() / 24)
}
