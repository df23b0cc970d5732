package submission

// Outcome is the terminal result of a clearance pass. It is computed once and
// feeds exactly one render path.
type Outcome string

const (
	OutcomeDeclined      Outcome = "Declined"
	OutcomeReferred      Outcome = "Referred"
	OutcomeReserved      Outcome = "Reserved"
	OutcomeNotClearedRFI Outcome = "Not Cleared - RFI"
	OutcomeNotClearedOOA Outcome = "Not Cleared - OOA"
)

// rfiYearCutoff splits incomplete submissions: buildings at least this recent
// get a request-for-information, older ones are routed out of appetite so the
// desk is not asked to chase documents on a risk it is unlikely to want.
const rfiYearCutoff = 1980

// Classify maps document completeness and building year to the outcome.
// Additional-document completeness never affects the result.
func Classify(requiredComplete bool, yearBuilt int) Outcome {
	if requiredComplete {
		return OutcomeReserved
	}
	if yearBuilt >= rfiYearCutoff {
		return OutcomeNotClearedRFI
	}
	return OutcomeNotClearedOOA
}

// ParseOutcome validates a serialized outcome value.
func ParseOutcome(s string) (Outcome, bool) {
	switch Outcome(s) {
	case OutcomeDeclined, OutcomeReferred, OutcomeReserved, OutcomeNotClearedRFI, OutcomeNotClearedOOA:
		return Outcome(s), true
	}
	return "", false
}

// PipelineStatus is the status column value for the pipeline record row.
// Declined and referred submissions never reach the pipeline sheet, so their
// status renders empty.
func (o Outcome) PipelineStatus() string {
	switch o {
	case OutcomeReserved:
		return "Reserved - Pending Setup"
	case OutcomeNotClearedRFI:
		return "Not Cleared - RFI"
	case OutcomeNotClearedOOA:
		return "Not Cleared - OOA"
	default:
		return ""
	}
}
