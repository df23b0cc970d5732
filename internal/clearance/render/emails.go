// Package render produces the deterministic outbound text for each clearance
// outcome: the four email templates and the tab-separated pipeline row.
package render

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"clearance-workers/internal/clearance/catalog"
	"clearance-workers/internal/clearance/documents"
	"clearance-workers/internal/clearance/submission"
)

const dateLayout = "01/02/2006"

// Declined renders the declination email. Reasons appear verbatim, one per
// line, in the order they were evaluated or supplied.
func Declined(reasons []catalog.Reason) string {
	var b strings.Builder

	b.WriteString("Hello,\n\n")
	b.WriteString("Thank you for your submission of the above referenced account. ")
	b.WriteString("Upon review, it was found that the account does not meet our current selection criteria. ")
	b.WriteString("The primary reason(s) for declination is outlined below.\n\n")

	for _, reason := range reasons {
		b.WriteString(reason.Text)
		b.WriteString("\n")
	}

	b.WriteString("\nShould you have any questions regarding the reason(s) for declination, please do not hesitate to contact us.\n\n")
	b.WriteString("We thank you for considering us as a market for your account.  \n\n")
	b.WriteString("Kindest Regards,")

	return b.String()
}

// Referred renders the manager referral email for referral-eligible TIV bands.
// Returns the subject line and body separately.
func Referred(p submission.Property, managerName string, today time.Time) (subject, body string) {
	subject = fmt.Sprintf("Referral: %s %s", p.EffectiveDate.Format(dateLayout), p.AssociationName)

	roofStatus := "Roof Original"
	if p.YearBuilt != p.RoofReplacement {
		roofStatus = fmt.Sprintf("Roof Replaced in %d", p.RoofReplacement)
	}

	body = fmt.Sprintf(`Hi %s,

We received this submission from %s and wanted to check if this is an account we should consider underwriting. Below is the submission summary:

%s %s located in the %s region.
%d story %s buildings built in %d. %s
TIV: %s
Age of buildings: %d years (%d)
Age of Roofs: %d years (%d)
Address:

Please let me know if you'd like to move forward with this account or if you prefer that I decline it.
Regards,`,
		managerName,
		p.Agency,
		p.EffectiveDate.Format(dateLayout), p.AssociationName, p.Region,
		p.Stories, p.ConstructionType, p.YearBuilt, roofStatus,
		FormatCurrencyCents(p.TIV),
		p.BuildingAge(today), p.YearBuilt,
		p.RoofAge(today), p.RoofReplacement,
	)

	return subject, body
}

// Preferred-tier note thresholds, shared by the not-cleared and reserved
// templates.
const (
	tierYearBuiltMin = 1994
	tierRoofMin      = 2010
)

func qualifiesPreferredTier(p submission.Property) bool {
	return p.YearBuilt >= tierYearBuiltMin && p.RoofReplacement >= tierRoofMin
}

// NotCleared renders the incomplete-submission email (both RFI and OOA): the
// missing basic documents in catalog order, a single consolidated loss-run
// bullet, then the missing additional documents in priority order.
func NotCleared(p submission.Property, missingRequired, missingAdditional []documents.Requirement) string {
	var b strings.Builder

	b.WriteString("Hi,\n\n")
	b.WriteString(fmt.Sprintf("Thank you for your submission of the above referenced account for %s.", p.AssociationName))

	if qualifiesPreferredTier(p) {
		b.WriteString("\n\nBased on the risk characteristics, it appears that this account may qualify ")
		b.WriteString("for our preferred commission tier. Eligibility will be confirmed during underwriting.")
	}

	var lossRunLabels []string
	var otherMissing []documents.Requirement
	for _, req := range missingRequired {
		if catalog.IsLossRun(req.ID) {
			lossRunLabels = append(lossRunLabels, req.Label)
		} else {
			otherMissing = append(otherMissing, req)
		}
	}
	sort.SliceStable(otherMissing, func(i, j int) bool {
		return basicRank(otherMissing[i].ID) < basicRank(otherMissing[j].ID)
	})

	if len(missingRequired) > 0 {
		b.WriteString("\n\nThe following documents are needed to reserve the account. ")
		b.WriteString("Please send at your earliest convenience:")
		for _, req := range otherMissing {
			b.WriteString("\n• " + req.Label)
		}
		if ranges := documents.ConsolidateLossRuns(lossRunLabels); ranges != "" {
			b.WriteString(fmt.Sprintf("\n• Loss Runs: Valued %s loss runs (outdated loss runs or SONL accepted in lieu for reservation)", ranges))
		}
	}

	if len(missingAdditional) > 0 {
		b.WriteString("\n\nIf reserved, we will request the additional items below. ")
		b.WriteString("Please note required items and advise if unavailable:")
		for _, line := range additionalDocLines(missingAdditional) {
			b.WriteString("\n• " + line)
		}
	}

	b.WriteString("\n\nWe appreciate your partnership!\n\nKindest Regards,")

	return b.String()
}

// Reserved renders the reservation email: only missing additional documents
// are listed, with a document deadline derived from the effective date.
func Reserved(p submission.Property, missingAdditional []documents.Requirement, today time.Time) string {
	var b strings.Builder

	b.WriteString("Hi,\n\n")
	b.WriteString("Thank you for your submission of the above referenced account. ")
	b.WriteString("This account has been reserved for your agency and is awaiting underwriting review.")

	if qualifiesPreferredTier(p) {
		b.WriteString("\n\nBased on the risk characteristics, it appears that this account may qualify for our preferred commission tier. ")
		b.WriteString("Eligibility for the preferred commission tier will be confirmed during the underwriting process.")
	}

	if len(missingAdditional) > 0 {
		b.WriteString("\n\nThe following additional documents are needed to proceed with the quote review process. ")
		b.WriteString("The starred items are required to quote. Please send at your earliest convenience.")
		for _, line := range additionalDocLines(missingAdditional) {
			b.WriteString("\n• " + line)
		}

		if deadline, ok := documentDeadline(p.EffectiveDate, today); ok {
			b.WriteString(fmt.Sprintf("\n\nPlease supply the items listed above by **%s** to retain your account reservation. ", deadline.Format(dateLayout)))
			b.WriteString("\n\nIf not received by the requested date, please be aware the reservation will be released. ")
		} else {
			b.WriteString("\n\nPlease supply the items listed above as soon as possible to retain your account reservation. ")
			b.WriteString("\n\nIf these items are not received promptly, please be aware the reservation will be released. ")
		}
		b.WriteString("Do not hesitate to contact us if you encounter any challenges or need additional time to obtain the requested documents.")
	}

	b.WriteString("\n\nKindest Regards,")

	return b.String()
}

// documentDeadline computes the reservation document deadline. The second
// return is false when the window is too short for a dated deadline and the
// email should ask for the documents as soon as possible.
func documentDeadline(effectiveDate, today time.Time) (time.Time, bool) {
	days := daysBetween(today, effectiveDate)
	switch {
	case days >= 30:
		return effectiveDate.AddDate(0, 0, -30), true
	case days >= 21:
		return today.AddDate(0, 0, 21), true
	case days >= 14:
		return today.AddDate(0, 0, 14), true
	case days >= 7:
		return today.AddDate(0, 0, 7), true
	default:
		return time.Time{}, false
	}
}

// additionalDocLines orders missing additional documents by the fixed priority
// and collapses the premium entries into one consolidated line placed at the
// first premium's position.
func additionalDocLines(missing []documents.Requirement) []string {
	sorted := documents.SortByPriority(missing)

	missingTarget := false
	missingRenewal := false
	missingExpiring := false
	for _, req := range sorted {
		switch req.ID {
		case catalog.DocTargetPremium:
			missingTarget = true
		case catalog.DocRenewalPremium:
			missingRenewal = true
		case catalog.DocExpiringPremium:
			missingExpiring = true
		}
	}
	premiumLine := documents.PremiumBullet(missingTarget, missingRenewal, missingExpiring)

	var lines []string
	premiumEmitted := false
	for _, req := range sorted {
		if documents.IsPremium(req.ID) {
			if !premiumEmitted && premiumLine != "" {
				lines = append(lines, premiumLine)
				premiumEmitted = true
			}
			continue
		}
		lines = append(lines, req.Label)
	}
	return lines
}

// basicRank places basic documents in catalog order; anything else sorts
// after them, stable.
func basicRank(id catalog.DocumentID) int {
	for i, basic := range catalog.BasicDocuments() {
		if id == basic {
			return i
		}
	}
	return len(catalog.BasicDocuments())
}

func daysBetween(from, to time.Time) int {
	fromDay := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)
	toDay := time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, time.UTC)
	return int(toDay.Sub(fromDay).Hours() / 24)
}
