package documents

import (
	"fmt"
	"sort"
	"strings"

	"clearance-workers/internal/clearance/catalog"
)

// SortByPriority orders requirements by the fixed outbound-email document
// order. Unknown labels keep their relative order after the known ones.
func SortByPriority(reqs []Requirement) []Requirement {
	out := make([]Requirement, len(reqs))
	copy(out, reqs)
	sort.SliceStable(out, func(i, j int) bool {
		return catalog.PriorityRank(out[i].Label) < catalog.PriorityRank(out[j].Label)
	})
	return out
}

// ConsolidateLossRuns collapses loss-run labels ("Loss Runs 2021-2022") into
// contiguous year ranges joined with " and ". Periods whose start equals the
// previous end merge into one range.
func ConsolidateLossRuns(labels []string) string {
	type period struct{ start, end int }

	var periods []period
	for _, label := range labels {
		raw := strings.TrimPrefix(label, "Loss Runs ")
		var p period
		if _, err := fmt.Sscanf(raw, "%d-%d", &p.start, &p.end); err != nil {
			continue
		}
		periods = append(periods, p)
	}
	if len(periods) == 0 {
		return ""
	}

	sort.Slice(periods, func(i, j int) bool {
		if periods[i].start != periods[j].start {
			return periods[i].start < periods[j].start
		}
		return periods[i].end < periods[j].end
	})

	var ranges []string
	current := periods[0]
	for _, p := range periods[1:] {
		if p.start == current.end {
			current.end = p.end
			continue
		}
		ranges = append(ranges, fmt.Sprintf("%d-%d", current.start, current.end))
		current = p
	}
	ranges = append(ranges, fmt.Sprintf("%d-%d", current.start, current.end))

	return strings.Join(ranges, " and ")
}

// PremiumBullet renders the consolidated bullet text for missing premium
// documents: one missing premium renders alone, two join with "and", all three
// collapse to the combined line. Empty when none are missing.
func PremiumBullet(missingTarget, missingRenewal, missingExpiring bool) string {
	var names []string
	if missingTarget {
		names = append(names, "Target")
	}
	if missingRenewal {
		names = append(names, "Renewal")
	}
	if missingExpiring {
		names = append(names, "Expiring")
	}

	switch len(names) {
	case 0:
		return ""
	case 1:
		return names[0] + " Premium"
	case 2:
		return names[0] + " and " + names[1] + " Premiums"
	default:
		return "Target, Renewal and Expiring Premiums"
	}
}

// IsPremium reports whether the id names one of the three premium documents.
func IsPremium(id catalog.DocumentID) bool {
	switch id {
	case catalog.DocTargetPremium, catalog.DocRenewalPremium, catalog.DocExpiringPremium:
		return true
	}
	return false
}
