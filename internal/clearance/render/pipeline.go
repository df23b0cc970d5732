package render

import (
	"strconv"
	"strings"

	"clearance-workers/internal/clearance/submission"
)

// pipelineFieldCount is the fixed column count of the pipeline sheet:
// Effective Date, Insured, Agent, Region, #Stories, Type, Year Built, TIV,
// Premium, Rate, Pr(Bind), Carrier, Underwriter, Need By, Status.
const pipelineFieldCount = 15

// PipelineRow renders the tab-separated record pasted into the pipeline
// sheet. Columns the intake desk does not fill stay blank.
func PipelineRow(p submission.Property, outcome submission.Outcome) string {
	fields := make([]string, 0, pipelineFieldCount)
	fields = append(fields,
		p.EffectiveDate.Format(dateLayout),
		p.AssociationName,
		p.Agency,
		p.Region,
		strconv.Itoa(p.Stories),
		"", // Type
		strconv.Itoa(p.YearBuilt),
		FormatCurrency(p.TIV),
		"", // Premium
		"", // Rate
		"", // Pr(Bind)
		"", // Carrier
		"", // Underwriter
		"", // Need By
		outcome.PipelineStatus(),
	)
	return strings.Join(fields, "\t")
}
