package catalog

import (
	"fmt"
	"strings"
)

// DocumentID is a stable identifier for a document requirement. Maps of
// received flags are keyed by DocumentID rather than display labels so a label
// edit cannot desynchronize the checklist from the lookup.
type DocumentID string

// Basic documents, always required.
const (
	DocAcord                   DocumentID = "acord_125_140"
	DocSOV                     DocumentID = "sov"
	DocSupplementalApplication DocumentID = "supplemental_application"
	DocAppraisal               DocumentID = "appraisal"
)

// Additional documents, conditionally required.
const (
	DocFinancials            DocumentID = "financials"
	DocReserveStudy          DocumentID = "reserve_study"
	DocBoardMeetingMinutes   DocumentID = "board_meeting_minutes"
	DocWindMitigation        DocumentID = "wind_mitigation"
	DocFloodPolicy           DocumentID = "flood_policy"
	DocTargetPremium         DocumentID = "target_premium"
	DocRenewalPremium        DocumentID = "renewal_premium"
	DocExpiringPremium       DocumentID = "expiring_premium"
	DocEngineerInspection    DocumentID = "engineer_inspection"
	DocProducer              DocumentID = "producer"
	DocSiteMap               DocumentID = "site_map"
	DocPriorClaims           DocumentID = "prior_claims_experience"
	DocAssociationDocuments  DocumentID = "association_documents"
	DocAdditionalLossHistory DocumentID = "additional_loss_history"
	DocStructuralInspection  DocumentID = "structural_inspection"
	DocBuildingUpdates       DocumentID = "building_updates"
	DocRoofInspection        DocumentID = "roof_condition_inspection"
)

const lossRunIDPrefix = "loss_runs_"

var documentLabels = map[DocumentID]string{
	DocAcord:                   "Acord 125/140",
	DocSOV:                     "SOV",
	DocSupplementalApplication: "Supplemental Application",
	DocAppraisal:               "Appraisal",

	DocFinancials:            "Financials",
	DocReserveStudy:          "Reserve Study",
	DocBoardMeetingMinutes:   "Board Meeting Minutes (3-5 years)",
	DocWindMitigation:        "Wind Mitigation",
	DocFloodPolicy:           "Flood Policy",
	DocTargetPremium:         "Target Premium",
	DocRenewalPremium:        "Renewal Premium",
	DocExpiringPremium:       "Expiring Premium",
	DocEngineerInspection:    "Engineer Inspection",
	DocProducer:              "Producer",
	DocSiteMap:               "Site Map",
	DocPriorClaims:           "Prior Claims Experience",
	DocAssociationDocuments:  "Association Documents",
	DocAdditionalLossHistory: "Additional Loss History",
	DocStructuralInspection:  "Structural Inspection",
	DocBuildingUpdates:       "Building Updates",
	DocRoofInspection:        "Roof Condition Inspection",
}

var documentDescriptions = map[DocumentID]string{
	DocEngineerInspection:    "Provide any engineering reports on defects or investigations referenced in the submission",
	DocProducer:              "Confirm the name of the client-facing producer",
	DocSiteMap:               "Labeled map identifying the location of all buildings",
	DocPriorClaims:           "Our objective is to build a book of business with clients who are inclined to file a claim with us directly before engaging third party assistance. Please supply any additional information you feel pertinent to our evaluation of the applicant's prior claim experience.",
	DocAssociationDocuments:  "Declarations and Bylaws",
	DocAdditionalLossHistory: "2017-2020 loss runs, if available",
	DocStructuralInspection:  "Most recent structural or milestone inspection",
	DocBuildingUpdates:       "Provide documentation confirming the condition, type, and history of any updates to wiring and plumbing systems",
	DocRoofInspection:        "Provide a current roof condition inspection for all roofs that are 15+ years old",
}

// BasicDocuments returns the always-required document set in catalog order.
func BasicDocuments() []DocumentID {
	return []DocumentID{DocAcord, DocSOV, DocSupplementalApplication, DocAppraisal}
}

// Label returns the display label for the document.
func (id DocumentID) Label() string {
	if label, ok := documentLabels[id]; ok {
		return label
	}
	if start, end, ok := lossRunPeriod(id); ok {
		return fmt.Sprintf("Loss Runs %d-%d", start, end)
	}
	return string(id)
}

// Description returns the explanatory clause for the document, empty when the
// label is self-explanatory.
func (id DocumentID) Description() string {
	return documentDescriptions[id]
}

// IsKnownDocument reports whether the id names a catalog document or a
// well-formed loss-run period.
func IsKnownDocument(id DocumentID) bool {
	if _, ok := documentLabels[id]; ok {
		return true
	}
	_, _, ok := lossRunPeriod(id)
	return ok
}

// LossRunDocument builds the DocumentID for the loss-run period starting at the
// given year, covering start..start+1.
func LossRunDocument(startYear int) DocumentID {
	return DocumentID(fmt.Sprintf("%s%d_%d", lossRunIDPrefix, startYear, startYear+1))
}

// IsLossRun reports whether the id names a loss-run period.
func IsLossRun(id DocumentID) bool {
	_, _, ok := lossRunPeriod(id)
	return ok
}

// LossRunPeriod extracts the start and end year of a loss-run document id.
func LossRunPeriod(id DocumentID) (start, end int, ok bool) {
	return lossRunPeriod(id)
}

func lossRunPeriod(id DocumentID) (int, int, bool) {
	raw := string(id)
	if !strings.HasPrefix(raw, lossRunIDPrefix) {
		return 0, 0, false
	}
	var start, end int
	if _, err := fmt.Sscanf(raw[len(lossRunIDPrefix):], "%d_%d", &start, &end); err != nil {
		return 0, 0, false
	}
	if end != start+1 {
		return 0, 0, false
	}
	return start, end, true
}

// documentPriority is the fixed total order used when listing outstanding
// documents in outbound emails. Unknown names sort last, stable.
var documentPriority = []string{
	"Building Updates",
	"Roof Condition Inspection",
	"Financials",
	"Reserve Study",
	"Board Meeting Minutes (3-5 years)",
	"Wind Mitigation",
	"Flood Policy",
	"Target Premium",
	"Renewal Premium",
	"Expiring Premium",
	"Association Documents",
	"Additional Loss History",
	"Producer",
	"Site Map",
	"Structural Inspection",
	"Engineer Inspection",
	"Prior Claims Experience",
}

// PriorityRank returns the sort rank of a document label in the outbound-email
// ordering. Labels outside the known order share the max rank so a stable sort
// keeps their relative order.
func PriorityRank(label string) int {
	name := label
	if idx := strings.Index(name, ":"); idx >= 0 {
		name = name[:idx]
	}
	name = strings.TrimSpace(name)
	for i, known := range documentPriority {
		if known == name {
			return i
		}
	}
	return len(documentPriority)
}
