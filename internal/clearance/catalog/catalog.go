// Package catalog holds the static underwriting reference data: appointed
// agencies, Florida counties and their region partition, construction types,
// the decline-reason catalog, the document catalog, and numeric thresholds.
package catalog

import "fmt"

// AgencyUnknown is the sentinel for submissions from non-appointed agencies.
const AgencyUnknown = "Unknown"

// Agencies lists every appointed agency plus the Unknown sentinel.
var Agencies = []string{
	"Acentria – Destin", "Acentria - Panama City", "Acentria - Port St Lucie", "Acrisure - Fletcher & Co",
	"Acrisure - Gambrell & Sturges", "Acrisure – Gulfshore", "AJG – Harden", "Alliant", "AP – IRMS",
	"AP - Lake Mary", "AP - Mack Mack & Waltz", "AP – Ranew", "Briercheck", "Brown & Brown - Daytona Beach",
	"Brown & Brown – Jacksonville", "Brown & Brown – Sarasota", "CBIZ Insurance", "Chapman Insurance",
	"Cothrom", "Darr Schackow", "Fisher Brown", "Franklin Hamilton", "Herbie Wiles",
	"Higginbotham - McMahon Hadder", "IJR - Advanced Insurance", "Marsh & McLennan – Bouchard",
	"McGriff - St Pete", "Plastridge", "RTI", "Sihle - Altamonte Springs", "Thompson Baker",
	"USI - Coral Gables", "USI – Tampa", "Wellhouse", AgencyUnknown,
}

// Counties lists every Florida county the intake desk accepts.
var Counties = []string{
	"Alachua", "Baker", "Bay", "Bradford", "Brevard", "Broward", "Calhoun", "Charlotte", "Citrus", "Clay",
	"Collier", "Columbia", "Desoto", "Dixie", "Duval", "Escambia", "Flagler", "Franklin", "Gadsden",
	"Gilchrist", "Glades", "Gulf", "Hamilton", "Hardee", "Hendry", "Hernando", "Highlands", "Hillsborough",
	"Holmes", "Indian River", "Jackson", "Jefferson", "Lafayette", "Lake", "Lee", "Leon", "Levy", "Liberty",
	"Madison", "Manatee", "Marion", "Martin", "Miami-Dade", "Monroe", "Nassau", "Okaloosa", "Okeechobee",
	"Orange", "Osceola", "Palm Beach", "Pasco", "Pinellas", "Polk", "Putnam", "Santa Rosa", "Sarasota",
	"Seminole", "St. Johns", "St. Lucie", "Sumter", "Suwannee", "Taylor", "Union", "Volusia", "Wakulla",
	"Walton", "Washington",
}

// RegionCounties partitions the county list into the eight underwriting regions.
var RegionCounties = map[string][]string{
	"Big Bend":      {"Alachua", "Bradford", "Citrus", "Columbia", "Dixie", "Gilchrist", "Hamilton", "Lafayette", "Levy", "Marion", "Suwannee", "Taylor", "Union"},
	"Northeast":     {"Baker", "Clay", "Duval", "Flagler", "Nassau", "Putnam", "St. Johns"},
	"Panhandle":     {"Bay", "Calhoun", "Escambia", "Franklin", "Gadsden", "Gulf", "Holmes", "Jackson", "Jefferson", "Leon", "Liberty", "Madison", "Okaloosa", "Santa Rosa", "Wakulla", "Walton", "Washington"},
	"Space Coast":   {"Brevard", "Indian River", "Martin", "St. Lucie", "Volusia"},
	"Tri-County":    {"Broward", "Miami-Dade", "Monroe", "Palm Beach"},
	"Southwest":     {"Charlotte", "Collier", "Desoto", "Glades", "Hendry", "Lee"},
	"Tampa/St Pete": {"Hernando", "Hillsborough", "Manatee", "Pasco", "Pinellas", "Sarasota"},
	"Central":       {"Hardee", "Highlands", "Lake", "Okeechobee", "Orange", "Osceola", "Polk", "Seminole", "Sumter"},
}

// ConstructionFrame is the frame classification, singled out because the
// frame-height rule keys on it.
const ConstructionFrame = "Frame"

// ConstructionTypes lists the accepted construction classifications.
var ConstructionTypes = []string{ConstructionFrame, "JM", "NC", "MNC", "MFR", "FR"}

// Underwriting thresholds.
const (
	MinTIV               = 5_000_000
	MaxTIV               = 100_000_000
	MaxGardenStyleTIV    = 60_000_000
	MaxFrameStories      = 5
	MaxEffectiveDateDays = 120
)

var countyRegion map[string]string

func init() {
	countyRegion = make(map[string]string, len(Counties))
	for region, counties := range RegionCounties {
		for _, county := range counties {
			countyRegion[county] = region
		}
	}
}

// RegionForCounty resolves the underwriting region for a county. An unmapped
// county is an error, never a silent default.
func RegionForCounty(county string) (string, error) {
	region, ok := countyRegion[county]
	if !ok {
		return "", fmt.Errorf("county %q is not mapped to a region", county)
	}
	return region, nil
}

// IsKnownAgency reports whether the agency appears in the catalog.
func IsKnownAgency(agency string) bool {
	for _, a := range Agencies {
		if a == agency {
			return true
		}
	}
	return false
}

// IsKnownConstructionType reports whether the construction type appears in the catalog.
func IsKnownConstructionType(ct string) bool {
	for _, t := range ConstructionTypes {
		if t == ct {
			return true
		}
	}
	return false
}

// Validate checks the catalogs for internal consistency. It is run at process
// startup so an unmapped or doubly-mapped county fails loudly instead of
// corrupting region output downstream.
func Validate() error {
	seen := make(map[string]string, len(Counties))
	for region, counties := range RegionCounties {
		for _, county := range counties {
			if prev, dup := seen[county]; dup {
				return fmt.Errorf("county %q mapped to both %q and %q", county, prev, region)
			}
			seen[county] = region
		}
	}

	for _, county := range Counties {
		if _, ok := seen[county]; !ok {
			return fmt.Errorf("county %q has no region mapping", county)
		}
	}

	if len(seen) != len(Counties) {
		return fmt.Errorf("region mapping covers %d counties, catalog lists %d", len(seen), len(Counties))
	}

	for key := range declineReasonTexts {
		if key == "" {
			return fmt.Errorf("decline reason catalog contains an empty key")
		}
	}

	return nil
}
