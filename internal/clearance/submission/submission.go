// Package submission defines the transient value objects of a clearance pass:
// the property submission record, the received-document maps, and the outcome.
package submission

import (
	"fmt"
	"time"

	"clearance-workers/internal/clearance/catalog"
)

// Property is the immutable input record for one clearance pass.
type Property struct {
	AssociationName  string
	Agency           string
	County           string
	Region           string
	EffectiveDate    time.Time
	YearBuilt        int
	RoofReplacement  int
	Stories          int
	ConstructionType string
	TIV              float64
}

// Resolve derives the region from the county and validates the enum fields.
// Missing free-text/selection fields are caller errors surfaced before any
// rule evaluation runs.
func (p *Property) Resolve() error {
	if p.AssociationName == "" {
		return fmt.Errorf("association name is required")
	}
	if p.Agency == "" {
		return fmt.Errorf("agency is required")
	}
	if p.County == "" {
		return fmt.Errorf("county is required")
	}

	region, err := catalog.RegionForCounty(p.County)
	if err != nil {
		return err
	}
	p.Region = region
	return nil
}

// BuildingAge is the building age in whole years as of the given date.
func (p Property) BuildingAge(today time.Time) int {
	return today.Year() - p.YearBuilt
}

// RoofAge is the roof age in whole years as of the given date.
func (p Property) RoofAge(today time.Time) int {
	return today.Year() - p.RoofReplacement
}

// Documents pairs the received flags for required and additional documents,
// keyed by document id. Additional documents never gate completeness.
type Documents struct {
	Required   map[catalog.DocumentID]bool
	Additional map[catalog.DocumentID]bool
}

// Complete reports whether every required document has been received.
func (d Documents) Complete() bool {
	for _, received := range d.Required {
		if !received {
			return false
		}
	}
	return true
}

// MissingRequired returns the ids of required documents not yet received.
func (d Documents) MissingRequired() []catalog.DocumentID {
	return missing(d.Required)
}

// MissingAdditional returns the ids of additional documents not yet received.
func (d Documents) MissingAdditional() []catalog.DocumentID {
	return missing(d.Additional)
}

func missing(flags map[catalog.DocumentID]bool) []catalog.DocumentID {
	var out []catalog.DocumentID
	for id, received := range flags {
		if !received {
			out = append(out, id)
		}
	}
	return out
}
