// Package acord scrapes labeled fields from ACORD application text to pre-fill
// the submission form. Extraction is best effort: any field that cannot be
// matched or parsed is simply absent, never an error.
package acord

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Fields is the partial attribute map recovered from a document. Zero values
// mean the field was not found; callers must treat every field as optional.
type Fields struct {
	NamedInsured     string  `json:"namedInsured,omitempty"`
	EffectiveDate    string  `json:"effectiveDate,omitempty"` // MM/DD/YYYY
	ConstructionType string  `json:"constructionType,omitempty"`
	YearBuilt        int     `json:"yearBuilt,omitempty"`
	Stories          int     `json:"stories,omitempty"`
	TIV              float64 `json:"tiv,omitempty"`
}

// Count returns how many fields were extracted.
func (f Fields) Count() int {
	n := 0
	if f.NamedInsured != "" {
		n++
	}
	if f.EffectiveDate != "" {
		n++
	}
	if f.ConstructionType != "" {
		n++
	}
	if f.YearBuilt != 0 {
		n++
	}
	if f.Stories != 0 {
		n++
	}
	if f.TIV != 0 {
		n++
	}
	return n
}

var (
	namedInsuredRe  = regexp.MustCompile(`(?i)NAMED INSURED\s*:?\s*(.+)`)
	effectiveDateRe = regexp.MustCompile(`(?i)EFFECTIVE DATE\s*:?\s*(\d{2}[-/]\d{2}[-/]\d{4})`)
	constructionRe  = regexp.MustCompile(`(?i)CONSTRUCTION(?:\s+TYPE)?\s*[:;]?\s*(\w+)`)
	yearBuiltRe     = regexp.MustCompile(`(?i)YEAR\s+BUILT\s*[:;]?\s*(\d{4})`)
	storiesRe       = regexp.MustCompile(`(?i)(?:NO\.|NUMBER\s+OF)\s+STORIES\s*[:;]?\s*(\d+)`)
	tivRe           = regexp.MustCompile(`(?i)TOTAL\s+(?:INSURABLE\s+)?VALUE\s*[:;]?\s*\$?\s*([\d,]+)`)
)

// Extract scans document text for the known field labels.
func Extract(text string) Fields {
	var f Fields

	if m := namedInsuredRe.FindStringSubmatch(text); m != nil {
		name := strings.TrimSpace(m[1])
		// The form's label row can run into the next column; keep the first run.
		if idx := strings.Index(name, "  "); idx >= 0 {
			name = strings.TrimSpace(name[:idx])
		}
		f.NamedInsured = name
	}

	if m := effectiveDateRe.FindStringSubmatch(text); m != nil {
		raw := strings.ReplaceAll(m[1], "-", "/")
		if t, err := time.Parse("01/02/2006", raw); err == nil {
			f.EffectiveDate = t.Format("01/02/2006")
		}
	}

	if m := constructionRe.FindStringSubmatch(text); m != nil {
		f.ConstructionType = strings.TrimSpace(m[1])
	}

	if m := yearBuiltRe.FindStringSubmatch(text); m != nil {
		if year, err := strconv.Atoi(m[1]); err == nil {
			f.YearBuilt = year
		}
	}

	if m := storiesRe.FindStringSubmatch(text); m != nil {
		if stories, err := strconv.Atoi(m[1]); err == nil && stories > 0 {
			f.Stories = stories
		}
	}

	if m := tivRe.FindStringSubmatch(text); m != nil {
		raw := strings.ReplaceAll(m[1], ",", "")
		if tiv, err := strconv.ParseFloat(raw, 64); err == nil {
			f.TIV = tiv
		}
	}

	return f
}
