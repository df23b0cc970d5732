package acord

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const sampleText = `ACORD 125 COMMERCIAL INSURANCE APPLICATION
NAMED INSURED: Ocean View Condos Association Inc
EFFECTIVE DATE: 08/01/2025
CONSTRUCTION TYPE: Masonry
YEAR BUILT: 2005
NO. STORIES: 4
TOTAL INSURABLE VALUE: $25,000,000`

func TestExtract(t *testing.T) {
	f := Extract(sampleText)

	assert.Equal(t, "Ocean View Condos Association Inc", f.NamedInsured)
	assert.Equal(t, "08/01/2025", f.EffectiveDate)
	assert.Equal(t, "Masonry", f.ConstructionType)
	assert.Equal(t, 2005, f.YearBuilt)
	assert.Equal(t, 4, f.Stories)
	assert.Equal(t, 25_000_000.0, f.TIV)
	assert.Equal(t, 6, f.Count())
}

func TestExtract_Variants(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		check func(t *testing.T, f Fields)
	}{
		{
			name: "lowercase labels",
			text: "named insured: Palm Grove HOA\nyear built: 1998",
			check: func(t *testing.T, f Fields) {
				assert.Equal(t, "Palm Grove HOA", f.NamedInsured)
				assert.Equal(t, 1998, f.YearBuilt)
			},
		},
		{
			name: "dashed date normalized",
			text: "EFFECTIVE DATE 08-01-2025",
			check: func(t *testing.T, f Fields) {
				assert.Equal(t, "08/01/2025", f.EffectiveDate)
			},
		},
		{
			name: "number of stories spelling",
			text: "NUMBER OF STORIES: 12",
			check: func(t *testing.T, f Fields) {
				assert.Equal(t, 12, f.Stories)
			},
		},
		{
			name: "total value without insurable",
			text: "TOTAL VALUE $7,500,000",
			check: func(t *testing.T, f Fields) {
				assert.Equal(t, 7_500_000.0, f.TIV)
			},
		},
		{
			name: "insured name truncates at column gap",
			text: "NAMED INSURED: Bayfront Towers    GL CODE: 62003",
			check: func(t *testing.T, f Fields) {
				assert.Equal(t, "Bayfront Towers", f.NamedInsured)
			},
		},
		{
			name: "invalid date dropped",
			text: "EFFECTIVE DATE: 13/45/2025",
			check: func(t *testing.T, f Fields) {
				assert.Empty(t, f.EffectiveDate)
			},
		},
		{
			name: "zero stories dropped",
			text: "NO. STORIES: 0",
			check: func(t *testing.T, f Fields) {
				assert.Zero(t, f.Stories)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.check(t, Extract(tt.text))
		})
	}
}

func TestExtract_EmptyText(t *testing.T) {
	f := Extract("")
	assert.Zero(t, f.Count())
}
