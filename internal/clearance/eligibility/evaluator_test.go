package eligibility

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"clearance-workers/internal/clearance/catalog"
	"clearance-workers/internal/clearance/submission"
)

var testToday = time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)

func cleanProperty() submission.Property {
	return submission.Property{
		AssociationName:  "Ocean View Condos",
		Agency:           "Insurance Office of America",
		County:           "Sarasota",
		Region:           "Tampa/St Pete",
		EffectiveDate:    time.Date(2025, time.July, 15, 0, 0, 0, 0, time.UTC),
		YearBuilt:        2005,
		RoofReplacement:  2020,
		Stories:          4,
		ConstructionType: "Masonry",
		TIV:              25_000_000,
	}
}

func reasonKeys(result Result) []catalog.ReasonKey {
	if len(result.Reasons) == 0 {
		return nil
	}
	keys := make([]catalog.ReasonKey, 0, len(result.Reasons))
	for _, r := range result.Reasons {
		keys = append(keys, r.Key)
	}
	return keys
}

func TestEvaluate_CleanSubmission(t *testing.T) {
	result := Evaluate(cleanProperty(), testToday)

	assert.True(t, result.Eligible())
	assert.Empty(t, result.Reasons)
	assert.False(t, result.ReferralEligible)
}

func TestEvaluate_Reasons(t *testing.T) {
	tests := []struct {
		name             string
		mutate           func(*submission.Property)
		wantKeys         []catalog.ReasonKey
		referralEligible bool
	}{
		{
			name:     "unknown agency",
			mutate:   func(p *submission.Property) { p.Agency = catalog.AgencyUnknown },
			wantKeys: []catalog.ReasonKey{catalog.ReasonAgencyNotAppointed},
		},
		{
			name: "frame over five stories",
			mutate: func(p *submission.Property) {
				p.ConstructionType = "Frame"
				p.Stories = 6
			},
			wantKeys: []catalog.ReasonKey{catalog.ReasonFrameStories},
		},
		{
			name: "frame at five stories passes",
			mutate: func(p *submission.Property) {
				p.ConstructionType = "Frame"
				p.Stories = 5
			},
			wantKeys: nil,
		},
		{
			name: "masonry over five stories passes",
			mutate: func(p *submission.Property) {
				p.Stories = 12
			},
			wantKeys: nil,
		},
		{
			name: "effective date beyond 120 days",
			mutate: func(p *submission.Property) {
				p.EffectiveDate = testToday.AddDate(0, 0, 121)
			},
			wantKeys: []catalog.ReasonKey{catalog.ReasonEffectiveDate},
		},
		{
			name: "effective date at 120 days passes",
			mutate: func(p *submission.Property) {
				p.EffectiveDate = testToday.AddDate(0, 0, 120)
			},
			wantKeys: nil,
		},
		{
			name:     "tiv below minimum",
			mutate:   func(p *submission.Property) { p.TIV = 4_999_999 },
			wantKeys: []catalog.ReasonKey{catalog.ReasonTIVBelowMinimum},
		},
		{
			name: "garden style tiv over 60M",
			mutate: func(p *submission.Property) {
				p.Stories = 2
				p.TIV = 70_000_000
			},
			wantKeys:         []catalog.ReasonKey{catalog.ReasonGardenStyleTIV},
			referralEligible: true,
		},
		{
			name: "garden band fires before the 100M cap",
			mutate: func(p *submission.Property) {
				p.Stories = 3
				p.TIV = 150_000_000
			},
			wantKeys:         []catalog.ReasonKey{catalog.ReasonGardenStyleTIV},
			referralEligible: true,
		},
		{
			name: "tiv above maximum",
			mutate: func(p *submission.Property) {
				p.TIV = 100_000_001
			},
			wantKeys:         []catalog.ReasonKey{catalog.ReasonTIVAboveMaximum},
			referralEligible: true,
		},
		{
			name: "four stories at 70M passes",
			mutate: func(p *submission.Property) {
				p.TIV = 70_000_000
			},
			wantKeys: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := cleanProperty()
			tt.mutate(&p)

			result := Evaluate(p, testToday)

			assert.Equal(t, tt.wantKeys, reasonKeys(result))
			assert.Equal(t, tt.referralEligible, result.ReferralEligible)
		})
	}
}

func TestEvaluate_AgeReasonsNeverFireAlone(t *testing.T) {
	p := cleanProperty()
	p.YearBuilt = 1970
	p.RoofReplacement = 1990

	result := Evaluate(p, testToday)
	assert.True(t, result.Eligible())
	assert.Empty(t, result.Reasons)
}

func TestEvaluate_AgeReasonsAppendInOrder(t *testing.T) {
	p := cleanProperty()
	p.Agency = catalog.AgencyUnknown
	p.YearBuilt = 1970
	p.RoofReplacement = 1990

	result := Evaluate(p, testToday)

	assert.Equal(t, []catalog.ReasonKey{
		catalog.ReasonAgencyNotAppointed,
		catalog.ReasonBuildingAge,
		catalog.ReasonRoofAge,
	}, reasonKeys(result))
}

func TestEvaluate_ReasonOrderStable(t *testing.T) {
	p := cleanProperty()
	p.Agency = catalog.AgencyUnknown
	p.ConstructionType = "Frame"
	p.Stories = 8
	p.EffectiveDate = testToday.AddDate(0, 0, 200)
	p.TIV = 1_000_000

	result := Evaluate(p, testToday)

	assert.Equal(t, []catalog.ReasonKey{
		catalog.ReasonAgencyNotAppointed,
		catalog.ReasonFrameStories,
		catalog.ReasonEffectiveDate,
		catalog.ReasonTIVBelowMinimum,
	}, reasonKeys(result))
}

func TestEvaluate_Idempotent(t *testing.T) {
	p := cleanProperty()
	p.Stories = 2
	p.TIV = 70_000_000

	first := Evaluate(p, testToday)
	second := Evaluate(p, testToday)
	assert.Equal(t, first, second)
}

func TestReferralOnly(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*submission.Property)
		want   bool
	}{
		{
			name: "garden band alone",
			mutate: func(p *submission.Property) {
				p.Stories = 2
				p.TIV = 70_000_000
			},
			want: true,
		},
		{
			name: "over max with age reasons",
			mutate: func(p *submission.Property) {
				p.TIV = 120_000_000
				p.YearBuilt = 1970
				p.RoofReplacement = 1990
			},
			want: true,
		},
		{
			name: "garden band plus unknown agency blocks referral",
			mutate: func(p *submission.Property) {
				p.Agency = catalog.AgencyUnknown
				p.Stories = 2
				p.TIV = 70_000_000
			},
			want: false,
		},
		{
			name:   "no reasons",
			mutate: func(p *submission.Property) {},
			want:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := cleanProperty()
			tt.mutate(&p)
			assert.Equal(t, tt.want, Evaluate(p, testToday).ReferralOnly())
		})
	}
}

func TestReasonsForKeys(t *testing.T) {
	reasons, err := ReasonsForKeys([]catalog.ReasonKey{
		catalog.ReasonProtectionClass,
		catalog.ReasonAgencyNotAppointed,
	})
	require.NoError(t, err)
	require.Len(t, reasons, 2)
	assert.Equal(t, catalog.ReasonProtectionClass, reasons[0].Key)
	assert.Equal(t, "Agency Not Appointed", reasons[1].Text)
}

func TestReasonsForKeys_UnknownKey(t *testing.T) {
	_, err := ReasonsForKeys([]catalog.ReasonKey{"Made Up Reason"})
	assert.Error(t, err)
}
