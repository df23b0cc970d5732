package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	assert.NoError(t, Validate())
}

func TestRegionForCounty(t *testing.T) {
	tests := []struct {
		county string
		region string
	}{
		{"Sarasota", "Tampa/St Pete"},
		{"Miami-Dade", "Tri-County"},
		{"Duval", "Northeast"},
		{"Leon", "Panhandle"},
		{"Brevard", "Space Coast"},
		{"Lee", "Southwest"},
		{"Orange", "Central"},
		{"Alachua", "Big Bend"},
	}

	for _, tt := range tests {
		t.Run(tt.county, func(t *testing.T) {
			region, err := RegionForCounty(tt.county)
			require.NoError(t, err)
			assert.Equal(t, tt.region, region)
		})
	}
}

func TestRegionForCounty_Unmapped(t *testing.T) {
	_, err := RegionForCounty("Atlantis")
	assert.Error(t, err)
}

func TestEveryCountyHasExactlyOneRegion(t *testing.T) {
	seen := make(map[string]int)
	for _, counties := range RegionCounties {
		for _, county := range counties {
			seen[county]++
		}
	}

	for _, county := range Counties {
		assert.Equal(t, 1, seen[county], "county %s", county)
	}
	assert.Len(t, seen, len(Counties))
}

func TestConstructionFrameIsKnown(t *testing.T) {
	assert.Contains(t, ConstructionTypes, ConstructionFrame)
	assert.True(t, IsKnownConstructionType(ConstructionFrame))
}

func TestReasonForKey(t *testing.T) {
	reason, err := ReasonForKey(ReasonAgencyNotAppointed)
	require.NoError(t, err)
	assert.Equal(t, "Agency Not Appointed", reason.Text)

	reason, err = ReasonForKey(ReasonGardenStyleTIV)
	require.NoError(t, err)
	assert.Contains(t, reason.Text, "garden style risks (1-3 stories)")

	_, err = ReasonForKey("Not A Reason")
	assert.Error(t, err)
}

func TestManualReasonKeysAllResolve(t *testing.T) {
	for _, key := range ManualReasonKeys() {
		_, err := ReasonForKey(key)
		assert.NoError(t, err, "key %s", key)
	}
}

func TestDocumentLabels(t *testing.T) {
	assert.Equal(t, "Acord 125/140", DocAcord.Label())
	assert.Equal(t, "Board Meeting Minutes (3-5 years)", DocBoardMeetingMinutes.Label())
	assert.Equal(t, "Loss Runs 2021-2022", LossRunDocument(2021).Label())
	assert.Equal(t, "Confirm the name of the client-facing producer", DocProducer.Description())
	assert.Empty(t, DocFinancials.Description())
}

func TestLossRunPeriod(t *testing.T) {
	start, end, ok := LossRunPeriod(LossRunDocument(2022))
	require.True(t, ok)
	assert.Equal(t, 2022, start)
	assert.Equal(t, 2023, end)

	_, _, ok = LossRunPeriod(DocAppraisal)
	assert.False(t, ok)

	_, _, ok = LossRunPeriod(DocumentID("loss_runs_2020_2025"))
	assert.False(t, ok)
}

func TestPriorityRank(t *testing.T) {
	assert.Equal(t, 0, PriorityRank("Building Updates"))
	assert.Equal(t, 1, PriorityRank("Roof Condition Inspection"))
	assert.Less(t, PriorityRank("Financials"), PriorityRank("Site Map"))

	// Descriptions after a colon do not affect the rank.
	assert.Equal(t, PriorityRank("Producer"), PriorityRank("Producer: Confirm the name of the client-facing producer"))

	// Unknown labels share the max rank.
	assert.Equal(t, len(documentPriority), PriorityRank("Mystery Document"))
}
