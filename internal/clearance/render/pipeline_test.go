package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"clearance-workers/internal/clearance/submission"
)

func TestPipelineRow(t *testing.T) {
	row := PipelineRow(testProperty(), submission.OutcomeReserved)

	fields := strings.Split(row, "\t")
	require.Len(t, fields, pipelineFieldCount)

	assert.Equal(t, "08/01/2025", fields[0])
	assert.Equal(t, "Ocean View Condos", fields[1])
	assert.Equal(t, "Insurance Office of America", fields[2])
	assert.Equal(t, "Tampa/St Pete", fields[3])
	assert.Equal(t, "4", fields[4])
	assert.Empty(t, fields[5])
	assert.Equal(t, "2005", fields[6])
	assert.Equal(t, "$25,000,000", fields[7])
	for i := 8; i <= 13; i++ {
		assert.Empty(t, fields[i], "field %d", i)
	}
	assert.Equal(t, "Reserved - Pending Setup", fields[14])
}

func TestPipelineRow_Statuses(t *testing.T) {
	tests := []struct {
		outcome submission.Outcome
		want    string
	}{
		{submission.OutcomeReserved, "Reserved - Pending Setup"},
		{submission.OutcomeNotClearedRFI, "Not Cleared - RFI"},
		{submission.OutcomeNotClearedOOA, "Not Cleared - OOA"},
	}

	for _, tt := range tests {
		row := PipelineRow(testProperty(), tt.outcome)
		fields := strings.Split(row, "\t")
		assert.Equal(t, tt.want, fields[len(fields)-1])
	}
}
