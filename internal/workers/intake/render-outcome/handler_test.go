package renderoutcome

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"clearance-workers/internal/common/errors"
	"clearance-workers/internal/common/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestHandler(t *testing.T) *Handler {
	t.Helper()
	return NewHandler(LoadConfig(), nil, logger.NewTestLogger(t))
}

func createValidInput(outcome string) *Input {
	return &Input{
		Outcome:          outcome,
		AssociationName:  "Ocean View Condos",
		Agency:           "Insurance Office of America",
		Region:           "Tampa/St Pete",
		EffectiveDate:    "08/01/2025",
		YearBuilt:        2005,
		RoofReplacement:  2020,
		Stories:          4,
		ConstructionType: "Masonry",
		TIV:              25_000_000,
		SubmissionDate:   "2025-06-01",
	}
}

func TestExecute_Declined(t *testing.T) {
	handler := createTestHandler(t)

	input := createValidInput("Declined")
	input.ReasonKeys = []string{"TIV < $5M", "Roof Age"}

	output, err := handler.Execute(context.Background(), input)
	require.NoError(t, err)

	assert.Empty(t, output.EmailSubject)
	assert.Empty(t, output.PipelineRow)
	assert.Contains(t, output.EmailBody, "does not meet our current selection criteria")
	assert.Contains(t, output.EmailBody, "TIV < $5M: TIV is less than $5,000,000")
	assert.Contains(t, output.EmailBody, "Roof Age/Updates:")
}

func TestExecute_Declined_UnknownReasonKey(t *testing.T) {
	handler := createTestHandler(t)

	input := createValidInput("Declined")
	input.ReasonKeys = []string{"Bad Key"}

	_, err := handler.Execute(context.Background(), input)
	require.Error(t, err)

	stdErr, ok := err.(*errors.StandardError)
	require.True(t, ok)
	assert.Equal(t, errors.ErrCodeUnknownReasonKey, stdErr.Code)
}

func TestExecute_Referred(t *testing.T) {
	handler := createTestHandler(t)

	output, err := handler.Execute(context.Background(), createValidInput("Referred"))
	require.NoError(t, err)

	assert.Equal(t, "Referral: 08/01/2025 Ocean View Condos", output.EmailSubject)
	assert.True(t, strings.HasPrefix(output.EmailBody, "Hi Karen,"))
	assert.Contains(t, output.EmailBody, "TIV: $25,000,000.00")
	assert.Empty(t, output.PipelineRow)
}

func TestExecute_Reserved(t *testing.T) {
	handler := createTestHandler(t)

	input := createValidInput("Reserved")
	input.MissingAdditional = []string{"target_premium", "renewal_premium", "financials"}

	output, err := handler.Execute(context.Background(), input)
	require.NoError(t, err)

	assert.Contains(t, output.EmailBody, "This account has been reserved for your agency")
	assert.Contains(t, output.EmailBody, "• Financials")
	assert.Contains(t, output.EmailBody, "• Target and Renewal Premiums")
	assert.Contains(t, output.EmailBody, "by **07/02/2025**")

	fields := strings.Split(output.PipelineRow, "\t")
	require.Len(t, fields, 15)
	assert.Equal(t, "Reserved - Pending Setup", fields[14])
}

func TestExecute_NotClearedRFI(t *testing.T) {
	handler := createTestHandler(t)

	input := createValidInput("Not Cleared - RFI")
	input.MissingRequired = []string{"appraisal", "loss_runs_2023_2024", "loss_runs_2024_2025"}
	input.MissingAdditional = []string{"financials"}

	output, err := handler.Execute(context.Background(), input)
	require.NoError(t, err)

	assert.Contains(t, output.EmailBody, "The following documents are needed to reserve the account.")
	assert.Contains(t, output.EmailBody, "• Appraisal")
	assert.Contains(t, output.EmailBody, "Valued 2023-2025 loss runs")
	assert.Contains(t, output.EmailBody, "If reserved, we will request the additional items below.")

	fields := strings.Split(output.PipelineRow, "\t")
	require.Len(t, fields, 15)
	assert.Equal(t, "Not Cleared - RFI", fields[14])
}

func TestExecute_UnknownOutcome(t *testing.T) {
	handler := createTestHandler(t)

	_, err := handler.Execute(context.Background(), createValidInput("Cleared"))
	require.Error(t, err)

	stdErr, ok := err.(*errors.StandardError)
	require.True(t, ok)
	assert.Equal(t, errors.ErrCodeUnknownOutcome, stdErr.Code)
}

func TestExecute_UnknownDocumentID(t *testing.T) {
	handler := createTestHandler(t)

	input := createValidInput("Reserved")
	input.MissingAdditional = []string{"mystery_doc"}

	_, err := handler.Execute(context.Background(), input)
	require.Error(t, err)

	stdErr, ok := err.(*errors.StandardError)
	require.True(t, ok)
	assert.Equal(t, errors.ErrCodeValidationFailed, stdErr.Code)
}

func TestValidateInput(t *testing.T) {
	valid, err := json.Marshal(createValidInput("Reserved"))
	require.NoError(t, err)
	assert.NoError(t, ValidateInput(valid))

	input := createValidInput("Reserved")
	input.EffectiveDate = "August 1, 2025"
	raw, err := json.Marshal(input)
	require.NoError(t, err)
	assert.Error(t, ValidateInput(raw))
}
