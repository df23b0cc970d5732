package classifysubmission

import (
	"context"
	"encoding/json"
	"testing"

	"clearance-workers/internal/common/errors"
	"clearance-workers/internal/common/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestHandler(t *testing.T) *Handler {
	t.Helper()
	return NewHandler(LoadConfig(), logger.NewTestLogger(t))
}

func createValidInput() *Input {
	return &Input{
		YearBuilt: 2005,
		RequiredReceived: map[string]bool{
			"acord_125_140":            true,
			"sov":                      true,
			"supplemental_application": true,
			"appraisal":                true,
			"loss_runs_2023_2024":      true,
			"loss_runs_2024_2025":      true,
		},
		AdditionalReceived: map[string]bool{
			"financials": false,
			"site_map":   true,
		},
	}
}

func TestExecute_Reserved(t *testing.T) {
	handler := createTestHandler(t)

	output, err := handler.Execute(context.Background(), createValidInput())
	require.NoError(t, err)

	assert.Equal(t, "Reserved", output.Outcome)
	assert.True(t, output.RequiredComplete)
	assert.Empty(t, output.MissingRequired)
	assert.Equal(t, []string{"financials"}, output.MissingAdditional)
}

func TestExecute_NotClearedRFI(t *testing.T) {
	handler := createTestHandler(t)

	input := createValidInput()
	input.RequiredReceived["appraisal"] = false
	input.RequiredReceived["sov"] = false

	output, err := handler.Execute(context.Background(), input)
	require.NoError(t, err)

	assert.Equal(t, "Not Cleared - RFI", output.Outcome)
	assert.False(t, output.RequiredComplete)
	assert.Equal(t, []string{"sov", "appraisal"}, output.MissingRequired)
}

func TestExecute_MissingRequiredInCatalogOrder(t *testing.T) {
	handler := createTestHandler(t)

	input := createValidInput()
	input.RequiredReceived["appraisal"] = false
	input.RequiredReceived["sov"] = false
	input.RequiredReceived["loss_runs_2023_2024"] = false

	output, err := handler.Execute(context.Background(), input)
	require.NoError(t, err)

	assert.Equal(t, []string{"sov", "appraisal", "loss_runs_2023_2024"}, output.MissingRequired)
}

func TestExecute_NotClearedOOA(t *testing.T) {
	handler := createTestHandler(t)

	input := createValidInput()
	input.YearBuilt = 1975
	input.RequiredReceived["appraisal"] = false

	output, err := handler.Execute(context.Background(), input)
	require.NoError(t, err)

	assert.Equal(t, "Not Cleared - OOA", output.Outcome)
}

func TestExecute_AdditionalNeverGatesOutcome(t *testing.T) {
	handler := createTestHandler(t)

	input := createValidInput()
	for id := range input.AdditionalReceived {
		input.AdditionalReceived[id] = false
	}

	output, err := handler.Execute(context.Background(), input)
	require.NoError(t, err)

	assert.Equal(t, "Reserved", output.Outcome)
	assert.Equal(t, []string{"financials", "site_map"}, output.MissingAdditional)
}

func TestExecute_UnknownDocumentID(t *testing.T) {
	handler := createTestHandler(t)

	input := createValidInput()
	input.RequiredReceived["mystery_doc"] = true

	_, err := handler.Execute(context.Background(), input)
	require.Error(t, err)

	stdErr, ok := err.(*errors.StandardError)
	require.True(t, ok)
	assert.Equal(t, errors.ErrCodeValidationFailed, stdErr.Code)
}

func TestExecute_MalformedLossRunID(t *testing.T) {
	handler := createTestHandler(t)

	input := createValidInput()
	input.RequiredReceived["loss_runs_2020_2025"] = true

	_, err := handler.Execute(context.Background(), input)
	assert.Error(t, err)
}

func TestValidateInput(t *testing.T) {
	valid, err := json.Marshal(createValidInput())
	require.NoError(t, err)
	assert.NoError(t, ValidateInput(valid))

	assert.Error(t, ValidateInput([]byte(`{"yearBuilt": 2005}`)))
	assert.Error(t, ValidateInput([]byte(`{"yearBuilt": 2005, "requiredReceived": {"sov": "yes"}}`)))
}
