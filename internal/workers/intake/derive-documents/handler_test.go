package derivedocuments

import (
	"context"
	"encoding/json"
	"testing"

	"clearance-workers/internal/clearance/catalog"
	"clearance-workers/internal/clearance/documents"
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
		AssociationName:            "Palm Grove HOA",
		YearBuilt:                  2005,
		RoofReplacement:            2020,
		Stories:                    2,
		HasSupplementalApplication: false,
		SubmissionDate:             "2025-06-01",
	}
}

func hasDocument(reqs []documents.Requirement, id catalog.DocumentID) bool {
	for _, r := range reqs {
		if r.ID == id {
			return true
		}
	}
	return false
}

func TestExecute_RequiredDocuments(t *testing.T) {
	handler := createTestHandler(t)

	output, err := handler.Execute(context.Background(), createValidInput())
	require.NoError(t, err)

	// Four basic documents plus loss runs 2020-2024.
	require.Len(t, output.RequiredDocuments, 9)
	assert.Equal(t, catalog.DocAcord, output.RequiredDocuments[0].ID)
	assert.Equal(t, catalog.DocSOV, output.RequiredDocuments[1].ID)
	assert.Equal(t, catalog.DocSupplementalApplication, output.RequiredDocuments[2].ID)
	assert.Equal(t, catalog.DocAppraisal, output.RequiredDocuments[3].ID)
	assert.Equal(t, catalog.LossRunDocument(2020), output.RequiredDocuments[4].ID)
	assert.Equal(t, catalog.LossRunDocument(2024), output.RequiredDocuments[8].ID)
}

func TestExecute_LossRunsStartAtYearBuilt(t *testing.T) {
	handler := createTestHandler(t)

	input := createValidInput()
	input.YearBuilt = 2023

	output, err := handler.Execute(context.Background(), input)
	require.NoError(t, err)

	require.Len(t, output.RequiredDocuments, 6)
	assert.Equal(t, catalog.LossRunDocument(2023), output.RequiredDocuments[4].ID)
	assert.Equal(t, catalog.LossRunDocument(2024), output.RequiredDocuments[5].ID)
}

func TestExecute_AdditionalDocumentRules(t *testing.T) {
	handler := createTestHandler(t)

	input := createValidInput()
	input.YearBuilt = 1975
	input.RoofReplacement = 2005
	input.Stories = 3
	input.HasSupplementalApplication = true

	output, err := handler.Execute(context.Background(), input)
	require.NoError(t, err)

	additional := output.AdditionalDocuments
	assert.True(t, hasDocument(additional, catalog.DocBuildingUpdates))
	assert.True(t, hasDocument(additional, catalog.DocRoofInspection))
	assert.True(t, hasDocument(additional, catalog.DocStructuralInspection))
	assert.True(t, hasDocument(additional, catalog.DocAdditionalLossHistory))
	assert.True(t, hasDocument(additional, catalog.DocEngineerInspection))
	assert.True(t, hasDocument(additional, catalog.DocPriorClaims))
	assert.True(t, hasDocument(additional, catalog.DocAssociationDocuments))
}

func TestExecute_CondoSkipsAssociationDocuments(t *testing.T) {
	handler := createTestHandler(t)

	input := createValidInput()
	input.AssociationName = "Seaside Condominium"

	output, err := handler.Execute(context.Background(), input)
	require.NoError(t, err)

	assert.False(t, hasDocument(output.AdditionalDocuments, catalog.DocAssociationDocuments))
}

func TestValidateInput(t *testing.T) {
	valid, err := json.Marshal(createValidInput())
	require.NoError(t, err)
	assert.NoError(t, ValidateInput(valid))

	input := createValidInput()
	input.AssociationName = ""
	raw, err := json.Marshal(input)
	require.NoError(t, err)
	assert.Error(t, ValidateInput(raw))
}
