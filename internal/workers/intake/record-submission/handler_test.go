package recordsubmission

import (
	"context"
	"encoding/json"
	"testing"

	"clearance-workers/internal/common/database"
	"clearance-workers/internal/common/errors"
	"clearance-workers/internal/common/logger"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeIndexer struct {
	lastID  string
	lastDoc []byte
	err     error
}

func (f *fakeIndexer) IndexSubmission(_ context.Context, id string, doc []byte) error {
	if f.err != nil {
		return f.err
	}
	f.lastID = id
	f.lastDoc = doc
	return nil
}

func createTestHandler(t *testing.T, indexer Indexer) (*Handler, sqlmock.Sqlmock, *miniredis.Miniredis) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	mr := miniredis.RunT(t)
	cache := &database.RedisClient{Client: redis.NewClient(&redis.Options{Addr: mr.Addr()})}

	handler := NewHandler(LoadConfig(), ServiceDependencies{
		DB:      db,
		Indexer: indexer,
		Cache:   cache,
	}, logger.NewTestLogger(t))

	return handler, mock, mr
}

func createValidInput() *Input {
	return &Input{
		AssociationName:  "Ocean View Condos",
		Agency:           "Insurance Office of America",
		County:           "Sarasota",
		Region:           "Tampa/St Pete",
		EffectiveDate:    "08/01/2025",
		YearBuilt:        2005,
		RoofReplacement:  2020,
		Stories:          4,
		ConstructionType: "Masonry",
		TIV:              25_000_000,
		Outcome:          "Reserved",
	}
}

func TestExecute_RecordsSubmission(t *testing.T) {
	indexer := &fakeIndexer{}
	handler, mock, mr := createTestHandler(t, indexer)

	require.NoError(t, mr.Set("submission-history:recent", "stale"))
	mock.ExpectExec("INSERT INTO submission_history").WillReturnResult(sqlmock.NewResult(1, 1))

	output, err := handler.Execute(context.Background(), createValidInput())
	require.NoError(t, err)

	assert.NotEmpty(t, output.SubmissionID)
	assert.False(t, output.RecordedAt.IsZero())
	assert.NoError(t, mock.ExpectationsWereMet())

	// The search index received the same document id.
	assert.Equal(t, output.SubmissionID, indexer.lastID)

	var doc historyDocument
	require.NoError(t, json.Unmarshal(indexer.lastDoc, &doc))
	assert.Equal(t, "Ocean View Condos", doc.AssociationName)
	assert.Equal(t, "Reserved", doc.Outcome)
	assert.NotEmpty(t, doc.RecordedAt)

	// The cached recent listing was invalidated.
	assert.False(t, mr.Exists("submission-history:recent"))
}

func TestExecute_InsertFailure(t *testing.T) {
	handler, mock, _ := createTestHandler(t, &fakeIndexer{})

	mock.ExpectExec("INSERT INTO submission_history").WillReturnError(assert.AnError)

	_, err := handler.Execute(context.Background(), createValidInput())
	require.Error(t, err)

	stdErr, ok := err.(*errors.StandardError)
	require.True(t, ok)
	assert.Equal(t, errors.ErrCodeHistoryInsertFailed, stdErr.Code)
	assert.True(t, stdErr.Retryable)
}

func TestExecute_IndexFailure(t *testing.T) {
	handler, mock, _ := createTestHandler(t, &fakeIndexer{err: assert.AnError})

	mock.ExpectExec("INSERT INTO submission_history").WillReturnResult(sqlmock.NewResult(1, 1))

	_, err := handler.Execute(context.Background(), createValidInput())
	require.Error(t, err)

	stdErr, ok := err.(*errors.StandardError)
	require.True(t, ok)
	assert.Equal(t, errors.ErrCodeElasticsearchConnectionFailed, stdErr.Code)
}

func TestExecute_UnknownOutcome(t *testing.T) {
	handler, _, _ := createTestHandler(t, &fakeIndexer{})

	input := createValidInput()
	input.Outcome = "Cleared"

	_, err := handler.Execute(context.Background(), input)
	require.Error(t, err)

	stdErr, ok := err.(*errors.StandardError)
	require.True(t, ok)
	assert.Equal(t, errors.ErrCodeUnknownOutcome, stdErr.Code)
}

func TestValidateInput(t *testing.T) {
	valid, err := json.Marshal(createValidInput())
	require.NoError(t, err)
	assert.NoError(t, ValidateInput(valid))

	input := createValidInput()
	input.Region = ""
	raw, err := json.Marshal(input)
	require.NoError(t, err)
	assert.Error(t, ValidateInput(raw))
}
