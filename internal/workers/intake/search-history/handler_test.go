package searchhistory

import (
	"context"
	"encoding/json"
	"testing"

	"clearance-workers/internal/common/database"
	"clearance-workers/internal/common/errors"
	"clearance-workers/internal/common/logger"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSearcher struct {
	lastQuery []byte
	response  []byte
	err       error
	calls     int
}

func (f *fakeSearcher) SearchSubmissions(_ context.Context, query []byte) ([]byte, error) {
	f.calls++
	f.lastQuery = query
	if f.err != nil {
		return nil, f.err
	}
	return f.response, nil
}

func sampleResponse(t *testing.T, records ...SubmissionRecord) []byte {
	t.Helper()

	hits := make([]map[string]interface{}, 0, len(records))
	for _, rec := range records {
		hits = append(hits, map[string]interface{}{"_source": rec})
	}

	raw, err := json.Marshal(map[string]interface{}{
		"hits": map[string]interface{}{
			"total": map[string]interface{}{"value": len(records)},
			"hits":  hits,
		},
	})
	require.NoError(t, err)
	return raw
}

func createTestHandler(t *testing.T, searcher Searcher) (*Handler, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	cache := &database.RedisClient{Client: redis.NewClient(&redis.Options{Addr: mr.Addr()})}

	handler := NewHandler(LoadConfig(), ServiceDependencies{
		Searcher: searcher,
		Cache:    cache,
	}, logger.NewTestLogger(t))

	return handler, mr
}

func sampleRecord() SubmissionRecord {
	return SubmissionRecord{
		SubmissionID:    "5f6a2d0e-0000-0000-0000-000000000001",
		AssociationName: "Ocean View Condos",
		Agency:          "Insurance Office of America",
		County:          "Sarasota",
		Region:          "Tampa/St Pete",
		EffectiveDate:   "08/01/2025",
		YearBuilt:       2005,
		Outcome:         "Reserved",
		RecordedAt:      "2025-06-01T12:00:00Z",
	}
}

func TestExecute_Search(t *testing.T) {
	searcher := &fakeSearcher{}
	handler, _ := createTestHandler(t, searcher)
	searcher.response = sampleResponse(t, sampleRecord())

	output, err := handler.Execute(context.Background(), &Input{
		AssociationName: "Ocean View Condos",
		Outcome:         "Reserved",
		Page:            2,
		PageSize:        10,
	})
	require.NoError(t, err)

	assert.Equal(t, 1, output.Total)
	assert.Equal(t, 2, output.Page)
	assert.Equal(t, 10, output.PageSize)
	require.Len(t, output.Submissions, 1)
	assert.Equal(t, "Ocean View Condos", output.Submissions[0].AssociationName)
	assert.False(t, output.FromCache)

	var query map[string]interface{}
	require.NoError(t, json.Unmarshal(searcher.lastQuery, &query))
	assert.Equal(t, float64(10), query["from"])
	assert.Equal(t, float64(10), query["size"])
	assert.Contains(t, query, "query")
}

func TestExecute_DefaultsAndCaching(t *testing.T) {
	searcher := &fakeSearcher{}
	handler, mr := createTestHandler(t, searcher)
	searcher.response = sampleResponse(t, sampleRecord())

	// First call misses the cache and stores the page.
	output, err := handler.Execute(context.Background(), &Input{})
	require.NoError(t, err)
	assert.Equal(t, 1, output.Page)
	assert.Equal(t, 20, output.PageSize)
	assert.False(t, output.FromCache)
	assert.Equal(t, 1, searcher.calls)
	assert.True(t, mr.Exists("submission-history:recent"))

	// Second call is served from the cache.
	output, err = handler.Execute(context.Background(), &Input{})
	require.NoError(t, err)
	assert.True(t, output.FromCache)
	assert.Equal(t, 1, output.Total)
	assert.Equal(t, 1, searcher.calls)
}

func TestExecute_FilteredQueriesSkipCache(t *testing.T) {
	searcher := &fakeSearcher{}
	handler, mr := createTestHandler(t, searcher)
	searcher.response = sampleResponse(t)

	_, err := handler.Execute(context.Background(), &Input{Agency: "Acentria"})
	require.NoError(t, err)

	assert.Equal(t, 1, searcher.calls)
	assert.False(t, mr.Exists("submission-history:recent"))
}

func TestExecute_PageSizeCapped(t *testing.T) {
	searcher := &fakeSearcher{}
	handler, _ := createTestHandler(t, searcher)
	searcher.response = sampleResponse(t)

	output, err := handler.Execute(context.Background(), &Input{Page: 1, PageSize: 500})
	require.NoError(t, err)
	assert.Equal(t, 100, output.PageSize)
}

func TestExecute_SearchFailure(t *testing.T) {
	searcher := &fakeSearcher{err: assert.AnError}
	handler, _ := createTestHandler(t, searcher)

	_, err := handler.Execute(context.Background(), &Input{Agency: "Acentria"})
	require.Error(t, err)

	stdErr, ok := err.(*errors.StandardError)
	require.True(t, ok)
	assert.Equal(t, errors.ErrCodeHistorySearchFailed, stdErr.Code)
	assert.True(t, stdErr.Retryable)
}

func TestExecute_IndexNotFoundPassedThrough(t *testing.T) {
	searcher := &fakeSearcher{err: errors.NewIndexNotFoundError("submission-history")}
	handler, _ := createTestHandler(t, searcher)

	_, err := handler.Execute(context.Background(), &Input{Agency: "Acentria"})
	require.Error(t, err)

	stdErr, ok := err.(*errors.StandardError)
	require.True(t, ok)
	assert.Equal(t, errors.ErrCodeIndexNotFound, stdErr.Code)
}

func TestValidateInput(t *testing.T) {
	assert.NoError(t, ValidateInput([]byte(`{}`)))
	assert.NoError(t, ValidateInput([]byte(`{"agency": "Acentria", "page": 3}`)))
	assert.Error(t, ValidateInput([]byte(`{"page": 0}`)))
	assert.Error(t, ValidateInput([]byte(`{"pageSize": 1000}`)))
}
