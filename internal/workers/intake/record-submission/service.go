// internal/workers/intake/record-submission/service.go
package recordsubmission

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"clearance-workers/internal/clearance/submission"
	"clearance-workers/internal/common/errors"
	"clearance-workers/internal/common/logger"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/google/uuid"
	"github.com/lib/pq"
)

// Indexer writes one history document to the search index.
type Indexer interface {
	IndexSubmission(ctx context.Context, id string, doc []byte) error
}

// Cache invalidates cached history listings.
type Cache interface {
	Del(ctx context.Context, keys ...string) error
}

type ServiceDependencies struct {
	DB      *sql.DB
	Indexer Indexer
	Cache   Cache
	Logger  logger.Logger
}

type Service struct {
	config  *Config
	db      *sql.DB
	indexer Indexer
	cache   Cache
	logger  logger.Logger
}

func NewService(deps ServiceDependencies, config *Config) *Service {
	return &Service{
		config:  config,
		db:      deps.DB,
		indexer: deps.Indexer,
		cache:   deps.Cache,
		logger:  deps.Logger,
	}
}

const insertHistorySQL = `
	INSERT INTO submission_history (
		id, association_name, agency, county, region, effective_date,
		year_built, roof_replacement, stories, construction_type, tiv,
		outcome, reason_keys, recorded_at
	) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`

func (s *Service) Execute(ctx context.Context, input *Input) (*Output, error) {
	if _, ok := submission.ParseOutcome(input.Outcome); !ok {
		return nil, errors.NewUnknownOutcomeError(input.Outcome)
	}

	submissionID := uuid.New().String()
	recordedAt := time.Now().UTC()

	reasonKeys := input.ReasonKeys
	if reasonKeys == nil {
		reasonKeys = []string{}
	}

	_, err := s.db.ExecContext(ctx, insertHistorySQL,
		submissionID,
		input.AssociationName,
		input.Agency,
		input.County,
		input.Region,
		input.EffectiveDate,
		input.YearBuilt,
		input.RoofReplacement,
		input.Stories,
		input.ConstructionType,
		input.TIV,
		input.Outcome,
		pq.Array(reasonKeys),
		recordedAt,
	)
	if err != nil {
		return nil, errors.NewHistoryInsertFailedError(err)
	}

	doc := historyDocument{
		SubmissionID:     submissionID,
		AssociationName:  input.AssociationName,
		Agency:           input.Agency,
		County:           input.County,
		Region:           input.Region,
		EffectiveDate:    input.EffectiveDate,
		YearBuilt:        input.YearBuilt,
		RoofReplacement:  input.RoofReplacement,
		Stories:          input.Stories,
		ConstructionType: input.ConstructionType,
		TIV:              input.TIV,
		Outcome:          input.Outcome,
		ReasonKeys:       reasonKeys,
		RecordedAt:       recordedAt.Format(time.RFC3339),
	}

	raw, err := json.Marshal(doc)
	if err != nil {
		return nil, errors.NewHistoryInsertFailedError(err)
	}

	if err := s.indexer.IndexSubmission(ctx, submissionID, raw); err != nil {
		return nil, errors.NewElasticsearchConnectionFailedError(err)
	}

	if err := s.cache.Del(ctx, s.config.RecentCacheKey); err != nil {
		s.logger.Warn("failed to invalidate history cache", map[string]interface{}{
			"key":   s.config.RecentCacheKey,
			"error": err.Error(),
		})
	}

	s.logger.Info("submission recorded", map[string]interface{}{
		"submissionId": submissionID,
		"association":  input.AssociationName,
		"outcome":      input.Outcome,
	})

	return &Output{
		SubmissionID: submissionID,
		RecordedAt:   recordedAt,
	}, nil
}

// ESIndexer is the production Indexer backed by go-elasticsearch.
type ESIndexer struct {
	client *elasticsearch.Client
	index  string
}

func NewESIndexer(client *elasticsearch.Client, index string) *ESIndexer {
	return &ESIndexer{client: client, index: index}
}

func (e *ESIndexer) IndexSubmission(ctx context.Context, id string, doc []byte) error {
	res, err := e.client.Index(
		e.index,
		bytes.NewReader(doc),
		e.client.Index.WithDocumentID(id),
		e.client.Index.WithContext(ctx),
	)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.IsError() {
		return fmt.Errorf("index %s: %s", e.index, res.Status())
	}
	return nil
}
