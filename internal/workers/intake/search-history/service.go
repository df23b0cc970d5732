// internal/workers/intake/search-history/service.go
package searchhistory

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"clearance-workers/internal/common/errors"
	"clearance-workers/internal/common/logger"

	"github.com/elastic/go-elasticsearch/v8"
)

// Searcher runs one query against the history index and returns the raw
// Elasticsearch response body.
type Searcher interface {
	SearchSubmissions(ctx context.Context, query []byte) ([]byte, error)
}

// Cache holds the serialized unfiltered first page.
type Cache interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error
}

type ServiceDependencies struct {
	Searcher Searcher
	Cache    Cache
	Logger   logger.Logger
}

type Service struct {
	config   *Config
	searcher Searcher
	cache    Cache
	logger   logger.Logger
}

func NewService(deps ServiceDependencies, config *Config) *Service {
	return &Service{
		config:   config,
		searcher: deps.Searcher,
		cache:    deps.Cache,
		logger:   deps.Logger,
	}
}

func (s *Service) Execute(ctx context.Context, input *Input) (*Output, error) {
	page := input.Page
	if page < 1 {
		page = 1
	}
	pageSize := input.PageSize
	if pageSize < 1 {
		pageSize = s.config.DefaultPageSize
	}
	if pageSize > s.config.MaxPageSize {
		pageSize = s.config.MaxPageSize
	}

	cacheable := s.cache != nil && page == 1 && pageSize == s.config.DefaultPageSize &&
		input.AssociationName == "" && input.Agency == "" && input.Outcome == ""

	if cacheable {
		if cached, err := s.cache.Get(ctx, s.config.RecentCacheKey); err == nil && cached != "" {
			var output Output
			if err := json.Unmarshal([]byte(cached), &output); err == nil {
				output.FromCache = true
				return &output, nil
			}
		}
	}

	query, err := buildQuery(input, page, pageSize)
	if err != nil {
		return nil, errors.NewHistorySearchFailedError(err)
	}

	raw, err := s.searcher.SearchSubmissions(ctx, query)
	if err != nil {
		if stdErr, ok := err.(*errors.StandardError); ok {
			return nil, stdErr
		}
		if ctx.Err() == context.DeadlineExceeded {
			return nil, errors.NewSearchTimeoutError(s.config.HistoryIndex)
		}
		return nil, errors.NewHistorySearchFailedError(err)
	}

	output, err := parseResponse(raw, page, pageSize)
	if err != nil {
		return nil, err
	}

	if cacheable {
		if encoded, err := json.Marshal(output); err == nil {
			if err := s.cache.Set(ctx, s.config.RecentCacheKey, string(encoded), s.config.CacheTTL); err != nil {
				s.logger.Warn("failed to cache history page", map[string]interface{}{
					"key":   s.config.RecentCacheKey,
					"error": err.Error(),
				})
			}
		}
	}

	s.logger.Info("history searched", map[string]interface{}{
		"total":    output.Total,
		"page":     page,
		"pageSize": pageSize,
	})

	return output, nil
}

func buildQuery(input *Input, page, pageSize int) ([]byte, error) {
	var filters []map[string]interface{}
	if input.AssociationName != "" {
		filters = append(filters, map[string]interface{}{
			"match_phrase": map[string]interface{}{"associationName": input.AssociationName},
		})
	}
	if input.Agency != "" {
		filters = append(filters, map[string]interface{}{
			"match_phrase": map[string]interface{}{"agency": input.Agency},
		})
	}
	if input.Outcome != "" {
		filters = append(filters, map[string]interface{}{
			"term": map[string]interface{}{"outcome.keyword": input.Outcome},
		})
	}

	var query map[string]interface{}
	if len(filters) == 0 {
		query = map[string]interface{}{"match_all": map[string]interface{}{}}
	} else {
		query = map[string]interface{}{
			"bool": map[string]interface{}{"filter": filters},
		}
	}

	body := map[string]interface{}{
		"from":  (page - 1) * pageSize,
		"size":  pageSize,
		"query": query,
		"sort": []map[string]interface{}{
			{"recordedAt": map[string]interface{}{"order": "desc"}},
		},
	}

	return json.Marshal(body)
}

type searchResponse struct {
	Hits struct {
		Total struct {
			Value int `json:"value"`
		} `json:"total"`
		Hits []struct {
			Source SubmissionRecord `json:"_source"`
		} `json:"hits"`
	} `json:"hits"`
}

func parseResponse(raw []byte, page, pageSize int) (*Output, error) {
	var resp searchResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return nil, errors.NewHistorySearchFailedError(err)
	}

	submissions := make([]SubmissionRecord, 0, len(resp.Hits.Hits))
	for _, hit := range resp.Hits.Hits {
		submissions = append(submissions, hit.Source)
	}

	return &Output{
		Total:       resp.Hits.Total.Value,
		Page:        page,
		PageSize:    pageSize,
		Submissions: submissions,
	}, nil
}

// ESSearcher is the production Searcher backed by go-elasticsearch.
type ESSearcher struct {
	client *elasticsearch.Client
	index  string
}

func NewESSearcher(client *elasticsearch.Client, index string) *ESSearcher {
	return &ESSearcher{client: client, index: index}
}

func (e *ESSearcher) SearchSubmissions(ctx context.Context, query []byte) ([]byte, error) {
	res, err := e.client.Search(
		e.client.Search.WithContext(ctx),
		e.client.Search.WithIndex(e.index),
		e.client.Search.WithBody(bytes.NewReader(query)),
		e.client.Search.WithTrackTotalHits(true),
	)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	if res.StatusCode == http.StatusNotFound {
		return nil, errors.NewIndexNotFoundError(e.index)
	}
	if res.IsError() {
		return nil, fmt.Errorf("search %s: %s", e.index, res.Status())
	}

	var buf bytes.Buffer
	if _, err := buf.ReadFrom(res.Body); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
