// internal/workers/intake/classify-submission/handler.go
package classifysubmission

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"

	"clearance-workers/internal/clearance/catalog"
	"clearance-workers/internal/clearance/submission"
	"clearance-workers/internal/common/errors"
	"clearance-workers/internal/common/logger"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
)

const (
	TaskType = "classify-submission"
)

type Handler struct {
	config       *Config
	logger       logger.Logger
	errorHandler *errors.ErrorHandler
}

func NewHandler(config *Config, log logger.Logger) *Handler {
	workerLogger := log.WithFields(map[string]interface{}{"taskType": TaskType})
	return &Handler{
		config:       config,
		logger:       workerLogger,
		errorHandler: errors.NewErrorHandler(workerLogger),
	}
}

func (h *Handler) Handle(client worker.JobClient, job entities.Job) {
	h.logger.Info("processing job", map[string]interface{}{
		"jobKey":      job.Key,
		"workflowKey": job.ProcessInstanceKey,
	})

	ctx, cancel := context.WithTimeout(context.Background(), h.config.Timeout)
	defer cancel()

	if err := ValidateInput([]byte(job.Variables)); err != nil {
		h.errorHandler.HandleJobError(ctx, client, job, errors.NewValidationFailedError(err.Error()))
		return
	}

	var input Input
	if err := json.Unmarshal([]byte(job.Variables), &input); err != nil {
		h.errorHandler.HandleJobError(ctx, client, job, errors.NewValidationFailedError(err.Error()))
		return
	}

	output, err := h.execute(ctx, &input)
	if err != nil {
		h.errorHandler.HandleJobError(ctx, client, job, err)
		return
	}

	h.completeJob(client, job, output)
}

func (h *Handler) execute(_ context.Context, input *Input) (*Output, error) {
	docs, err := buildDocuments(input)
	if err != nil {
		return nil, err
	}

	outcome := submission.Classify(docs.Complete(), input.YearBuilt)

	h.logger.Info("submission classified", map[string]interface{}{
		"outcome":          string(outcome),
		"requiredComplete": docs.Complete(),
		"missingRequired":  len(docs.MissingRequired()),
	})

	return &Output{
		Outcome:           string(outcome),
		RequiredComplete:  docs.Complete(),
		MissingRequired:   sortedIDs(docs.MissingRequired()),
		MissingAdditional: sortedIDs(docs.MissingAdditional()),
	}, nil
}

func buildDocuments(input *Input) (submission.Documents, error) {
	docs := submission.Documents{
		Required:   make(map[catalog.DocumentID]bool, len(input.RequiredReceived)),
		Additional: make(map[catalog.DocumentID]bool, len(input.AdditionalReceived)),
	}

	for raw, received := range input.RequiredReceived {
		id := catalog.DocumentID(raw)
		if !catalog.IsKnownDocument(id) {
			return submission.Documents{}, errors.NewValidationFailedError(fmt.Sprintf("unknown required document id: %s", raw))
		}
		docs.Required[id] = received
	}

	for raw, received := range input.AdditionalReceived {
		id := catalog.DocumentID(raw)
		if !catalog.IsKnownDocument(id) {
			return submission.Documents{}, errors.NewValidationFailedError(fmt.Sprintf("unknown additional document id: %s", raw))
		}
		docs.Additional[id] = received
	}

	return docs, nil
}

// sortedIDs orders the missing lists the way the outcome emails present them:
// basic documents in catalog order, then loss-run periods by start year, then
// the rest by label priority.
func sortedIDs(ids []catalog.DocumentID) []string {
	sorted := make([]catalog.DocumentID, len(ids))
	copy(sorted, ids)
	sort.SliceStable(sorted, func(i, j int) bool {
		bandI, rankI := catalogRank(sorted[i])
		bandJ, rankJ := catalogRank(sorted[j])
		if bandI != bandJ {
			return bandI < bandJ
		}
		return rankI < rankJ
	})

	out := make([]string, 0, len(sorted))
	for _, id := range sorted {
		out = append(out, string(id))
	}
	return out
}

func catalogRank(id catalog.DocumentID) (band, rank int) {
	for i, basic := range catalog.BasicDocuments() {
		if id == basic {
			return 0, i
		}
	}
	if start, _, ok := catalog.LossRunPeriod(id); ok {
		return 1, start
	}
	return 2, catalog.PriorityRank(id.Label())
}

func (h *Handler) completeJob(client worker.JobClient, job entities.Job, output *Output) {
	cmd, err := client.NewCompleteJobCommand().
		JobKey(job.Key).
		VariablesFromObject(output)
	if err != nil {
		h.logger.Error("failed to create complete job command", map[string]interface{}{
			"error": err,
		})
		return
	}
	_, err = cmd.Send(context.Background())
	if err != nil {
		h.logger.Error("failed to send complete job command", map[string]interface{}{
			"error": err,
		})
	}
}

func (h *Handler) Execute(ctx context.Context, input *Input) (*Output, error) {
	return h.execute(ctx, input)
}
