// internal/workers/intake/derive-documents/handler.go
package derivedocuments

import (
	"context"
	"encoding/json"
	"time"

	"clearance-workers/internal/clearance/documents"
	"clearance-workers/internal/common/errors"
	"clearance-workers/internal/common/logger"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
)

const (
	TaskType = "derive-documents"
)

const submissionDateLayout = "2006-01-02"

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
	today := time.Now().UTC()
	if input.SubmissionDate != "" {
		parsed, err := time.Parse(submissionDateLayout, input.SubmissionDate)
		if err != nil {
			return nil, errors.NewValidationFailedError("submissionDate must be YYYY-MM-DD: " + err.Error())
		}
		today = parsed
	}

	required := documents.BasicRequired()
	required = append(required, documents.LossRunRequired(input.YearBuilt, today)...)

	additional := documents.DeriveAdditional(documents.DeriveParams{
		YearBuilt:                  input.YearBuilt,
		RoofReplacement:            input.RoofReplacement,
		Stories:                    input.Stories,
		AssociationName:            input.AssociationName,
		HasSupplementalApplication: input.HasSupplementalApplication,
	}, today)

	h.logger.Info("document checklist derived", map[string]interface{}{
		"association":     input.AssociationName,
		"requiredCount":   len(required),
		"additionalCount": len(additional),
	})

	return &Output{
		RequiredDocuments:   required,
		AdditionalDocuments: additional,
	}, nil
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
