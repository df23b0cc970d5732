// internal/workers/intake/render-outcome/handler.go
package renderoutcome

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"clearance-workers/internal/clearance/catalog"
	"clearance-workers/internal/clearance/documents"
	"clearance-workers/internal/clearance/eligibility"
	"clearance-workers/internal/clearance/render"
	"clearance-workers/internal/clearance/submission"
	"clearance-workers/internal/common/errors"
	"clearance-workers/internal/common/logger"
	"clearance-workers/internal/common/observability"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
)

const (
	TaskType = "render-outcome"
)

const (
	effectiveDateLayout  = "01/02/2006"
	submissionDateLayout = "2006-01-02"
)

type Handler struct {
	config       *Config
	logger       logger.Logger
	metrics      *observability.Observability
	errorHandler *errors.ErrorHandler
}

func NewHandler(config *Config, metrics *observability.Observability, log logger.Logger) *Handler {
	workerLogger := log.WithFields(map[string]interface{}{"taskType": TaskType})
	return &Handler{
		config:       config,
		logger:       workerLogger,
		metrics:      metrics,
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

func (h *Handler) execute(ctx context.Context, input *Input) (*Output, error) {
	outcome, ok := submission.ParseOutcome(input.Outcome)
	if !ok {
		return nil, errors.NewUnknownOutcomeError(input.Outcome)
	}

	property, today, err := h.resolveProperty(input)
	if err != nil {
		return nil, err
	}

	output := &Output{}

	switch outcome {
	case submission.OutcomeDeclined:
		keys := make([]catalog.ReasonKey, 0, len(input.ReasonKeys))
		for _, raw := range input.ReasonKeys {
			keys = append(keys, catalog.ReasonKey(raw))
		}
		reasons, err := eligibility.ReasonsForKeys(keys)
		if err != nil {
			return nil, errors.NewUnknownReasonKeyError(err.Error())
		}
		output.EmailBody = render.Declined(reasons)

	case submission.OutcomeReferred:
		output.EmailSubject, output.EmailBody = render.Referred(property, h.config.ReferralManager, today)

	case submission.OutcomeReserved:
		missingAdditional, err := resolveRequirements(input.MissingAdditional)
		if err != nil {
			return nil, err
		}
		output.EmailBody = render.Reserved(property, missingAdditional, today)
		output.PipelineRow = render.PipelineRow(property, outcome)

	case submission.OutcomeNotClearedRFI, submission.OutcomeNotClearedOOA:
		missingRequired, err := resolveRequirements(input.MissingRequired)
		if err != nil {
			return nil, err
		}
		missingAdditional, err := resolveRequirements(input.MissingAdditional)
		if err != nil {
			return nil, err
		}
		output.EmailBody = render.NotCleared(property, missingRequired, missingAdditional)
		output.PipelineRow = render.PipelineRow(property, outcome)
	}

	if h.metrics != nil {
		h.metrics.RecordOutcome(ctx, string(outcome))
	}

	h.logger.Info("outcome rendered", map[string]interface{}{
		"outcome":     string(outcome),
		"association": property.AssociationName,
		"hasPipeline": output.PipelineRow != "",
	})

	return output, nil
}

func (h *Handler) resolveProperty(input *Input) (submission.Property, time.Time, error) {
	effectiveDate, err := time.Parse(effectiveDateLayout, input.EffectiveDate)
	if err != nil {
		return submission.Property{}, time.Time{}, errors.NewValidationFailedError("effectiveDate must be MM/DD/YYYY: " + err.Error())
	}

	today := time.Now().UTC()
	if input.SubmissionDate != "" {
		today, err = time.Parse(submissionDateLayout, input.SubmissionDate)
		if err != nil {
			return submission.Property{}, time.Time{}, errors.NewValidationFailedError("submissionDate must be YYYY-MM-DD: " + err.Error())
		}
	}

	return submission.Property{
		AssociationName:  input.AssociationName,
		Agency:           input.Agency,
		Region:           input.Region,
		EffectiveDate:    effectiveDate,
		YearBuilt:        input.YearBuilt,
		RoofReplacement:  input.RoofReplacement,
		Stories:          input.Stories,
		ConstructionType: input.ConstructionType,
		TIV:              input.TIV,
	}, today, nil
}

func resolveRequirements(ids []string) ([]documents.Requirement, error) {
	out := make([]documents.Requirement, 0, len(ids))
	for _, raw := range ids {
		req, ok := documents.RequirementForID(catalog.DocumentID(raw))
		if !ok {
			return nil, errors.NewValidationFailedError(fmt.Sprintf("unknown document id: %s", raw))
		}
		out = append(out, req)
	}
	return out, nil
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
