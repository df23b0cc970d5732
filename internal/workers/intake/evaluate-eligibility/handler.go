// internal/workers/intake/evaluate-eligibility/handler.go
package evaluateeligibility

import (
	"context"
	"encoding/json"
	"time"

	"clearance-workers/internal/clearance/catalog"
	"clearance-workers/internal/clearance/eligibility"
	"clearance-workers/internal/clearance/submission"
	"clearance-workers/internal/common/errors"
	"clearance-workers/internal/common/logger"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
)

const (
	TaskType = "evaluate-eligibility"
)

const (
	effectiveDateLayout  = "01/02/2006"
	submissionDateLayout = "2006-01-02"
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
	property, today, err := h.resolveProperty(input)
	if err != nil {
		return nil, err
	}

	var result eligibility.Result
	if len(input.ManualReasonKeys) > 0 {
		keys := make([]catalog.ReasonKey, 0, len(input.ManualReasonKeys))
		for _, raw := range input.ManualReasonKeys {
			keys = append(keys, catalog.ReasonKey(raw))
		}
		reasons, err := eligibility.ReasonsForKeys(keys)
		if err != nil {
			return nil, errors.NewUnknownReasonKeyError(err.Error())
		}
		result = eligibility.Result{Reasons: reasons}
	} else {
		result = eligibility.Evaluate(property, today)
	}

	h.logger.Info("eligibility evaluated", map[string]interface{}{
		"association":      property.AssociationName,
		"region":           property.Region,
		"eligible":         result.Eligible(),
		"referralEligible": result.ReferralEligible,
		"reasonCount":      len(result.Reasons),
	})

	reasons := result.Reasons
	if reasons == nil {
		reasons = []catalog.Reason{}
	}

	eligible := result.Eligible()
	if input.BypassReferral && result.ReferralOnly() {
		eligible = true
	}

	return &Output{
		Eligible:         eligible,
		ReferralEligible: result.ReferralEligible,
		ReferralOnly:     result.ReferralOnly(),
		Reasons:          reasons,
		Region:           property.Region,
	}, nil
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

	property := submission.Property{
		AssociationName:  input.AssociationName,
		Agency:           input.Agency,
		County:           input.County,
		EffectiveDate:    effectiveDate,
		YearBuilt:        input.YearBuilt,
		RoofReplacement:  input.RoofReplacement,
		Stories:          input.Stories,
		ConstructionType: input.ConstructionType,
		TIV:              input.TIV,
	}

	if _, err := catalog.RegionForCounty(input.County); err != nil {
		return submission.Property{}, time.Time{}, errors.NewUnmappedCountyError(input.County)
	}
	if err := property.Resolve(); err != nil {
		return submission.Property{}, time.Time{}, errors.NewValidationFailedError(err.Error())
	}

	return property, today, nil
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
