// internal/workers/documents/parse-acord/handler.go
package parseacord

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"regexp"
	"strings"

	"clearance-workers/internal/clearance/acord"
	"clearance-workers/internal/common/errors"
	"clearance-workers/internal/common/logger"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

const (
	TaskType = "parse-acord"
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

	output, err := h.Execute(ctx, &input)
	if err != nil {
		h.errorHandler.HandleJobError(ctx, client, job, err)
		return
	}

	h.logger.Info("document parsed", map[string]interface{}{
		"jobKey":     job.Key,
		"fieldCount": output.FieldCount,
		"pageCount":  output.PageCount,
	})

	h.completeJob(client, job, output)
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

// Execute extracts ACORD fields from the supplied document. DocumentText is
// scanned directly; DocumentBase64 goes through PDF text extraction first.
func (h *Handler) Execute(_ context.Context, input *Input) (*Output, error) {
	if input.DocumentText != "" {
		fields := acord.Extract(input.DocumentText)
		return &Output{Fields: fields, FieldCount: fields.Count()}, nil
	}

	raw, err := base64.StdEncoding.DecodeString(input.DocumentBase64)
	if err != nil {
		return nil, errors.NewValidationFailedError("documentBase64 is not valid base64: " + err.Error())
	}
	if len(raw) > h.config.MaxDocumentBytes {
		return nil, errors.NewValidationFailedError("document exceeds maximum size")
	}

	text, pageCount, err := extractText(raw)
	if err != nil {
		return nil, errors.NewAcordParseFailedError(err)
	}

	fields := acord.Extract(text)
	return &Output{Fields: fields, FieldCount: fields.Count(), PageCount: pageCount}, nil
}

func extractText(raw []byte) (string, int, error) {
	cfg := model.NewDefaultConfiguration()
	cfg.ValidationMode = model.ValidationRelaxed

	pdfCtx, err := api.ReadContext(bytes.NewReader(raw), cfg)
	if err != nil {
		return "", 0, err
	}
	if err := api.ValidateContext(pdfCtx); err != nil {
		return "", 0, err
	}

	var sb strings.Builder
	for page := 1; page <= pdfCtx.PageCount; page++ {
		reader, err := pdfcpu.ExtractPageContent(pdfCtx, page)
		if err != nil || reader == nil {
			// Scanned pages have no content stream text; skip them.
			continue
		}
		content, err := io.ReadAll(reader)
		if err != nil {
			continue
		}
		sb.WriteString(textFromContent(content))
	}

	return sb.String(), pdfCtx.PageCount, nil
}

var literalRe = regexp.MustCompile(`\(((?:\\.|[^\\()])*)\)`)

var literalUnescaper = strings.NewReplacer(
	`\(`, "(",
	`\)`, ")",
	`\\`, `\`,
	`\n`, "\n",
	`\r`, "",
	`\t`, " ",
)

// textFromContent pulls the literal string operands out of a page content
// stream. Good enough for the label/value layout ACORD forms use.
func textFromContent(content []byte) string {
	var sb strings.Builder
	for _, m := range literalRe.FindAllSubmatch(content, -1) {
		sb.WriteString(literalUnescaper.Replace(string(m[1])))
		sb.WriteString("\n")
	}
	return sb.String()
}
