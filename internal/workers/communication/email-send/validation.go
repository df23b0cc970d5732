// internal/workers/communication/email-send/validation.go
package emailsend

import "clearance-workers/internal/common/validation"

const inputSchema = `{
	"type": "object",
	"properties": {
		"to": {
			"type": "array",
			"items": {"type": "string"},
			"minItems": 1
		},
		"cc": {
			"type": "array",
			"items": {"type": "string"}
		},
		"subject": {"type": "string", "minLength": 1},
		"body":    {"type": "string", "minLength": 1}
	},
	"required": ["to", "subject", "body"]
}`

// ValidateInput checks the job variables against the input schema.
func ValidateInput(variables []byte) error {
	return validation.ValidateJSON(inputSchema, variables)
}
