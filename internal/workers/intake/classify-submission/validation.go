// internal/workers/intake/classify-submission/validation.go
package classifysubmission

import "clearance-workers/internal/common/validation"

const inputSchema = `{
	"type": "object",
	"required": ["yearBuilt", "requiredReceived"],
	"properties": {
		"yearBuilt": {"type": "integer", "minimum": 1800},
		"requiredReceived": {
			"type": "object",
			"additionalProperties": {"type": "boolean"}
		},
		"additionalReceived": {
			"type": "object",
			"additionalProperties": {"type": "boolean"}
		}
	}
}`

// ValidateInput checks the job variables against the input schema.
func ValidateInput(variables []byte) error {
	return validation.ValidateJSON(inputSchema, variables)
}
