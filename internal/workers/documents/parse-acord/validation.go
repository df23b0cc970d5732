// internal/workers/documents/parse-acord/validation.go
package parseacord

import "clearance-workers/internal/common/validation"

const inputSchema = `{
	"type": "object",
	"properties": {
		"documentBase64": {"type": "string"},
		"documentText":   {"type": "string"}
	},
	"anyOf": [
		{"required": ["documentBase64"]},
		{"required": ["documentText"]}
	]
}`

// ValidateInput checks the job variables against the input schema.
func ValidateInput(variables []byte) error {
	return validation.ValidateJSON(inputSchema, variables)
}
