// internal/workers/intake/derive-documents/validation.go
package derivedocuments

import "clearance-workers/internal/common/validation"

const inputSchema = `{
	"type": "object",
	"required": ["associationName", "yearBuilt", "roofReplacement", "stories"],
	"properties": {
		"associationName": {"type": "string", "minLength": 1},
		"yearBuilt":       {"type": "integer", "minimum": 1800},
		"roofReplacement": {"type": "integer", "minimum": 1800},
		"stories":         {"type": "integer", "minimum": 1},
		"hasSupplementalApplication": {"type": "boolean"},
		"submissionDate":  {"type": "string", "pattern": "^\\d{4}-\\d{2}-\\d{2}$"}
	}
}`

// ValidateInput checks the job variables against the input schema.
func ValidateInput(variables []byte) error {
	return validation.ValidateJSON(inputSchema, variables)
}
