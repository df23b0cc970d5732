// internal/workers/intake/render-outcome/validation.go
package renderoutcome

import "clearance-workers/internal/common/validation"

const inputSchema = `{
	"type": "object",
	"required": ["outcome", "associationName", "agency", "effectiveDate", "yearBuilt", "roofReplacement", "stories", "tiv"],
	"properties": {
		"outcome":          {"type": "string", "minLength": 1},
		"associationName":  {"type": "string", "minLength": 1},
		"agency":           {"type": "string", "minLength": 1},
		"region":           {"type": "string"},
		"effectiveDate":    {"type": "string", "pattern": "^\\d{2}/\\d{2}/\\d{4}$"},
		"yearBuilt":        {"type": "integer", "minimum": 1800},
		"roofReplacement":  {"type": "integer", "minimum": 1800},
		"stories":          {"type": "integer", "minimum": 1},
		"constructionType": {"type": "string"},
		"tiv":              {"type": "number", "minimum": 0},
		"reasonKeys":        {"type": "array", "items": {"type": "string", "minLength": 1}},
		"missingRequired":   {"type": "array", "items": {"type": "string", "minLength": 1}},
		"missingAdditional": {"type": "array", "items": {"type": "string", "minLength": 1}},
		"submissionDate":    {"type": "string", "pattern": "^\\d{4}-\\d{2}-\\d{2}$"}
	}
}`

// ValidateInput checks the job variables against the input schema.
func ValidateInput(variables []byte) error {
	return validation.ValidateJSON(inputSchema, variables)
}
