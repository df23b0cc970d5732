// internal/workers/intake/record-submission/validation.go
package recordsubmission

import "clearance-workers/internal/common/validation"

const inputSchema = `{
	"type": "object",
	"required": ["associationName", "agency", "county", "region", "effectiveDate", "yearBuilt", "roofReplacement", "stories", "tiv", "outcome"],
	"properties": {
		"associationName":  {"type": "string", "minLength": 1},
		"agency":           {"type": "string", "minLength": 1},
		"county":           {"type": "string", "minLength": 1},
		"region":           {"type": "string", "minLength": 1},
		"effectiveDate":    {"type": "string", "pattern": "^\\d{2}/\\d{2}/\\d{4}$"},
		"yearBuilt":        {"type": "integer", "minimum": 1800},
		"roofReplacement":  {"type": "integer", "minimum": 1800},
		"stories":          {"type": "integer", "minimum": 1},
		"constructionType": {"type": "string"},
		"tiv":              {"type": "number", "minimum": 0},
		"outcome":          {"type": "string", "minLength": 1},
		"reasonKeys":       {"type": "array", "items": {"type": "string", "minLength": 1}}
	}
}`

// ValidateInput checks the job variables against the input schema.
func ValidateInput(variables []byte) error {
	return validation.ValidateJSON(inputSchema, variables)
}
