// internal/workers/intake/evaluate-eligibility/validation.go
package evaluateeligibility

import "clearance-workers/internal/common/validation"

const inputSchema = `{
	"type": "object",
	"required": ["associationName", "agency", "county", "effectiveDate", "yearBuilt", "roofReplacement", "stories", "constructionType", "tiv"],
	"properties": {
		"associationName": {"type": "string", "minLength": 1},
		"agency":          {"type": "string", "minLength": 1},
		"county":          {"type": "string", "minLength": 1},
		"effectiveDate":   {"type": "string", "pattern": "^\\d{2}/\\d{2}/\\d{4}$"},
		"yearBuilt":       {"type": "integer", "minimum": 1800},
		"roofReplacement": {"type": "integer", "minimum": 1800},
		"stories":         {"type": "integer", "minimum": 1},
		"constructionType": {"type": "string", "minLength": 1},
		"tiv":             {"type": "number", "minimum": 0},
		"submissionDate":  {"type": "string", "pattern": "^\\d{4}-\\d{2}-\\d{2}$"},
		"manualReasonKeys": {"type": "array", "items": {"type": "string", "minLength": 1}},
		"bypassReferral":  {"type": "boolean"}
	}
}`

// ValidateInput checks the job variables against the input schema.
func ValidateInput(variables []byte) error {
	return validation.ValidateJSON(inputSchema, variables)
}
