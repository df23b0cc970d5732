// internal/workers/intake/search-history/validation.go
package searchhistory

import "clearance-workers/internal/common/validation"

const inputSchema = `{
	"type": "object",
	"properties": {
		"associationName": {"type": "string"},
		"agency":          {"type": "string"},
		"outcome":         {"type": "string"},
		"page":            {"type": "integer", "minimum": 1},
		"pageSize":        {"type": "integer", "minimum": 1, "maximum": 100}
	}
}`

// ValidateInput checks the job variables against the input schema.
func ValidateInput(variables []byte) error {
	return validation.ValidateJSON(inputSchema, variables)
}
