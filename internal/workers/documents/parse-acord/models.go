// internal/workers/documents/parse-acord/models.go
package parseacord

import "clearance-workers/internal/clearance/acord"

type Input struct {
	// DocumentBase64 is the ACORD PDF. DocumentText skips PDF extraction and
	// scans the given text directly, for callers that already ran OCR.
	DocumentBase64 string `json:"documentBase64,omitempty"`
	DocumentText   string `json:"documentText,omitempty"`
}

type Output struct {
	Fields     acord.Fields `json:"fields"`
	FieldCount int          `json:"fieldCount"`
	PageCount  int          `json:"pageCount,omitempty"`
}
