package document

import (
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// documentSchema is the wire contract for the editor's JSON export. The
// block type is deliberately an open string: unrecognized types fall back to
// the action layout instead of failing the whole document.
const documentSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["blocks"],
  "properties": {
    "header": {
      "type": "object",
      "properties": {
        "title":   {"type": "string"},
        "author":  {"type": "string"},
        "contact": {"type": "string"}
      },
      "additionalProperties": true
    },
    "blocks": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["id", "type", "content"],
        "properties": {
          "id":      {"type": "string", "minLength": 1},
          "type":    {"type": "string"},
          "content": {"type": "string"}
        },
        "additionalProperties": true
      }
    }
  },
  "additionalProperties": true
}`

var schemaLoader = gojsonschema.NewStringLoader(documentSchema)

// validate checks raw document bytes against the schema before decoding.
func validate(data []byte) error {
	result, err := gojsonschema.Validate(schemaLoader, gojsonschema.NewBytesLoader(data))
	if err != nil {
		return fmt.Errorf("failed to validate document: %w", err)
	}
	if result.Valid() {
		return nil
	}
	msgs := make([]string, 0, len(result.Errors()))
	for _, e := range result.Errors() {
		msgs = append(msgs, e.String())
	}
	return fmt.Errorf("invalid document: %s", strings.Join(msgs, "; "))
}
