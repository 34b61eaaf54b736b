package ocr

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/finaid-tools/docverifier/internal/entity"
)

// BuildFieldsJSONSchema returns a JSON-Schema (draft 2020-12 subset) as a
// generic map describing the field payload an engine must return.
func BuildFieldsJSONSchema() map[string]any {
	return map[string]any{
		"type": "array",
		"items": map[string]any{
			"type":                 "object",
			"additionalProperties": false,
			"properties": map[string]any{
				"name":  map[string]any{"type": "string", "minLength": 1},
				"value": map[string]any{"type": "string"},
				"data_type": map[string]any{
					"type": "string",
					"enum": []string{"currency", "date", "number", "text", "identifier", "email"},
				},
				"confidence":          map[string]any{"type": "number", "minimum": 0.0, "maximum": 1.0},
				"requires_validation": map[string]any{"type": "boolean"},
			},
			"required": []string{"name", "value", "data_type"},
		},
	}
}

// ValidateFieldsPayload checks an engine's extracted fields against the
// payload schema before they enter the pipeline.
func ValidateFieldsPayload(schemaMap map[string]any, fields []entity.ExtractedField) error {
	data, err := json.Marshal(fields)
	if err != nil {
		return fmt.Errorf("marshal fields: %w", err)
	}
	b, err := json.Marshal(schemaMap)
	if err != nil {
		return fmt.Errorf("marshal schema: %w", err)
	}
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("schema.json", bytes.NewReader(b)); err != nil {
		return fmt.Errorf("add schema: %w", err)
	}
	schema, err := compiler.Compile("schema.json")
	if err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("unmarshal data: %w", err)
	}
	if err := schema.Validate(v); err != nil {
		return fmt.Errorf("fields payload does not match schema: %w", err)
	}
	return nil
}
