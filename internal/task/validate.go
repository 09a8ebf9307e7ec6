package task

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/Josie-Astrid/Scale/internal/common"
)

// ValidateRequest checks req against the request schema. It returns an
// AppError with code INVALID_REQUEST describing the first violation found.
func ValidateRequest(req Request) error {
	data, err := json.Marshal(req)
	if err != nil {
		return common.NewAppError("INVALID_REQUEST", "marshal task request", err)
	}
	if err := validateJSONAgainstSchema(BuildRequestJSONSchema(), data); err != nil {
		return common.NewAppError("INVALID_REQUEST", "task request failed validation", err)
	}
	return nil
}

// validateJSONAgainstSchema validates "data" against "schemaMap".
func validateJSONAgainstSchema(schemaMap map[string]any, data []byte) error {
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
		return fmt.Errorf("json does not match schema: %w", err)
	}
	return nil
}
