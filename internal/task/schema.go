package task

import "github.com/Josie-Astrid/Scale/constants"

// BuildRequestJSONSchema returns a JSON-Schema (draft 2020-12 subset) as a generic map.
// We validate every outgoing payload against it before anything touches the network.
func BuildRequestJSONSchema() map[string]any {
	props := map[string]any{
		"callback_url": urlProp(),
		"objects_to_annotate": map[string]any{
			"type":     "array",
			"minItems": 1,
			"items":    map[string]any{"type": "string", "minLength": 1},
		},
		"attachment":  urlProp(),
		"with_labels": map[string]any{"type": "boolean"},
		"instruction": map[string]any{"type": "string", "minLength": 1},
		"attachment_type": map[string]any{
			"type": "string",
			"enum": constants.AttachmentTypes,
		},
		"unique_id": map[string]any{"type": "string", "minLength": 1},
	}
	required := []string{"callback_url", "objects_to_annotate", "attachment", "instruction", "attachment_type"}

	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties":           props,
		"required":             required,
	}
}

func urlProp() map[string]any {
	return map[string]any{
		"type":    "string",
		"pattern": `^https?://`, // attachments and callbacks must be fetchable over HTTP
	}
}
