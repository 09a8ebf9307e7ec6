// Package taskfile loads partial task definitions from YAML files.
package taskfile

import (
	"bytes"
	"errors"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/Josie-Astrid/Scale/internal/common"
	"github.com/Josie-Astrid/Scale/internal/task"
)

// Definition is a partial task description. Nil fields mean "keep whatever
// the request already has", so a file only needs the keys it overrides.
type Definition struct {
	CallbackURL       *string  `yaml:"callback_url"`
	ObjectsToAnnotate []string `yaml:"objects_to_annotate"`
	Attachment        *string  `yaml:"attachment"`
	WithLabels        *bool    `yaml:"with_labels"`
	Instruction       *string  `yaml:"instruction"`
	AttachmentType    *string  `yaml:"attachment_type"`
	UniqueID          *string  `yaml:"unique_id"`
}

// Load reads a YAML task definition from path. Unknown keys are rejected so
// a typo never silently falls back to a default.
func Load(path string) (*Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, common.WrapError(err, "read task file")
	}
	return Parse(data)
}

// Parse decodes a YAML task definition. An empty document is a valid
// definition that overrides nothing.
func Parse(data []byte) (*Definition, error) {
	var def Definition
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&def); err != nil {
		if errors.Is(err, io.EOF) {
			return &Definition{}, nil
		}
		return nil, common.WrapError(err, "parse task file")
	}
	return &def, nil
}

// Apply overlays the definition's set fields onto req.
func (d *Definition) Apply(req *task.Request) {
	if d == nil {
		return
	}
	if d.CallbackURL != nil {
		req.CallbackURL = *d.CallbackURL
	}
	if len(d.ObjectsToAnnotate) > 0 {
		req.ObjectsToAnnotate = append([]string(nil), d.ObjectsToAnnotate...)
	}
	if d.Attachment != nil {
		req.Attachment = *d.Attachment
	}
	if d.WithLabels != nil {
		req.WithLabels = *d.WithLabels
	}
	if d.Instruction != nil {
		req.Instruction = *d.Instruction
	}
	if d.AttachmentType != nil {
		req.AttachmentType = *d.AttachmentType
	}
	if d.UniqueID != nil {
		req.UniqueID = *d.UniqueID
	}
}
