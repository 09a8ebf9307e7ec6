package task

import (
	"context"

	"github.com/Josie-Astrid/Scale/constants"
)

// Default values for a polygon annotation request.
const (
	DefaultCallbackURL = "https://scale-demo.herokuapp.com/scale/callback"
	DefaultAttachment  = "https://scale.com/static/img/website/index/example-ia-boxes.jpg"
	DefaultInstruction = "Draw a tight polygon around every **car** in the image."
)

// DefaultObjects is the object list used when the caller names none.
var DefaultObjects = []string{"car", "suv"}

// Request is the job-creation payload sent to the annotation endpoint.
// Field names follow the wire contract exactly.
type Request struct {
	CallbackURL       string   `json:"callback_url"`
	ObjectsToAnnotate []string `json:"objects_to_annotate"`
	Attachment        string   `json:"attachment"`
	WithLabels        bool     `json:"with_labels"`
	Instruction       string   `json:"instruction"`
	AttachmentType    string   `json:"attachment_type"`
	UniqueID          string   `json:"unique_id,omitempty"`
}

// Response holds the fields we care about from a task-creation reply.
// Anything else the API returns is ignored.
type Response struct {
	TaskID    string `json:"task_id"`
	Status    string `json:"status,omitempty"`
	Type      string `json:"type,omitempty"`
	CreatedAt string `json:"created_at,omitempty"`
}

// DefaultRequest returns a Request with every field at its default.
func DefaultRequest() Request {
	return Request{
		CallbackURL:       DefaultCallbackURL,
		ObjectsToAnnotate: append([]string(nil), DefaultObjects...),
		Attachment:        DefaultAttachment,
		WithLabels:        true,
		Instruction:       DefaultInstruction,
		AttachmentType:    constants.DefaultAttachmentType,
	}
}

// Submitter is the interface the command line depends on.
type Submitter interface {
	CreateTask(ctx context.Context, req Request) (Response, error)
}
