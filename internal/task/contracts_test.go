package task

import (
	"encoding/json"
	"reflect"
	"testing"
)

func TestDefaultRequest_Values(t *testing.T) {
	req := DefaultRequest()

	if req.CallbackURL != "https://scale-demo.herokuapp.com/scale/callback" {
		t.Fatalf("unexpected callback url: %q", req.CallbackURL)
	}
	if !reflect.DeepEqual(req.ObjectsToAnnotate, []string{"car", "suv"}) {
		t.Fatalf("unexpected objects: %#v", req.ObjectsToAnnotate)
	}
	if req.Attachment != "https://scale.com/static/img/website/index/example-ia-boxes.jpg" {
		t.Fatalf("unexpected attachment: %q", req.Attachment)
	}
	if !req.WithLabels {
		t.Fatalf("with_labels should default to true")
	}
	if req.Instruction != "Draw a tight polygon around every **car** in the image." {
		t.Fatalf("unexpected instruction: %q", req.Instruction)
	}
	if req.AttachmentType != "image" {
		t.Fatalf("unexpected attachment type: %q", req.AttachmentType)
	}
	if req.UniqueID != "" {
		t.Fatalf("unique id should default to empty, got %q", req.UniqueID)
	}
}

func TestDefaultRequest_CopiesObjectSlice(t *testing.T) {
	a := DefaultRequest()
	a.ObjectsToAnnotate[0] = "bicycle"

	b := DefaultRequest()
	if b.ObjectsToAnnotate[0] != "car" {
		t.Fatalf("default objects were mutated: %#v", b.ObjectsToAnnotate)
	}
}

func TestRequest_WireShape(t *testing.T) {
	data, err := json.Marshal(DefaultRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{"callback_url", "objects_to_annotate", "attachment", "with_labels", "instruction", "attachment_type"}
	if len(m) != len(want) {
		t.Fatalf("expected %d wire keys, got %d: %v", len(want), len(m), m)
	}
	for _, k := range want {
		if _, ok := m[k]; !ok {
			t.Fatalf("missing wire key %q", k)
		}
	}
	if _, ok := m["unique_id"]; ok {
		t.Fatalf("empty unique_id must stay off the wire")
	}
}

func TestRequest_UniqueIDOnWire(t *testing.T) {
	req := DefaultRequest()
	req.UniqueID = "job-42"

	data, err := json.Marshal(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m["unique_id"] != "job-42" {
		t.Fatalf("unexpected unique_id on wire: %v", m["unique_id"])
	}
}
