package cli

import (
	"errors"
	"flag"
	"reflect"
	"testing"

	"github.com/Josie-Astrid/Scale/internal/task"
)

func TestParse_Defaults(t *testing.T) {
	opts, err := Parse(nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if opts.CallbackURL != task.DefaultCallbackURL {
		t.Fatalf("unexpected callback default: %q", opts.CallbackURL)
	}
	if opts.ImageURL != task.DefaultAttachment {
		t.Fatalf("unexpected image url default: %q", opts.ImageURL)
	}
	if opts.Instruction != task.DefaultInstruction {
		t.Fatalf("unexpected instruction default: %q", opts.Instruction)
	}
	if opts.AttachmentType != "image" {
		t.Fatalf("unexpected attachment type default: %q", opts.AttachmentType)
	}
	if !opts.WithLabels {
		t.Fatalf("with-labels should default to true")
	}
	if len(opts.Objects) != 0 {
		t.Fatalf("objects should be empty until typed: %#v", opts.Objects)
	}
	if len(opts.Explicit) != 0 {
		t.Fatalf("nothing was typed: %#v", opts.Explicit)
	}
}

func TestParse_ObjectsRepeatableAndCommaSeparated(t *testing.T) {
	opts, err := Parse([]string{"--objects", "car", "--objects", "truck, bus"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(opts.Objects, []string{"car", "truck", "bus"}) {
		t.Fatalf("unexpected objects: %#v", opts.Objects)
	}
	if !opts.Explicit["objects"] {
		t.Fatalf("objects flag should be marked explicit")
	}
}

func TestParse_EmptyObjectsValueRejected(t *testing.T) {
	if _, err := Parse([]string{"--objects", " , "}); err == nil {
		t.Fatalf("expected error")
	}
}

func TestParse_UnknownFlag(t *testing.T) {
	if _, err := Parse([]string{"--nope"}); err == nil {
		t.Fatalf("expected error")
	}
}

func TestParse_PositionalArgsRejected(t *testing.T) {
	if _, err := Parse([]string{"extra"}); err == nil {
		t.Fatalf("expected error")
	}
}

func TestParse_Help(t *testing.T) {
	_, err := Parse([]string{"-h"})
	if !errors.Is(err, flag.ErrHelp) {
		t.Fatalf("expected flag.ErrHelp, got %v", err)
	}
}
