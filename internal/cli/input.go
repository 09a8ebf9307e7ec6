package cli

import (
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/Josie-Astrid/Scale/constants"
	"github.com/Josie-Astrid/Scale/internal/task"
)

const (
	ExitSuccess = 0
	ExitFailure = 1
	ExitUsage   = 2
)

const flagSetName = "scale-annotate"

// Options is the parsed command line. Explicit records which flags were
// actually typed, so merging knows what the user said versus what fell out
// of flag defaults.
type Options struct {
	CallbackURL    string
	Objects        []string
	ImageURL       string
	Instruction    string
	AttachmentType string
	WithLabels     bool
	UniqueID       string
	TaskFile       string

	Explicit map[string]bool
}

// objectsValue accumulates --objects occurrences. Each occurrence may be a
// single label or a comma-separated list.
type objectsValue []string

func (v *objectsValue) String() string { return strings.Join(*v, ",") }

func (v *objectsValue) Set(s string) error {
	added := 0
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		*v = append(*v, part)
		added++
	}
	if added == 0 {
		return fmt.Errorf("no object labels in %q", s)
	}
	return nil
}

func newFlagSet(opts *Options, objects *objectsValue) *flag.FlagSet {
	fs := flag.NewFlagSet(flagSetName, flag.ContinueOnError)
	fs.StringVar(&opts.CallbackURL, "callback-url", task.DefaultCallbackURL, "Webhook that receives the completed task.")
	fs.Var(objects, "objects", `Object label to annotate; repeatable, accepts comma-separated lists (default "car,suv").`)
	fs.StringVar(&opts.ImageURL, "image-url", task.DefaultAttachment, "URL of the attachment to annotate.")
	fs.StringVar(&opts.Instruction, "instruction", task.DefaultInstruction, "Instruction shown to the annotator.")
	fs.StringVar(&opts.AttachmentType, "attachment-type", constants.DefaultAttachmentType, "Attachment kind: "+strings.Join(constants.AttachmentTypes, "|")+".")
	fs.BoolVar(&opts.WithLabels, "with-labels", true, "Ask for a label on every polygon.")
	fs.StringVar(&opts.UniqueID, "unique-id", "", "Idempotency key for the task (optional).")
	fs.StringVar(&opts.TaskFile, "task-file", "", "YAML file with task fields; explicit flags still win.")
	return fs
}

// Parse parses CLI flags into Options. Errors (including flag.ErrHelp) are
// returned, not printed.
func Parse(args []string) (Options, error) {
	opts := Options{Explicit: map[string]bool{}}
	var objects objectsValue

	fs := newFlagSet(&opts, &objects)
	fs.SetOutput(io.Discard) // parsing errors are returned, not printed

	if err := fs.Parse(args); err != nil {
		return Options{}, err
	}
	if fs.NArg() != 0 {
		return Options{}, fmt.Errorf("unexpected positional arguments: %q", strings.Join(fs.Args(), " "))
	}
	fs.Visit(func(f *flag.Flag) { opts.Explicit[f.Name] = true })
	opts.Objects = objects
	return opts, nil
}

func usage(w io.Writer) {
	var opts Options
	var objects objectsValue
	fs := newFlagSet(&opts, &objects)
	fs.SetOutput(w)
	fmt.Fprintf(w, "Usage: %s [flags]\n\nSubmits one polygon annotation task to the Scale API and prints its id.\n\nFlags:\n", flagSetName)
	fs.PrintDefaults()
}
