package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/Josie-Astrid/Scale/constants"
	"github.com/Josie-Astrid/Scale/internal/common"
	"github.com/Josie-Astrid/Scale/internal/scale"
	"github.com/Josie-Astrid/Scale/internal/task"
	"github.com/Josie-Astrid/Scale/internal/taskfile"
)

// Run parses args, resolves configuration from the environment, and submits
// one polygon annotation task. It returns the process exit code.
func Run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	return RunWithSubmitter(ctx, args, nil, stdout, stderr)
}

// RunWithSubmitter is Run with an injectable submitter so tests can skip the
// real HTTP client. A nil submitter builds one from environment config.
func RunWithSubmitter(ctx context.Context, args []string, submitter task.Submitter, stdout, stderr io.Writer) int {
	opts, err := Parse(args)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			usage(stdout)
			return ExitSuccess
		}
		fmt.Fprintf(stderr, "Error: %v\n", err)
		fmt.Fprintf(stderr, "Run '%s -h' for usage.\n", flagSetName)
		return ExitUsage
	}

	// Result lines go to stdout; diagnostics and logs stay on stderr.
	logger := slog.New(slog.NewJSONHandler(stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))

	if submitter == nil {
		cfg := common.LoadConfig()
		if err := cfg.Validate(); err != nil {
			if errors.Is(err, common.ErrMissingCredential) {
				fmt.Fprintln(stderr, "Error: SCALE_API_KEY environment variable is not set.")
				fmt.Fprintln(stderr, "Please set it with: export SCALE_API_KEY='your_scale_api_key'")
			} else {
				fmt.Fprintf(stderr, "Error: %v\n", err)
			}
			return ExitFailure
		}
		submitter = scale.NewClient(scale.Config{
			APIKey:  cfg.Scale.APIKey,
			BaseURL: cfg.Scale.BaseURL,
			Timeout: cfg.Scale.Timeout,
		}, logger)
	}

	req := task.DefaultRequest()
	if opts.TaskFile != "" {
		def, err := taskfile.Load(opts.TaskFile)
		if err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return ExitFailure
		}
		def.Apply(&req)
		logger.Info("cli.taskfile.applied", "path", opts.TaskFile)
	}
	applyFlags(&req, opts)

	req.AttachmentType = constants.NormalizeAttachmentType(req.AttachmentType)
	if !constants.IsValidAttachmentType(req.AttachmentType) {
		fmt.Fprintf(stderr, "Error: unsupported attachment type %q (expected one of %s)\n",
			req.AttachmentType, strings.Join(constants.AttachmentTypes, ", "))
		return ExitFailure
	}
	if err := task.ValidateRequest(req); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return ExitFailure
	}

	ctx = common.WithRequestID(ctx, uuid.New().String())

	resp, err := submitter.CreateTask(ctx, req)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			fmt.Fprintln(stderr, "Operation cancelled by user.")
			return ExitFailure
		}
		fmt.Fprintf(stderr, "Failed to create Scale task: %v\n", err)
		return ExitFailure
	}

	fmt.Fprintf(stdout, "Task created successfully: %s\n", resp.TaskID)
	if resp.Status != "" {
		fmt.Fprintf(stdout, "Task status: %s\n", resp.Status)
	}
	return ExitSuccess
}

// applyFlags overlays explicitly typed flags onto req. Flags the user did
// not type keep whatever the defaults or the task file put there.
func applyFlags(req *task.Request, opts Options) {
	if opts.Explicit["callback-url"] {
		req.CallbackURL = opts.CallbackURL
	}
	if opts.Explicit["objects"] {
		req.ObjectsToAnnotate = append([]string(nil), opts.Objects...)
	}
	if opts.Explicit["image-url"] {
		req.Attachment = opts.ImageURL
	}
	if opts.Explicit["with-labels"] {
		req.WithLabels = opts.WithLabels
	}
	if opts.Explicit["instruction"] {
		req.Instruction = opts.Instruction
	}
	if opts.Explicit["attachment-type"] {
		req.AttachmentType = opts.AttachmentType
	}
	if opts.Explicit["unique-id"] {
		req.UniqueID = opts.UniqueID
	}
}
