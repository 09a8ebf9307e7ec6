package scale

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Josie-Astrid/Scale/internal/common"
	"github.com/Josie-Astrid/Scale/internal/task"
)

// polygonAnnotationPath is the task-creation endpoint, relative to BaseURL.
const polygonAnnotationPath = "/task/polygonannotation"

// CreateTask implements task.Submitter against the polygon annotation
// endpoint. The returned error is context.Canceled, a *TimeoutError, a
// *ConnectionError, an *HTTPError, or a *MalformedResponseError.
func (c *Client) CreateTask(ctx context.Context, req task.Request) (task.Response, error) {
	rid := common.RequestIDFromContext(ctx)
	if rid == "" {
		rid = uuid.New().String()
	}
	start := time.Now()

	c.log.Info("scale.task.create.start",
		"req_id", rid,
		"callback_url", req.CallbackURL,
		"objects", len(req.ObjectsToAnnotate),
		"attachment", req.Attachment,
		"attachment_type", req.AttachmentType,
		"with_labels", req.WithLabels,
	)

	endpoint := strings.TrimRight(c.cfg.BaseURL, "/") + polygonAnnotationPath
	raw, httpErr := c.post(ctx, rid, endpoint, req)
	if httpErr != nil {
		c.log.Error("scale.task.create.http_error",
			"req_id", rid, "error", httpErr,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return task.Response{}, httpErr
	}

	var out task.Response
	if err := json.Unmarshal(raw, &out); err != nil {
		c.log.Error("scale.task.create.decode_error",
			"req_id", rid, "error", err, "raw_bytes", len(raw),
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return task.Response{}, &MalformedResponseError{Body: raw}
	}
	if out.TaskID == "" {
		c.log.Error("scale.task.create.missing_task_id",
			"req_id", rid, "raw", string(raw),
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return task.Response{}, &MalformedResponseError{Body: raw}
	}

	c.log.Info("scale.task.create.ok",
		"req_id", rid,
		"task_id", out.TaskID,
		"status", out.Status,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return out, nil
}

func (c *Client) post(ctx context.Context, rid, url string, body any) ([]byte, error) {
	b, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(b))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	// Scale authenticates with basic auth: API key as username, empty password.
	req.SetBasicAuth(c.cfg.APIKey, "")

	c.log.Info("scale.http.request",
		"req_id", rid, "method", http.MethodPost, "url", url, "body_bytes", len(b))

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, classifyTransportError(err)
	}
	defer func(Body io.ReadCloser) {
		err := Body.Close()
		if err != nil {
			c.log.Warn("scale response body close error", "req_id", rid, "error", err)
		}
	}(resp.Body)

	buf := new(bytes.Buffer)
	_, _ = buf.ReadFrom(resp.Body)

	c.log.Info("scale.http.response",
		"req_id", rid, "status", resp.StatusCode, "body_bytes", buf.Len())

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &HTTPError{StatusCode: resp.StatusCode, Body: buf.Bytes()}
	}
	return buf.Bytes(), nil
}

// classifyTransportError folds http.Client errors into the package's error
// set. Cancellation is passed through untouched so errors.Is keeps working.
func classifyTransportError(err error) error {
	if errors.Is(err, context.Canceled) {
		return err
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return &TimeoutError{Err: err}
	}
	var ne net.Error
	if errors.As(err, &ne) && ne.Timeout() {
		return &TimeoutError{Err: err}
	}
	return &ConnectionError{Err: err}
}
