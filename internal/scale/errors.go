package scale

import "fmt"

// TimeoutError means the request ran past the client timeout (or the
// context deadline) before a response arrived.
type TimeoutError struct {
	Err error
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("request timed out: %v", e.Err)
}

func (e *TimeoutError) Unwrap() error { return e.Err }

// ConnectionError means the request never produced an HTTP status, for
// reasons other than a timeout (DNS failure, refused connection, TLS).
type ConnectionError struct {
	Err error
}

func (e *ConnectionError) Error() string {
	return fmt.Sprintf("connection failed: %v", e.Err)
}

func (e *ConnectionError) Unwrap() error { return e.Err }

// HTTPError means the API answered with a non-2xx status. Body carries the
// raw response so the caller can surface the API's own message.
type HTTPError struct {
	StatusCode int
	Body       []byte
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("scale api status %d: %s", e.StatusCode, e.Body)
}

// MalformedResponseError means the API answered 2xx but the body was not a
// task object we can use (not JSON, or no task_id).
type MalformedResponseError struct {
	Body []byte
}

func (e *MalformedResponseError) Error() string {
	return fmt.Sprintf("unexpected response format: %s", e.Body)
}
