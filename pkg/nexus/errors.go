package nexus

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/pkg/errors"
)

// Kind classifies what went wrong while talking to the server.
type Kind int

const (
	// KindTransport is a network or connection failure.
	KindTransport Kind = iota + 1
	// KindStatus is a non-2xx response; StatusCode is set.
	KindStatus
	// KindDecode is a body that is not JSON or not of the expected shape.
	KindDecode
	// KindIO is a local file system failure.
	KindIO
	// KindInvalid is a bad argument, rejected before any request is made.
	KindInvalid
	// KindLimit is a configured page limit that the listing ran past.
	KindLimit
)

func (k Kind) String() string {
	switch k {
	case KindTransport:
		return "transport"
	case KindStatus:
		return "status"
	case KindDecode:
		return "decode"
	case KindIO:
		return "io"
	case KindInvalid:
		return "invalid"
	case KindLimit:
		return "limit"
	default:
		return "unknown"
	}
}

var (
	// ErrInvalidArgument is returned before any request is made.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrTooManyPages is returned when a page limit is configured and the
	// server keeps handing out continuation tokens past it.
	ErrTooManyPages = errors.New("too many pages")
)

// maxBodySnippet bounds how much of an error response ends up in messages.
const maxBodySnippet = 512

// Error is the single error type returned by Client operations.
type Error struct {
	// Op is the client operation, e.g. "list assets".
	Op   string
	Kind Kind
	// StatusCode is the HTTP status for KindStatus errors and 0 otherwise.
	StatusCode int
	// URL is the request URL, or the local path for KindIO.
	URL string
	// Body holds the start of the response body for KindStatus errors.
	Body string
	Err  error
}

func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString("nexus: ")
	b.WriteString(e.Op)
	switch e.Kind {
	case KindStatus:
		_, _ = fmt.Fprintf(&b, ": unexpected status %d %s", e.StatusCode, http.StatusText(e.StatusCode))
		if e.URL != "" {
			_, _ = fmt.Fprintf(&b, " from %s", e.URL)
		}
		if e.Body != "" {
			_, _ = fmt.Fprintf(&b, ": %s", e.Body)
		}
	default:
		if e.URL != "" {
			_, _ = fmt.Fprintf(&b, " %s", e.URL)
		}
		if e.Err != nil {
			_, _ = fmt.Fprintf(&b, ": %v", e.Err)
		}
	}
	return b.String()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Cause makes Error play along with errors.Cause from github.com/pkg/errors.
func (e *Error) Cause() error {
	return e.Err
}

func newTransportError(op, url string, err error) error {
	return &Error{Op: op, Kind: KindTransport, URL: url, Err: err}
}

func newStatusError(op, url string, statusCode int, body []byte) error {
	snippet := strings.TrimSpace(string(body))
	if len(snippet) > maxBodySnippet {
		snippet = snippet[:maxBodySnippet] + "..."
	}
	return &Error{
		Op:         op,
		Kind:       KindStatus,
		StatusCode: statusCode,
		URL:        url,
		Body:       snippet,
		Err:        errors.Errorf("status %d", statusCode),
	}
}

func newDecodeError(op, url string, err error) error {
	return &Error{Op: op, Kind: KindDecode, URL: url, Err: err}
}

func newIOError(op, path string, err error) error {
	return &Error{Op: op, Kind: KindIO, URL: path, Err: err}
}

func newInvalidError(op, format string, args ...interface{}) error {
	return &Error{Op: op, Kind: KindInvalid, Err: errors.Wrapf(ErrInvalidArgument, format, args...)}
}

// StatusCode returns the HTTP status carried by err, or 0 when err was not
// caused by an unexpected response.
func StatusCode(err error) int {
	var e *Error
	if errors.As(err, &e) {
		return e.StatusCode
	}
	return 0
}

// KindOf returns the Kind carried by err, or 0 for foreign errors.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}

func IsNotFound(err error) bool {
	return StatusCode(err) == http.StatusNotFound
}

func IsForbidden(err error) bool {
	return StatusCode(err) == http.StatusForbidden
}

func IsUnauthorized(err error) bool {
	return StatusCode(err) == http.StatusUnauthorized
}

func IsBadRequest(err error) bool {
	return StatusCode(err) == http.StatusBadRequest
}
