package gmail

import (
	"errors"

	"google.golang.org/api/googleapi"

	"github.com/teemow/gmailmcp/internal/logging"
)

// unknownErrorMessage is surfaced when a remote failure carries no
// descriptive message of its own.
const unknownErrorMessage = "unknown error"

// RemoteError is a failed Gmail API call. Error returns the remote message
// unchanged so callers see exactly what the service reported.
type RemoteError struct {
	// Op is the façade operation that failed, e.g. "listMessages".
	Op string
	// Message is the remote error message, or "unknown error" when the
	// failure had no usable message.
	Message string
	// Err is the underlying SDK error, if any.
	Err error
}

func (e *RemoteError) Error() string {
	return e.Message
}

func (e *RemoteError) Unwrap() error {
	return e.Err
}

// remoteError normalizes a failed API call: the remote message is extracted
// when present, logged to the operational error stream, and wrapped in a
// RemoteError. A failure with no message becomes "unknown error".
func (c *Client) remoteError(op string, err error) error {
	msg := ""
	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		msg = apiErr.Message
	} else if err != nil {
		msg = err.Error()
	}
	if msg == "" {
		msg = unknownErrorMessage
	}

	c.logger.Error("gmail operation failed",
		logging.Operation(op),
		logging.Status(logging.StatusError),
		logging.ErrMsg(msg),
	)

	return &RemoteError{Op: op, Message: msg, Err: err}
}
