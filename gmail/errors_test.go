package gmail

import (
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/googleapi"
)

func testClient() *Client {
	return &Client{logger: slog.Default()}
}

func TestRemoteErrorUsesAPIMessage(t *testing.T) {
	apiErr := &googleapi.Error{Code: 404, Message: "Requested entity was not found."}

	err := testClient().remoteError("getMessage", apiErr)
	assert.Equal(t, "Requested entity was not found.", err.Error())

	var remote *RemoteError
	require.ErrorAs(t, err, &remote)
	assert.Equal(t, "getMessage", remote.Op)
	assert.ErrorIs(t, err, apiErr)
}

func TestRemoteErrorFallsBackToErrorString(t *testing.T) {
	err := testClient().remoteError("listMessages", errors.New("connection refused"))
	assert.Equal(t, "connection refused", err.Error())
}

func TestRemoteErrorUnknownFallback(t *testing.T) {
	// An API error with no message and no useful Error output still yields a
	// descriptive message.
	err := testClient().remoteError("listLabels", &googleapi.Error{})
	assert.NotEmpty(t, err.Error())

	err = testClient().remoteError("listLabels", errEmpty{})
	assert.Equal(t, "unknown error", err.Error())
}

type errEmpty struct{}

func (errEmpty) Error() string { return "" }
