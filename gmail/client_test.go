package gmail

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/option"

	"github.com/teemow/gmailmcp/auth"
)

// newStubClient builds a client pointed at a stub Gmail endpoint.
func newStubClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	creds := &auth.Credentials{AccessToken: "test-token"}
	client, err := NewClient(context.Background(), creds, option.WithEndpoint(srv.URL+"/"))
	require.NoError(t, err)
	return client
}

func writeJSON(t *testing.T, w http.ResponseWriter, body string) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	if _, err := w.Write([]byte(body)); err != nil {
		t.Errorf("failed to write stub response: %v", err)
	}
}

func TestResolveCredentialsAndListLabels(t *testing.T) {
	// End to end: credentials come from a file in the Node.js naming
	// convention, the client is built through the default resolution path,
	// and the label listing round-trips against a stub endpoint.
	dir := t.TempDir()
	path := filepath.Join(dir, "credentials.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"accessToken":"X","refreshToken":"Y"}`), 0o600))

	t.Setenv(auth.EnvCredentials, "")
	t.Setenv(auth.EnvCredentialsPath, path)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.True(t, strings.HasSuffix(r.URL.Path, "/labels"), "unexpected path %s", r.URL.Path)
		writeJSON(t, w, `{"labels":[{"id":"INBOX","name":"INBOX"}]}`)
	}))
	defer srv.Close()

	client, err := NewDefaultClient(context.Background(), nil, option.WithEndpoint(srv.URL+"/"))
	require.NoError(t, err)

	list, err := client.ListLabels("")
	require.NoError(t, err)
	require.Len(t, list.Labels, 1)
	assert.Equal(t, "INBOX", list.Labels[0].Id)
	assert.Equal(t, "INBOX", list.Labels[0].Name)
}

func TestListMessagesEmptyPage(t *testing.T) {
	client := newStubClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, `{}`)
	}))

	list, err := client.ListMessages("", ListMessagesOptions{})
	require.NoError(t, err)
	assert.NotNil(t, list.Messages)
	assert.Empty(t, list.Messages)
}

func TestListMessagesForwardsOptions(t *testing.T) {
	var query url.Values
	client := newStubClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query = r.URL.Query()
		writeJSON(t, w, `{"messages":[{"id":"m1","threadId":"t1"}],"nextPageToken":"next"}`)
	}))

	list, err := client.ListMessages("", ListMessagesOptions{
		Query:      "is:unread",
		LabelIDs:   []string{"INBOX"},
		MaxResults: 5,
		PageToken:  "page",
	})
	require.NoError(t, err)
	require.Len(t, list.Messages, 1)
	assert.Equal(t, "m1", list.Messages[0].Id)
	assert.Equal(t, "next", list.NextPageToken)

	assert.Equal(t, "is:unread", query.Get("q"))
	assert.Equal(t, "INBOX", query.Get("labelIds"))
	assert.Equal(t, "5", query.Get("maxResults"))
	assert.Equal(t, "page", query.Get("pageToken"))
	assert.Empty(t, query.Get("includeSpamTrash"))
}

func TestSearchMessagesSetsQuery(t *testing.T) {
	var query url.Values
	client := newStubClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query = r.URL.Query()
		writeJSON(t, w, `{}`)
	}))

	_, err := client.SearchMessages("", "from:alice", ListMessagesOptions{})
	require.NoError(t, err)
	assert.Equal(t, "from:alice", query.Get("q"))
}

func TestGetMessageFormat(t *testing.T) {
	var query url.Values
	client := newStubClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query = r.URL.Query()
		writeJSON(t, w, `{"id":"m1","threadId":"t1"}`)
	}))

	msg, err := client.GetMessage("", "m1", GetMessageOptions{
		Format:          FormatMetadata,
		MetadataHeaders: []string{"Subject", "From"},
	})
	require.NoError(t, err)
	assert.Equal(t, "m1", msg.Id)
	assert.Equal(t, "metadata", query.Get("format"))
	assert.Equal(t, []string{"Subject", "From"}, query["metadataHeaders"])
}

func TestSendMessageEncodesEnvelope(t *testing.T) {
	var payload struct {
		Raw      string `json:"raw"`
		ThreadID string `json:"threadId"`
	}
	client := newStubClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		writeJSON(t, w, `{"id":"m1","threadId":"t1"}`)
	}))

	sent, err := client.SendMessage("", &OutgoingMessage{
		To:       []string{"a@example.com"},
		Subject:  "Hello",
		Body:     "body",
		ThreadID: "t1",
	})
	require.NoError(t, err)
	assert.Equal(t, "m1", sent.Id)
	assert.Equal(t, "t1", payload.ThreadID)

	decoded, err := base64.URLEncoding.DecodeString(payload.Raw)
	require.NoError(t, err)
	assert.Contains(t, string(decoded), "To: a@example.com\r\n")
	assert.Contains(t, string(decoded), "Subject: Hello\r\n")
}

func TestCreateDraft(t *testing.T) {
	var payload struct {
		Message struct {
			Raw string `json:"raw"`
		} `json:"message"`
	}
	client := newStubClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		writeJSON(t, w, `{"id":"d1","message":{"id":"m1"}}`)
	}))

	draft, err := client.CreateDraft("", &OutgoingMessage{
		To:   []string{"a@example.com"},
		Body: "draft body",
	})
	require.NoError(t, err)
	assert.Equal(t, "d1", draft.Id)
	assert.NotEmpty(t, payload.Message.Raw)
}

func TestModifyMessageLabels(t *testing.T) {
	var payload struct {
		AddLabelIDs    []string `json:"addLabelIds"`
		RemoveLabelIDs []string `json:"removeLabelIds"`
	}
	client := newStubClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		writeJSON(t, w, `{"id":"m1","labelIds":["STARRED"]}`)
	}))

	msg, err := client.ModifyMessage("", "m1", ModifyMessageOptions{
		AddLabelIDs:    []string{"STARRED"},
		RemoveLabelIDs: []string{"UNREAD"},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"STARRED"}, msg.LabelIds)
	assert.Equal(t, []string{"STARRED"}, payload.AddLabelIDs)
	assert.Equal(t, []string{"UNREAD"}, payload.RemoveLabelIDs)
}

func TestTrashAndUntrashMessage(t *testing.T) {
	var paths []string
	client := newStubClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		paths = append(paths, r.URL.Path)
		writeJSON(t, w, `{"id":"m1"}`)
	}))

	_, err := client.TrashMessage("", "m1")
	require.NoError(t, err)
	_, err = client.UntrashMessage("", "m1")
	require.NoError(t, err)

	require.Len(t, paths, 2)
	assert.True(t, strings.HasSuffix(paths[0], "/messages/m1/trash"))
	assert.True(t, strings.HasSuffix(paths[1], "/messages/m1/untrash"))
}

func TestListThreadsEmptyPage(t *testing.T) {
	client := newStubClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, `{}`)
	}))

	list, err := client.ListThreads("", ListThreadsOptions{})
	require.NoError(t, err)
	assert.NotNil(t, list.Threads)
	assert.Empty(t, list.Threads)
}

func TestGetThread(t *testing.T) {
	client := newStubClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, `{"id":"t1","messages":[{"id":"m1"},{"id":"m2"}]}`)
	}))

	thread, err := client.GetThread("", "t1", GetThreadOptions{Format: FormatFull})
	require.NoError(t, err)
	assert.Equal(t, "t1", thread.Id)
	assert.Len(t, thread.Messages, 2)
}

func TestRemoteErrorPropagation(t *testing.T) {
	client := newStubClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error":{"code":404,"message":"Requested entity was not found.","status":"NOT_FOUND"}}`))
	}))

	_, err := client.GetMessage("", "missing", GetMessageOptions{})
	require.Error(t, err)

	var remote *RemoteError
	require.ErrorAs(t, err, &remote)
	assert.Equal(t, "Requested entity was not found.", remote.Message)
	assert.Equal(t, "Requested entity was not found.", err.Error())
	assert.Equal(t, "getMessage", remote.Op)
}
