package gmail

import (
	"context"
	"fmt"
	"log/slog"

	gmail_v1 "google.golang.org/api/gmail/v1"
	"google.golang.org/api/option"

	"github.com/teemow/gmailmcp/auth"
)

// Client wraps an authenticated Gmail Users service. It is stateless beyond
// the embedded service handle; every method is an independent round trip.
type Client struct {
	svc    *gmail_v1.UsersService
	logger *slog.Logger
}

// NewClient builds a client from an already-resolved credential bundle.
// Additional client options are forwarded to the SDK, which is how tests
// point the client at a stub endpoint.
func NewClient(ctx context.Context, creds *auth.Credentials, opts ...option.ClientOption) (*Client, error) {
	conf := auth.OAuthConfig()
	httpClient := conf.Client(ctx, creds.Token())

	clientOpts := append([]option.ClientOption{option.WithHTTPClient(httpClient)}, opts...)
	svc, err := gmail_v1.NewService(ctx, clientOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create Gmail service: %w", err)
	}

	return &Client{
		svc:    svc.Users,
		logger: slog.Default(),
	}, nil
}

// NewDefaultClient resolves credentials (supplied bundle, environment, file)
// and builds a client from the result. Resolution failures abort construction
// entirely; no partial client is returned.
func NewDefaultClient(ctx context.Context, supplied *auth.Credentials, opts ...option.ClientOption) (*Client, error) {
	creds, err := auth.Resolve(supplied)
	if err != nil {
		return nil, err
	}
	return NewClient(ctx, creds, opts...)
}

// ListMessages lists messages in the mailbox, forwarding only the recognized
// options. The returned page's Messages slice is never nil.
func (c *Client) ListMessages(userID string, opts ListMessagesOptions) (*MessageList, error) {
	if userID == "" {
		userID = defaultUserID
	}

	req := c.svc.Messages.List(userID)
	if opts.Query != "" {
		req.Q(opts.Query)
	}
	if len(opts.LabelIDs) > 0 {
		req.LabelIds(opts.LabelIDs...)
	}
	if opts.MaxResults > 0 {
		req.MaxResults(opts.MaxResults)
	}
	if opts.PageToken != "" {
		req.PageToken(opts.PageToken)
	}
	if opts.IncludeSpamTrash {
		req.IncludeSpamTrash(true)
	}

	res, err := req.Do()
	if err != nil {
		return nil, c.remoteError("listMessages", err)
	}

	list := &MessageList{
		Messages:           res.Messages,
		NextPageToken:      res.NextPageToken,
		ResultSizeEstimate: res.ResultSizeEstimate,
	}
	if list.Messages == nil {
		list.Messages = []*gmail_v1.Message{}
	}
	return list, nil
}

// SearchMessages lists messages matching a Gmail search query. It is
// ListMessages with the query made explicit.
func (c *Client) SearchMessages(userID, query string, opts ListMessagesOptions) (*MessageList, error) {
	opts.Query = query
	return c.ListMessages(userID, opts)
}

// GetMessage retrieves a single message at the requested detail level.
func (c *Client) GetMessage(userID, messageID string, opts GetMessageOptions) (*gmail_v1.Message, error) {
	if userID == "" {
		userID = defaultUserID
	}

	req := c.svc.Messages.Get(userID, messageID)
	if opts.Format != "" {
		req.Format(string(opts.Format))
	}
	if len(opts.MetadataHeaders) > 0 {
		req.MetadataHeaders(opts.MetadataHeaders...)
	}

	msg, err := req.Do()
	if err != nil {
		return nil, c.remoteError("getMessage", err)
	}
	return msg, nil
}

// SendMessage builds the RFC 2822 envelope for msg and sends it.
func (c *Client) SendMessage(userID string, msg *OutgoingMessage) (*gmail_v1.Message, error) {
	if userID == "" {
		userID = defaultUserID
	}

	sent, err := c.svc.Messages.Send(userID, &gmail_v1.Message{
		Raw:      msg.encode(),
		ThreadId: msg.ThreadID,
	}).Do()
	if err != nil {
		return nil, c.remoteError("sendMessage", err)
	}
	return sent, nil
}

// CreateDraft builds the RFC 2822 envelope for msg and stores it as a draft.
func (c *Client) CreateDraft(userID string, msg *OutgoingMessage) (*gmail_v1.Draft, error) {
	if userID == "" {
		userID = defaultUserID
	}

	draft, err := c.svc.Drafts.Create(userID, &gmail_v1.Draft{
		Message: &gmail_v1.Message{
			Raw:      msg.encode(),
			ThreadId: msg.ThreadID,
		},
	}).Do()
	if err != nil {
		return nil, c.remoteError("createDraft", err)
	}
	return draft, nil
}

// ListLabels lists all labels in the mailbox. The returned Labels slice is
// never nil.
func (c *Client) ListLabels(userID string) (*LabelList, error) {
	if userID == "" {
		userID = defaultUserID
	}

	res, err := c.svc.Labels.List(userID).Do()
	if err != nil {
		return nil, c.remoteError("listLabels", err)
	}

	list := &LabelList{Labels: res.Labels}
	if list.Labels == nil {
		list.Labels = []*gmail_v1.Label{}
	}
	return list, nil
}

// ModifyMessage adds and removes labels on a message.
func (c *Client) ModifyMessage(userID, messageID string, opts ModifyMessageOptions) (*gmail_v1.Message, error) {
	if userID == "" {
		userID = defaultUserID
	}

	msg, err := c.svc.Messages.Modify(userID, messageID, &gmail_v1.ModifyMessageRequest{
		AddLabelIds:    opts.AddLabelIDs,
		RemoveLabelIds: opts.RemoveLabelIDs,
	}).Do()
	if err != nil {
		return nil, c.remoteError("modifyMessage", err)
	}
	return msg, nil
}

// TrashMessage moves a message to the trash.
func (c *Client) TrashMessage(userID, messageID string) (*gmail_v1.Message, error) {
	if userID == "" {
		userID = defaultUserID
	}

	msg, err := c.svc.Messages.Trash(userID, messageID).Do()
	if err != nil {
		return nil, c.remoteError("trashMessage", err)
	}
	return msg, nil
}

// UntrashMessage moves a message out of the trash.
func (c *Client) UntrashMessage(userID, messageID string) (*gmail_v1.Message, error) {
	if userID == "" {
		userID = defaultUserID
	}

	msg, err := c.svc.Messages.Untrash(userID, messageID).Do()
	if err != nil {
		return nil, c.remoteError("untrashMessage", err)
	}
	return msg, nil
}

// ListThreads lists threads in the mailbox. The returned page's Threads
// slice is never nil.
func (c *Client) ListThreads(userID string, opts ListThreadsOptions) (*ThreadList, error) {
	if userID == "" {
		userID = defaultUserID
	}

	req := c.svc.Threads.List(userID)
	if opts.Query != "" {
		req.Q(opts.Query)
	}
	if len(opts.LabelIDs) > 0 {
		req.LabelIds(opts.LabelIDs...)
	}
	if opts.MaxResults > 0 {
		req.MaxResults(opts.MaxResults)
	}
	if opts.PageToken != "" {
		req.PageToken(opts.PageToken)
	}
	if opts.IncludeSpamTrash {
		req.IncludeSpamTrash(true)
	}

	res, err := req.Do()
	if err != nil {
		return nil, c.remoteError("listThreads", err)
	}

	list := &ThreadList{
		Threads:            res.Threads,
		NextPageToken:      res.NextPageToken,
		ResultSizeEstimate: res.ResultSizeEstimate,
	}
	if list.Threads == nil {
		list.Threads = []*gmail_v1.Thread{}
	}
	return list, nil
}

// GetThread retrieves a thread with all its messages at the requested detail
// level.
func (c *Client) GetThread(userID, threadID string, opts GetThreadOptions) (*gmail_v1.Thread, error) {
	if userID == "" {
		userID = defaultUserID
	}

	req := c.svc.Threads.Get(userID, threadID)
	if opts.Format != "" {
		req.Format(string(opts.Format))
	}
	if len(opts.MetadataHeaders) > 0 {
		req.MetadataHeaders(opts.MetadataHeaders...)
	}

	thread, err := req.Do()
	if err != nil {
		return nil, c.remoteError("getThread", err)
	}
	return thread, nil
}
