package gmail

import (
	"context"

	gmail_v1 "google.golang.org/api/gmail/v1"

	"github.com/teemow/gmailmcp/auth"
)

// The package-level functions mirror the Client methods for callers that do
// not want to manage a client themselves. Each call independently resolves
// credentials and constructs a short-lived client; nothing is shared or
// cached between calls.

// ListMessages lists messages using freshly resolved credentials.
func ListMessages(ctx context.Context, supplied *auth.Credentials, userID string, opts ListMessagesOptions) (*MessageList, error) {
	c, err := NewDefaultClient(ctx, supplied)
	if err != nil {
		return nil, err
	}
	return c.ListMessages(userID, opts)
}

// SearchMessages searches messages using freshly resolved credentials.
func SearchMessages(ctx context.Context, supplied *auth.Credentials, userID, query string, opts ListMessagesOptions) (*MessageList, error) {
	c, err := NewDefaultClient(ctx, supplied)
	if err != nil {
		return nil, err
	}
	return c.SearchMessages(userID, query, opts)
}

// GetMessage retrieves a message using freshly resolved credentials.
func GetMessage(ctx context.Context, supplied *auth.Credentials, userID, messageID string, opts GetMessageOptions) (*gmail_v1.Message, error) {
	c, err := NewDefaultClient(ctx, supplied)
	if err != nil {
		return nil, err
	}
	return c.GetMessage(userID, messageID, opts)
}

// SendMessage sends a message using freshly resolved credentials.
func SendMessage(ctx context.Context, supplied *auth.Credentials, userID string, msg *OutgoingMessage) (*gmail_v1.Message, error) {
	c, err := NewDefaultClient(ctx, supplied)
	if err != nil {
		return nil, err
	}
	return c.SendMessage(userID, msg)
}

// CreateDraft creates a draft using freshly resolved credentials.
func CreateDraft(ctx context.Context, supplied *auth.Credentials, userID string, msg *OutgoingMessage) (*gmail_v1.Draft, error) {
	c, err := NewDefaultClient(ctx, supplied)
	if err != nil {
		return nil, err
	}
	return c.CreateDraft(userID, msg)
}

// ListLabels lists labels using freshly resolved credentials.
func ListLabels(ctx context.Context, supplied *auth.Credentials, userID string) (*LabelList, error) {
	c, err := NewDefaultClient(ctx, supplied)
	if err != nil {
		return nil, err
	}
	return c.ListLabels(userID)
}

// ModifyMessage changes message labels using freshly resolved credentials.
func ModifyMessage(ctx context.Context, supplied *auth.Credentials, userID, messageID string, opts ModifyMessageOptions) (*gmail_v1.Message, error) {
	c, err := NewDefaultClient(ctx, supplied)
	if err != nil {
		return nil, err
	}
	return c.ModifyMessage(userID, messageID, opts)
}

// TrashMessage trashes a message using freshly resolved credentials.
func TrashMessage(ctx context.Context, supplied *auth.Credentials, userID, messageID string) (*gmail_v1.Message, error) {
	c, err := NewDefaultClient(ctx, supplied)
	if err != nil {
		return nil, err
	}
	return c.TrashMessage(userID, messageID)
}

// UntrashMessage untrashes a message using freshly resolved credentials.
func UntrashMessage(ctx context.Context, supplied *auth.Credentials, userID, messageID string) (*gmail_v1.Message, error) {
	c, err := NewDefaultClient(ctx, supplied)
	if err != nil {
		return nil, err
	}
	return c.UntrashMessage(userID, messageID)
}

// ListThreads lists threads using freshly resolved credentials.
func ListThreads(ctx context.Context, supplied *auth.Credentials, userID string, opts ListThreadsOptions) (*ThreadList, error) {
	c, err := NewDefaultClient(ctx, supplied)
	if err != nil {
		return nil, err
	}
	return c.ListThreads(userID, opts)
}

// GetThread retrieves a thread using freshly resolved credentials.
func GetThread(ctx context.Context, supplied *auth.Credentials, userID, threadID string, opts GetThreadOptions) (*gmail_v1.Thread, error) {
	c, err := NewDefaultClient(ctx, supplied)
	if err != nil {
		return nil, err
	}
	return c.GetThread(userID, threadID, opts)
}
