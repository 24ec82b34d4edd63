package gmail

import (
	gmail_v1 "google.golang.org/api/gmail/v1"
)

// defaultUserID addresses the authenticated user's own mailbox.
const defaultUserID = "me"

// Format selects the detail level for message and thread retrieval.
type Format string

const (
	FormatMinimal  Format = "minimal"
	FormatFull     Format = "full"
	FormatMetadata Format = "metadata"
	FormatRaw      Format = "raw"
)

// Formats lists the closed set of valid detail levels.
func Formats() []string {
	return []string{
		string(FormatMinimal),
		string(FormatFull),
		string(FormatMetadata),
		string(FormatRaw),
	}
}

// ListMessagesOptions narrows a message listing. Zero values are not
// forwarded to the API.
type ListMessagesOptions struct {
	Query            string
	LabelIDs         []string
	MaxResults       int64
	PageToken        string
	IncludeSpamTrash bool
}

// GetMessageOptions selects the detail level for a single message.
type GetMessageOptions struct {
	Format Format
	// MetadataHeaders restricts the headers returned with FormatMetadata.
	MetadataHeaders []string
}

// ModifyMessageOptions adds and removes labels on a message.
type ModifyMessageOptions struct {
	AddLabelIDs    []string
	RemoveLabelIDs []string
}

// ListThreadsOptions narrows a thread listing.
type ListThreadsOptions struct {
	Query            string
	LabelIDs         []string
	MaxResults       int64
	PageToken        string
	IncludeSpamTrash bool
}

// GetThreadOptions selects the detail level for a single thread.
type GetThreadOptions struct {
	Format Format
	// MetadataHeaders restricts the headers returned with FormatMetadata.
	MetadataHeaders []string
}

// OutgoingMessage describes a message to be sent or drafted.
type OutgoingMessage struct {
	To      []string
	Cc      []string
	Bcc     []string
	Subject string
	Body    string
	IsHTML  bool
	// InReplyTo is the RFC 2822 Message-ID being replied to. When set, the
	// envelope carries In-Reply-To and References headers citing it.
	InReplyTo string
	// ThreadID places the message into an existing Gmail thread.
	ThreadID string
}

// MessageList is a page of messages. Messages is never nil; an empty page is
// an empty slice.
type MessageList struct {
	Messages           []*gmail_v1.Message `json:"messages"`
	NextPageToken      string              `json:"nextPageToken,omitempty"`
	ResultSizeEstimate int64               `json:"resultSizeEstimate,omitempty"`
}

// ThreadList is a page of threads. Threads is never nil.
type ThreadList struct {
	Threads            []*gmail_v1.Thread `json:"threads"`
	NextPageToken      string             `json:"nextPageToken,omitempty"`
	ResultSizeEstimate int64              `json:"resultSizeEstimate,omitempty"`
}

// LabelList holds all labels in a mailbox. Labels is never nil.
type LabelList struct {
	Labels []*gmail_v1.Label `json:"labels"`
}
