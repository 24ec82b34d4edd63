package gmail_tools

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/teemow/gmailmcp/gmail"
	"github.com/teemow/gmailmcp/internal/server"
	"github.com/teemow/gmailmcp/internal/tools/common"
)

// RegisterMessageTools registers message-related tools with the MCP server
func RegisterMessageTools(s *mcpserver.MCPServer, sc *server.ServerContext) error {
	// List messages tool
	listMessagesTool := mcp.NewTool("gmail_list_messages",
		mcp.WithDescription("List Gmail messages, newest first, with optional filters"),
		withCredentials(),
		mcp.WithString("query",
			mcp.Description("Gmail search query (e.g., 'is:unread', 'from:user@example.com')"),
		),
		mcp.WithString("labelIds",
			mcp.Description("Label ID (string) or array of label IDs to filter by"),
		),
		mcp.WithNumber("maxResults",
			mcp.Description("Maximum number of messages to return"),
		),
		mcp.WithString("pageToken",
			mcp.Description("Page token from a previous listing to fetch the next page"),
		),
		mcp.WithBoolean("includeSpamTrash",
			mcp.Description("Include messages from SPAM and TRASH (default: false)"),
		),
	)

	s.AddTool(listMessagesTool, common.InstrumentedToolHandler("gmail_list_messages", "listMessages", sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handleListMessages(ctx, request, sc)
		}))

	// Search messages tool
	searchMessagesTool := mcp.NewTool("gmail_search_messages",
		mcp.WithDescription("Search Gmail messages with a Gmail query string"),
		withCredentials(),
		mcp.WithString("query",
			mcp.Required(),
			mcp.Description("Gmail search query (e.g., 'subject:invoice newer_than:7d')"),
		),
		mcp.WithNumber("maxResults",
			mcp.Description("Maximum number of messages to return"),
		),
		mcp.WithString("pageToken",
			mcp.Description("Page token from a previous search to fetch the next page"),
		),
	)

	s.AddTool(searchMessagesTool, common.InstrumentedToolHandler("gmail_search_messages", "searchMessages", sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handleSearchMessages(ctx, request, sc)
		}))

	// Get message tool
	getMessageTool := mcp.NewTool("gmail_get_message",
		mcp.WithDescription("Retrieve a single Gmail message"),
		withCredentials(),
		mcp.WithString("messageId",
			mcp.Required(),
			mcp.Description("The ID of the message to retrieve"),
		),
		mcp.WithString("format",
			mcp.Description("Detail level for the returned message (default: full)"),
			mcp.Enum(gmail.Formats()...),
		),
		mcp.WithString("metadataHeaders",
			mcp.Description("Header name (string) or array of header names to include with format 'metadata'"),
		),
	)

	s.AddTool(getMessageTool, common.InstrumentedToolHandler("gmail_get_message", "getMessage", sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handleGetMessage(ctx, request, sc)
		}))

	// Send message tool
	sendMessageTool := mcp.NewTool("gmail_send_message",
		mcp.WithDescription("Send an email through Gmail, optionally as a reply within an existing thread"),
		withCredentials(),
		mcp.WithString("to",
			mcp.Required(),
			mcp.Description("Recipient email address(es), comma-separated for multiple recipients"),
		),
		mcp.WithString("subject",
			mcp.Description("Email subject (default: '(no subject)')"),
		),
		mcp.WithString("body",
			mcp.Required(),
			mcp.Description("Email body content"),
		),
		mcp.WithString("cc",
			mcp.Description("CC email address(es), comma-separated for multiple recipients"),
		),
		mcp.WithString("bcc",
			mcp.Description("BCC email address(es), comma-separated for multiple recipients"),
		),
		mcp.WithBoolean("isHTML",
			mcp.Description("Whether the body is HTML (default: false for plain text)"),
		),
		mcp.WithString("inReplyTo",
			mcp.Description("RFC 2822 Message-ID being replied to. Sets In-Reply-To and References headers."),
		),
		mcp.WithString("threadId",
			mcp.Description("Gmail thread ID to place the message into"),
		),
	)

	s.AddTool(sendMessageTool, common.InstrumentedToolHandler("gmail_send_message", "sendMessage", sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handleSendMessage(ctx, request, sc)
		}))

	// Modify message tool
	modifyMessageTool := mcp.NewTool("gmail_modify_message",
		mcp.WithDescription("Add and remove labels on a Gmail message"),
		withCredentials(),
		mcp.WithString("messageId",
			mcp.Required(),
			mcp.Description("The ID of the message to modify"),
		),
		mcp.WithString("addLabelIds",
			mcp.Description("Label ID (string) or array of label IDs to add"),
		),
		mcp.WithString("removeLabelIds",
			mcp.Description("Label ID (string) or array of label IDs to remove"),
		),
	)

	s.AddTool(modifyMessageTool, common.InstrumentedToolHandler("gmail_modify_message", "modifyMessage", sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handleModifyMessage(ctx, request, sc)
		}))

	// Trash message tool
	trashMessageTool := mcp.NewTool("gmail_trash_message",
		mcp.WithDescription("Move a Gmail message to the trash"),
		withCredentials(),
		mcp.WithString("messageId",
			mcp.Required(),
			mcp.Description("The ID of the message to trash"),
		),
	)

	s.AddTool(trashMessageTool, common.InstrumentedToolHandler("gmail_trash_message", "trashMessage", sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handleTrashMessage(ctx, request, sc)
		}))

	// Untrash message tool
	untrashMessageTool := mcp.NewTool("gmail_untrash_message",
		mcp.WithDescription("Move a Gmail message out of the trash"),
		withCredentials(),
		mcp.WithString("messageId",
			mcp.Required(),
			mcp.Description("The ID of the message to untrash"),
		),
	)

	s.AddTool(untrashMessageTool, common.InstrumentedToolHandler("gmail_untrash_message", "untrashMessage", sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handleUntrashMessage(ctx, request, sc)
		}))

	return nil
}

func handleListMessages(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	labelIDs, err := stringSliceArg(args, "labelIds")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	client, err := clientForRequest(ctx, sc, args)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	list, err := client.ListMessages("", gmail.ListMessagesOptions{
		Query:            stringArg(args, "query", ""),
		LabelIDs:         labelIDs,
		MaxResults:       int64Arg(args, "maxResults", 0),
		PageToken:        stringArg(args, "pageToken", ""),
		IncludeSpamTrash: boolArg(args, "includeSpamTrash"),
	})
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to list messages: %v", err)), nil
	}

	return jsonResult(list)
}

func handleSearchMessages(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	query, ok := args["query"].(string)
	if !ok || query == "" {
		return mcp.NewToolResultError("query is required"), nil
	}

	client, err := clientForRequest(ctx, sc, args)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	list, err := client.SearchMessages("", query, gmail.ListMessagesOptions{
		MaxResults: int64Arg(args, "maxResults", 0),
		PageToken:  stringArg(args, "pageToken", ""),
	})
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to search messages: %v", err)), nil
	}

	return jsonResult(list)
}

func handleGetMessage(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	messageID, ok := args["messageId"].(string)
	if !ok || messageID == "" {
		return mcp.NewToolResultError("messageId is required"), nil
	}

	format, err := formatArg(args, "format")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	metadataHeaders, err := stringSliceArg(args, "metadataHeaders")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	client, err := clientForRequest(ctx, sc, args)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	msg, err := client.GetMessage("", messageID, gmail.GetMessageOptions{
		Format:          format,
		MetadataHeaders: metadataHeaders,
	})
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to get message: %v", err)), nil
	}

	return jsonResult(msg)
}

func handleSendMessage(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	toStr, ok := args["to"].(string)
	if !ok || toStr == "" {
		return mcp.NewToolResultError("'to' field is required"), nil
	}

	body, ok := args["body"].(string)
	if !ok {
		return mcp.NewToolResultError("'body' field is required"), nil
	}

	client, err := clientForRequest(ctx, sc, args)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	msg := &gmail.OutgoingMessage{
		To:        splitAddresses(toStr),
		Cc:        splitAddresses(stringArg(args, "cc", "")),
		Bcc:       splitAddresses(stringArg(args, "bcc", "")),
		Subject:   stringArg(args, "subject", ""),
		Body:      body,
		IsHTML:    boolArg(args, "isHTML"),
		InReplyTo: stringArg(args, "inReplyTo", ""),
		ThreadID:  stringArg(args, "threadId", ""),
	}

	sent, err := client.SendMessage("", msg)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to send message: %v", err)), nil
	}

	return jsonResult(sent)
}

func handleModifyMessage(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	messageID, ok := args["messageId"].(string)
	if !ok || messageID == "" {
		return mcp.NewToolResultError("messageId is required"), nil
	}

	addLabelIDs, err := stringSliceArg(args, "addLabelIds")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	removeLabelIDs, err := stringSliceArg(args, "removeLabelIds")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	if len(addLabelIDs) == 0 && len(removeLabelIDs) == 0 {
		return mcp.NewToolResultError("at least one of addLabelIds or removeLabelIds is required"), nil
	}

	client, err := clientForRequest(ctx, sc, args)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	msg, err := client.ModifyMessage("", messageID, gmail.ModifyMessageOptions{
		AddLabelIDs:    addLabelIDs,
		RemoveLabelIDs: removeLabelIDs,
	})
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to modify message: %v", err)), nil
	}

	return jsonResult(msg)
}

func handleTrashMessage(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	messageID, ok := args["messageId"].(string)
	if !ok || messageID == "" {
		return mcp.NewToolResultError("messageId is required"), nil
	}

	client, err := clientForRequest(ctx, sc, args)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	msg, err := client.TrashMessage("", messageID)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to trash message: %v", err)), nil
	}

	return jsonResult(msg)
}

func handleUntrashMessage(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	messageID, ok := args["messageId"].(string)
	if !ok || messageID == "" {
		return mcp.NewToolResultError("messageId is required"), nil
	}

	client, err := clientForRequest(ctx, sc, args)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	msg, err := client.UntrashMessage("", messageID)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to untrash message: %v", err)), nil
	}

	return jsonResult(msg)
}
