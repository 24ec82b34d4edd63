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

// RegisterDraftTools registers draft-related tools with the MCP server
func RegisterDraftTools(s *mcpserver.MCPServer, sc *server.ServerContext) error {
	createDraftTool := mcp.NewTool("gmail_create_draft",
		mcp.WithDescription("Create a draft email in Gmail without sending it"),
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
			mcp.Description("Gmail thread ID to place the draft into"),
		),
	)

	s.AddTool(createDraftTool, common.InstrumentedToolHandler("gmail_create_draft", "createDraft", sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handleCreateDraft(ctx, request, sc)
		}))

	return nil
}

func handleCreateDraft(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
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

	draft, err := client.CreateDraft("", msg)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to create draft: %v", err)), nil
	}

	return jsonResult(draft)
}
