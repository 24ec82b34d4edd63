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

// RegisterThreadTools registers thread-related tools with the MCP server
func RegisterThreadTools(s *mcpserver.MCPServer, sc *server.ServerContext) error {
	// List threads tool
	listThreadsTool := mcp.NewTool("gmail_list_threads",
		mcp.WithDescription("List Gmail threads, newest first, with optional filters"),
		withCredentials(),
		mcp.WithString("query",
			mcp.Description("Gmail search query (e.g., 'in:inbox', 'from:user@example.com')"),
		),
		mcp.WithString("labelIds",
			mcp.Description("Label ID (string) or array of label IDs to filter by"),
		),
		mcp.WithNumber("maxResults",
			mcp.Description("Maximum number of threads to return"),
		),
		mcp.WithString("pageToken",
			mcp.Description("Page token from a previous listing to fetch the next page"),
		),
		mcp.WithBoolean("includeSpamTrash",
			mcp.Description("Include threads from SPAM and TRASH (default: false)"),
		),
	)

	s.AddTool(listThreadsTool, common.InstrumentedToolHandler("gmail_list_threads", "listThreads", sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handleListThreads(ctx, request, sc)
		}))

	// Get thread tool
	getThreadTool := mcp.NewTool("gmail_get_thread",
		mcp.WithDescription("Retrieve a Gmail thread with all its messages"),
		withCredentials(),
		mcp.WithString("threadId",
			mcp.Required(),
			mcp.Description("The ID of the thread to retrieve"),
		),
		mcp.WithString("format",
			mcp.Description("Detail level for the returned messages (default: full)"),
			mcp.Enum(gmail.Formats()...),
		),
		mcp.WithString("metadataHeaders",
			mcp.Description("Header name (string) or array of header names to include with format 'metadata'"),
		),
	)

	s.AddTool(getThreadTool, common.InstrumentedToolHandler("gmail_get_thread", "getThread", sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handleGetThread(ctx, request, sc)
		}))

	return nil
}

func handleListThreads(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	labelIDs, err := stringSliceArg(args, "labelIds")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	client, err := clientForRequest(ctx, sc, args)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	list, err := client.ListThreads("", gmail.ListThreadsOptions{
		Query:            stringArg(args, "query", ""),
		LabelIDs:         labelIDs,
		MaxResults:       int64Arg(args, "maxResults", 0),
		PageToken:        stringArg(args, "pageToken", ""),
		IncludeSpamTrash: boolArg(args, "includeSpamTrash"),
	})
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to list threads: %v", err)), nil
	}

	return jsonResult(list)
}

func handleGetThread(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	threadID, ok := args["threadId"].(string)
	if !ok || threadID == "" {
		return mcp.NewToolResultError("threadId is required"), nil
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

	thread, err := client.GetThread("", threadID, gmail.GetThreadOptions{
		Format:          format,
		MetadataHeaders: metadataHeaders,
	})
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to get thread: %v", err)), nil
	}

	return jsonResult(thread)
}
