package gmail_tools

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/teemow/gmailmcp/auth"
	"github.com/teemow/gmailmcp/gmail"
	"github.com/teemow/gmailmcp/internal/server"
)

// RegisterGmailTools registers all Gmail-related tools with the MCP server
func RegisterGmailTools(s *mcpserver.MCPServer, sc *server.ServerContext) error {
	if err := RegisterMessageTools(s, sc); err != nil {
		return fmt.Errorf("failed to register message tools: %w", err)
	}
	if err := RegisterThreadTools(s, sc); err != nil {
		return fmt.Errorf("failed to register thread tools: %w", err)
	}
	if err := RegisterLabelTools(s, sc); err != nil {
		return fmt.Errorf("failed to register label tools: %w", err)
	}
	if err := RegisterDraftTools(s, sc); err != nil {
		return fmt.Errorf("failed to register draft tools: %w", err)
	}
	return nil
}

// credentialsFromArgs extracts the optional "credentials" object argument.
// Both naming conventions (access_token and accessToken) are accepted; the
// object is normalized field by field. Returns nil when the argument is
// absent so resolution falls through to the environment and the file.
func credentialsFromArgs(args map[string]interface{}) (*auth.Credentials, error) {
	val, ok := args["credentials"]
	if !ok || val == nil {
		return nil, nil
	}

	obj, ok := val.(map[string]interface{})
	if !ok {
		return nil, fmt.Errorf("credentials must be an object")
	}

	blob, err := json.Marshal(obj)
	if err != nil {
		return nil, fmt.Errorf("invalid credentials object: %w", err)
	}

	var raw auth.RawCredentials
	if err := json.Unmarshal(blob, &raw); err != nil {
		return nil, fmt.Errorf("invalid credentials object: %w", err)
	}

	creds := raw.Normalize()
	return &creds, nil
}

// clientForRequest resolves credentials for this invocation and builds a
// fresh Gmail client. Resolution runs on every call; clients are never
// reused across invocations.
func clientForRequest(ctx context.Context, sc *server.ServerContext, args map[string]interface{}) (*gmail.Client, error) {
	supplied, err := credentialsFromArgs(args)
	if err != nil {
		return nil, err
	}

	creds, err := sc.Resolver().Resolve(supplied)
	if err != nil {
		return nil, err
	}

	return gmail.NewClient(ctx, creds, sc.ClientOptions()...)
}

// stringArg returns the named string argument, or fallback when absent.
func stringArg(args map[string]interface{}, name, fallback string) string {
	if val, ok := args[name].(string); ok && val != "" {
		return val
	}
	return fallback
}

// int64Arg returns the named numeric argument, or fallback when absent.
// JSON numbers arrive as float64.
func int64Arg(args map[string]interface{}, name string, fallback int64) int64 {
	if val, ok := args[name].(float64); ok {
		return int64(val)
	}
	return fallback
}

// boolArg returns the named boolean argument, or false when absent.
func boolArg(args map[string]interface{}, name string) bool {
	val, ok := args[name].(bool)
	return ok && val
}

// stringSliceArg returns the named argument as a string slice. Accepts a
// single string or an array of strings; absent yields nil.
func stringSliceArg(args map[string]interface{}, name string) ([]string, error) {
	val, ok := args[name]
	if !ok || val == nil {
		return nil, nil
	}

	switch v := val.(type) {
	case string:
		if v == "" {
			return nil, nil
		}
		return []string{v}, nil
	case []interface{}:
		result := make([]string, 0, len(v))
		for _, item := range v {
			s, ok := item.(string)
			if !ok {
				return nil, fmt.Errorf("%s must contain only strings", name)
			}
			result = append(result, s)
		}
		return result, nil
	default:
		return nil, fmt.Errorf("%s must be a string or an array of strings", name)
	}
}

// formatArg returns the named format argument, validated against the closed
// set of detail levels. Absent yields the empty format.
func formatArg(args map[string]interface{}, name string) (gmail.Format, error) {
	val := stringArg(args, name, "")
	if val == "" {
		return "", nil
	}
	for _, f := range gmail.Formats() {
		if val == f {
			return gmail.Format(val), nil
		}
	}
	return "", fmt.Errorf("%s must be one of: %s", name, strings.Join(gmail.Formats(), ", "))
}

// splitAddresses splits a comma-separated string of email addresses
func splitAddresses(addresses string) []string {
	if addresses == "" {
		return nil
	}

	parts := strings.Split(addresses, ",")
	result := make([]string, 0, len(parts))
	for _, addr := range parts {
		trimmed := strings.TrimSpace(addr)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

// jsonResult marshals v and returns it as a text tool result.
func jsonResult(v interface{}) (*mcp.CallToolResult, error) {
	blob, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to encode result: %v", err)), nil
	}
	return mcp.NewToolResultText(string(blob)), nil
}

// withCredentials is the "credentials" parameter shared by every tool.
func withCredentials() mcp.ToolOption {
	return mcp.WithObject("credentials",
		mcp.Description("OAuth credentials to use for this call. Accepts access_token/accessToken, refresh_token/refreshToken, expiry_date/expiryDate and token_type/tokenType fields. When omitted, credentials are resolved from the GMAIL_CREDENTIALS environment variable or the credential file."),
	)
}
