// Package gmail_tools provides MCP (Model Context Protocol) tools for
// interacting with Gmail.
//
// This package exposes Gmail functionality through MCP tools that can be
// called by AI agents or other MCP clients. It provides capabilities for:
//
// Message Management:
//   - gmail_list_messages: List messages with optional filters
//   - gmail_search_messages: Search messages with a Gmail query string
//   - gmail_get_message: Retrieve a single message at a chosen detail level
//   - gmail_send_message: Send a message, optionally as a threaded reply
//   - gmail_modify_message: Add and remove labels on a message
//   - gmail_trash_message: Move a message to the trash
//   - gmail_untrash_message: Move a message out of the trash
//
// Thread Management:
//   - gmail_list_threads: List threads with optional filters
//   - gmail_get_thread: Retrieve a thread with all its messages
//
// Labels and Drafts:
//   - gmail_list_labels: List all labels in the mailbox
//   - gmail_create_draft: Create a draft message
//
// Every tool accepts an optional "credentials" object argument. When absent,
// credentials are resolved from the GMAIL_CREDENTIALS environment variable or
// the credential file on every invocation; nothing is cached between calls.
// Operational failures (missing credentials, remote API errors) are reported
// as tool error results, never as protocol errors.
package gmail_tools
