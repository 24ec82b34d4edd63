// Package auth resolves and normalizes the OAuth credential bundle used to
// authenticate against the Gmail API.
//
// Credentials are resolved in strict priority order:
//  1. A bundle supplied directly by the caller.
//  2. A JSON bundle in the GMAIL_CREDENTIALS environment variable.
//  3. A JSON file at GMAIL_CREDENTIALS_PATH (default: .gmail-server-credentials.json).
//
// Bundles may use either snake_case field names (access_token) or camelCase
// field names (accessToken); both conventions are accepted field by field and
// normalized into the canonical Credentials record.
//
// This package does not implement any OAuth consent or refresh flow. Token
// acquisition is the caller's responsibility; refresh is delegated to the
// oauth2 TokenSource built from the resolved refresh token.
package auth
