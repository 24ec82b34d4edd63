package auth

import (
	"encoding/json"
	"os"
	"time"

	"golang.org/x/oauth2"
)

const (
	// EnvCredentials holds a full credential bundle as a JSON string.
	EnvCredentials = "GMAIL_CREDENTIALS"

	// EnvCredentialsPath points at a JSON credential file on disk.
	EnvCredentialsPath = "GMAIL_CREDENTIALS_PATH"

	// DefaultCredentialsPath is used when EnvCredentialsPath is unset.
	DefaultCredentialsPath = ".gmail-server-credentials.json"
)

// Credentials is the canonical credential bundle. Fields may be partially
// populated; no semantic validation (e.g. expiry) happens at this layer.
type Credentials struct {
	AccessToken  string `json:"access_token,omitempty"`
	RefreshToken string `json:"refresh_token,omitempty"`
	ExpiryDate   int64  `json:"expiry_date,omitempty"` // Unix milliseconds
	TokenType    string `json:"token_type,omitempty"`
}

// RawCredentials carries every logical field under both naming conventions
// found in credential files in the wild: the snake_case convention used by
// Google's OAuth token responses and the camelCase convention used by the
// Node.js client libraries. Decode into this type, then Normalize.
type RawCredentials struct {
	AccessToken       string `json:"access_token,omitempty"`
	AccessTokenCamel  string `json:"accessToken,omitempty"`
	RefreshToken      string `json:"refresh_token,omitempty"`
	RefreshTokenCamel string `json:"refreshToken,omitempty"`
	ExpiryDate        int64  `json:"expiry_date,omitempty"`
	ExpiryDateCamel   int64  `json:"expiryDate,omitempty"`
	TokenType         string `json:"token_type,omitempty"`
	TokenTypeCamel    string `json:"tokenType,omitempty"`
}

// Normalize collapses the dual-convention bundle into the canonical record.
// Each field is resolved independently: the snake_case value wins when both
// are present, the camelCase value is the fallback, and absent fields stay
// absent. Normalize never fails.
func (r RawCredentials) Normalize() Credentials {
	c := Credentials{
		AccessToken:  r.AccessToken,
		RefreshToken: r.RefreshToken,
		ExpiryDate:   r.ExpiryDate,
		TokenType:    r.TokenType,
	}
	if c.AccessToken == "" {
		c.AccessToken = r.AccessTokenCamel
	}
	if c.RefreshToken == "" {
		c.RefreshToken = r.RefreshTokenCamel
	}
	if c.ExpiryDate == 0 {
		c.ExpiryDate = r.ExpiryDateCamel
	}
	if c.TokenType == "" {
		c.TokenType = r.TokenTypeCamel
	}
	return c
}

// Token converts the bundle into an oauth2 token suitable for building an
// authenticated HTTP client.
func (c *Credentials) Token() *oauth2.Token {
	tok := &oauth2.Token{
		AccessToken:  c.AccessToken,
		RefreshToken: c.RefreshToken,
		TokenType:    c.TokenType,
	}
	if c.ExpiryDate > 0 {
		tok.Expiry = time.UnixMilli(c.ExpiryDate)
	}
	return tok
}

// Resolver resolves credentials from the supplied bundle, the environment and
// the filesystem. The lookup functions are injectable so tests can run without
// touching process state; NewResolver wires the real os functions.
//
// Resolution is stateless: every Resolve call re-reads the environment and
// filesystem, and nothing is cached across calls.
type Resolver struct {
	Getenv   func(key string) string
	ReadFile func(path string) ([]byte, error)
}

// NewResolver returns a Resolver backed by the process environment and the
// real filesystem.
func NewResolver() *Resolver {
	return &Resolver{
		Getenv:   os.Getenv,
		ReadFile: os.ReadFile,
	}
}

// Resolve returns the effective credential bundle, checking sources in strict
// priority order: the directly supplied bundle, the GMAIL_CREDENTIALS
// environment variable, then the credential file. The first source present
// wins; sources are never merged. A present but malformed source is a fatal
// error, not a fall-through.
func (r *Resolver) Resolve(supplied *Credentials) (*Credentials, error) {
	if supplied != nil {
		return supplied, nil
	}

	if blob := r.Getenv(EnvCredentials); blob != "" {
		var raw RawCredentials
		if err := json.Unmarshal([]byte(blob), &raw); err != nil {
			return nil, &ResolutionError{Kind: KindInvalidJSON, Source: SourceEnvironment, Err: err}
		}
		creds := raw.Normalize()
		return &creds, nil
	}

	path := r.Getenv(EnvCredentialsPath)
	if path == "" {
		path = DefaultCredentialsPath
	}
	data, err := r.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &ResolutionError{Kind: KindNotFound, Err: err}
		}
		return nil, &ResolutionError{Kind: KindFileUnreadable, Source: SourceFile, Path: path, Err: err}
	}

	var raw RawCredentials
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, &ResolutionError{Kind: KindInvalidJSON, Source: SourceFile, Path: path, Err: err}
	}
	creds := raw.Normalize()
	return &creds, nil
}

// Resolve resolves credentials using the process environment and filesystem.
// See Resolver.Resolve for the priority order.
func Resolve(supplied *Credentials) (*Credentials, error) {
	return NewResolver().Resolve(supplied)
}
