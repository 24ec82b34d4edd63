package auth

import (
	"os"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	gmail_v1 "google.golang.org/api/gmail/v1"
)

const (
	// EnvClientID identifies the OAuth application.
	EnvClientID = "GMAIL_OAUTH_CLIENT_ID"

	// EnvClientSecret is the OAuth application secret.
	EnvClientSecret = "GMAIL_OAUTH_CLIENT_SECRET"

	// EnvRedirectURL overrides the OAuth redirect URL.
	EnvRedirectURL = "GMAIL_OAUTH_REDIRECT_URL"

	// DefaultRedirectURL is used when EnvRedirectURL is unset. The server
	// never listens on it; it only has to match the URL registered for the
	// OAuth application that minted the tokens.
	DefaultRedirectURL = "http://localhost:3000/oauth2callback"
)

// OAuthConfig builds the oauth2 application config from the environment.
// The client ID and secret are only needed for token refresh; a bundle with a
// non-expired access token works without them.
func OAuthConfig() *oauth2.Config {
	redirectURL := os.Getenv(EnvRedirectURL)
	if redirectURL == "" {
		redirectURL = DefaultRedirectURL
	}
	return &oauth2.Config{
		ClientID:     os.Getenv(EnvClientID),
		ClientSecret: os.Getenv(EnvClientSecret),
		Endpoint:     google.Endpoint,
		RedirectURL:  redirectURL,
		Scopes: []string{
			gmail_v1.GmailModifyScope,
		},
	}
}
