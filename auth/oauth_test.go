package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOAuthConfigDefaults(t *testing.T) {
	t.Setenv(EnvClientID, "client-id")
	t.Setenv(EnvClientSecret, "client-secret")
	t.Setenv(EnvRedirectURL, "")

	conf := OAuthConfig()
	assert.Equal(t, "client-id", conf.ClientID)
	assert.Equal(t, "client-secret", conf.ClientSecret)
	assert.Equal(t, DefaultRedirectURL, conf.RedirectURL)
	assert.NotEmpty(t, conf.Scopes)
}

func TestOAuthConfigRedirectOverride(t *testing.T) {
	t.Setenv(EnvRedirectURL, "https://example.com/callback")

	conf := OAuthConfig()
	assert.Equal(t, "https://example.com/callback", conf.RedirectURL)
}
