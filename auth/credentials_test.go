package auth

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeResolver returns a Resolver backed by an in-memory environment and
// filesystem so resolution can be tested without touching process state.
func fakeResolver(env map[string]string, files map[string][]byte) *Resolver {
	return &Resolver{
		Getenv: func(key string) string {
			return env[key]
		},
		ReadFile: func(path string) ([]byte, error) {
			data, ok := files[path]
			if !ok {
				return nil, os.ErrNotExist
			}
			return data, nil
		},
	}
}

func TestResolvePriorityOrder(t *testing.T) {
	// All three sources present: the supplied bundle must win.
	env := map[string]string{
		EnvCredentials: `{"access_token":"from-env"}`,
	}
	files := map[string][]byte{
		DefaultCredentialsPath: []byte(`{"access_token":"from-file"}`),
	}
	r := fakeResolver(env, files)

	supplied := &Credentials{AccessToken: "from-caller"}
	creds, err := r.Resolve(supplied)
	require.NoError(t, err)
	assert.Equal(t, "from-caller", creds.AccessToken)

	// Without a supplied bundle the environment wins over the file.
	creds, err = r.Resolve(nil)
	require.NoError(t, err)
	assert.Equal(t, "from-env", creds.AccessToken)

	// With only the file present, the file is used.
	delete(env, EnvCredentials)
	creds, err = r.Resolve(nil)
	require.NoError(t, err)
	assert.Equal(t, "from-file", creds.AccessToken)
}

func TestResolveSuppliedBundleReturnedAsIs(t *testing.T) {
	// A partially empty supplied bundle is returned unvalidated, without
	// falling through to other sources.
	r := fakeResolver(map[string]string{
		EnvCredentials: `{"access_token":"from-env"}`,
	}, nil)

	supplied := &Credentials{}
	creds, err := r.Resolve(supplied)
	require.NoError(t, err)
	assert.Same(t, supplied, creds)
}

func TestResolveCredentialsPathOverride(t *testing.T) {
	r := fakeResolver(map[string]string{
		EnvCredentialsPath: "/etc/gmail/creds.json",
	}, map[string][]byte{
		"/etc/gmail/creds.json": []byte(`{"accessToken":"custom-path"}`),
	})

	creds, err := r.Resolve(nil)
	require.NoError(t, err)
	assert.Equal(t, "custom-path", creds.AccessToken)
}

func TestResolveInvalidEnvJSON(t *testing.T) {
	r := fakeResolver(map[string]string{
		EnvCredentials: `{not json`,
	}, nil)

	_, err := r.Resolve(nil)
	require.Error(t, err)

	var resErr *ResolutionError
	require.ErrorAs(t, err, &resErr)
	assert.Equal(t, KindInvalidJSON, resErr.Kind)
	assert.Equal(t, SourceEnvironment, resErr.Source)
	assert.Contains(t, err.Error(), EnvCredentials)
}

func TestResolveInvalidFileJSON(t *testing.T) {
	r := fakeResolver(nil, map[string][]byte{
		DefaultCredentialsPath: []byte(`{not json`),
	})

	_, err := r.Resolve(nil)
	require.Error(t, err)

	var resErr *ResolutionError
	require.ErrorAs(t, err, &resErr)
	assert.Equal(t, KindInvalidJSON, resErr.Kind)
	assert.Equal(t, SourceFile, resErr.Source)
	assert.Contains(t, err.Error(), DefaultCredentialsPath)
}

func TestResolveEnvAndFileErrorsDistinguishable(t *testing.T) {
	envErr := func() error {
		r := fakeResolver(map[string]string{EnvCredentials: `!`}, nil)
		_, err := r.Resolve(nil)
		return err
	}()
	fileErr := func() error {
		r := fakeResolver(nil, map[string][]byte{DefaultCredentialsPath: []byte(`!`)})
		_, err := r.Resolve(nil)
		return err
	}()

	require.Error(t, envErr)
	require.Error(t, fileErr)
	assert.NotEqual(t, envErr.Error(), fileErr.Error())
}

func TestResolveFileUnreadable(t *testing.T) {
	r := fakeResolver(nil, nil)
	r.ReadFile = func(path string) ([]byte, error) {
		return nil, errors.New("permission denied")
	}

	_, err := r.Resolve(nil)
	require.Error(t, err)

	var resErr *ResolutionError
	require.ErrorAs(t, err, &resErr)
	assert.Equal(t, KindFileUnreadable, resErr.Kind)
	assert.Contains(t, err.Error(), "unreadable")
}

func TestResolveNothingFound(t *testing.T) {
	r := fakeResolver(nil, nil)

	_, err := r.Resolve(nil)
	require.Error(t, err)

	var resErr *ResolutionError
	require.ErrorAs(t, err, &resErr)
	assert.Equal(t, KindNotFound, resErr.Kind)

	// The error must enumerate all three supply methods.
	msg := err.Error()
	assert.Contains(t, msg, "directly")
	assert.Contains(t, msg, EnvCredentials)
	assert.Contains(t, msg, EnvCredentialsPath)
}

func TestResolveRealFilesystem(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "creds.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"accessToken":"X","refreshToken":"Y"}`), 0o600))

	t.Setenv(EnvCredentials, "")
	t.Setenv(EnvCredentialsPath, path)

	creds, err := Resolve(nil)
	require.NoError(t, err)
	assert.Equal(t, "X", creds.AccessToken)
	assert.Equal(t, "Y", creds.RefreshToken)
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		raw  RawCredentials
		want Credentials
	}{
		{
			name: "snake convention only",
			raw: RawCredentials{
				AccessToken:  "a",
				RefreshToken: "r",
				ExpiryDate:   1700000000000,
				TokenType:    "Bearer",
			},
			want: Credentials{
				AccessToken:  "a",
				RefreshToken: "r",
				ExpiryDate:   1700000000000,
				TokenType:    "Bearer",
			},
		},
		{
			name: "camel convention only",
			raw: RawCredentials{
				AccessTokenCamel:  "a",
				RefreshTokenCamel: "r",
				ExpiryDateCamel:   1700000000000,
				TokenTypeCamel:    "Bearer",
			},
			want: Credentials{
				AccessToken:  "a",
				RefreshToken: "r",
				ExpiryDate:   1700000000000,
				TokenType:    "Bearer",
			},
		},
		{
			name: "mixed conventions resolve field by field",
			raw: RawCredentials{
				AccessToken:       "snake-access",
				RefreshTokenCamel: "camel-refresh",
			},
			want: Credentials{
				AccessToken:  "snake-access",
				RefreshToken: "camel-refresh",
			},
		},
		{
			name: "snake wins over camel per field",
			raw: RawCredentials{
				AccessToken:      "snake",
				AccessTokenCamel: "camel",
			},
			want: Credentials{
				AccessToken: "snake",
			},
		},
		{
			name: "absent fields stay absent",
			raw:  RawCredentials{},
			want: Credentials{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.raw.Normalize())
		})
	}
}

func TestToken(t *testing.T) {
	creds := &Credentials{
		AccessToken:  "a",
		RefreshToken: "r",
		ExpiryDate:   1700000000000,
		TokenType:    "Bearer",
	}
	tok := creds.Token()
	assert.Equal(t, "a", tok.AccessToken)
	assert.Equal(t, "r", tok.RefreshToken)
	assert.Equal(t, "Bearer", tok.TokenType)
	assert.Equal(t, time.UnixMilli(1700000000000), tok.Expiry)

	// Zero expiry stays the zero time so oauth2 treats the token as
	// non-expiring.
	tok = (&Credentials{AccessToken: "a"}).Token()
	assert.True(t, tok.Expiry.IsZero())
}
