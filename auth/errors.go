package auth

import "fmt"

// ResolutionErrorKind enumerates the ways credential resolution can fail.
type ResolutionErrorKind int

const (
	// KindNotFound means no credential source yielded a bundle.
	KindNotFound ResolutionErrorKind = iota
	// KindInvalidJSON means a source was present but did not parse as JSON.
	KindInvalidJSON
	// KindFileUnreadable means the credential file exists but could not be read.
	KindFileUnreadable
)

// Source identifies which credential source produced a resolution error.
type Source string

const (
	// SourceEnvironment is the GMAIL_CREDENTIALS environment variable.
	SourceEnvironment Source = "environment"
	// SourceFile is the credential file on disk.
	SourceFile Source = "file"
)

// ResolutionError describes a credential resolution failure. The Kind and
// Source fields let callers distinguish a malformed environment bundle from a
// malformed file without parsing the message.
type ResolutionError struct {
	Kind   ResolutionErrorKind
	Source Source
	Path   string
	Err    error
}

func (e *ResolutionError) Error() string {
	switch e.Kind {
	case KindInvalidJSON:
		if e.Source == SourceEnvironment {
			return fmt.Sprintf("invalid JSON in %s environment variable: %v", EnvCredentials, e.Err)
		}
		return fmt.Sprintf("invalid JSON in credential file %s: %v", e.Path, e.Err)
	case KindFileUnreadable:
		return fmt.Sprintf("credential file %s is unreadable: %v", e.Path, e.Err)
	default:
		return fmt.Sprintf("no Gmail credentials found; supply a credential bundle directly, "+
			"set %s to a JSON token bundle, or provide a JSON credential file at %s (default: %s)",
			EnvCredentials, EnvCredentialsPath, DefaultCredentialsPath)
	}
}

func (e *ResolutionError) Unwrap() error {
	return e.Err
}
