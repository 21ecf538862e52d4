// Package redact strips sensitive information from strings before they
// are logged. Error messages can embed bearer tokens, signing secrets,
// or filesystem paths from pack loading; redacting at the logging
// boundary keeps them out of log aggregation.
package redact

import "regexp"

// Redaction placeholders.
const (
	RedactedCredentialPlaceholder = "[REDACTED_CREDENTIAL]"
	RedactedTokenPlaceholder      = "[REDACTED_TOKEN]"
	RedactedPathPlaceholder       = "[REDACTED_PATH]"
)

// Precompiled patterns, applied in order.
var (
	// JWT tokens: the standard three-part base64url form.
	jwtTokenRegex = regexp.MustCompile(`eyJ[a-zA-Z0-9_-]+\.eyJ[a-zA-Z0-9_-]+\.[a-zA-Z0-9_-]+`)

	// Secrets and keys mentioned by name next to a value.
	secretRegex = regexp.MustCompile(
		`(?i)(secret|token|key|credential)(['"\s:=]+)[A-Za-z0-9_\-.~+/!]{8,}`,
	)

	// Absolute filesystem paths from pack-directory errors.
	unixPathRegex = regexp.MustCompile(`(/[\w.-]+){2,}`)

	patterns = []*regexp.Regexp{jwtTokenRegex, secretRegex, unixPathRegex}

	placeholders = map[*regexp.Regexp]string{
		jwtTokenRegex: RedactedTokenPlaceholder,
		secretRegex:   RedactedCredentialPlaceholder,
		unixPathRegex: RedactedPathPlaceholder,
	}
)

// String redacts sensitive information from the input string.
func String(input string) string {
	if input == "" {
		return input
	}

	result := input
	for _, pattern := range patterns {
		result = pattern.ReplaceAllString(result, placeholders[pattern])
	}
	return result
}

// Error redacts sensitive information from an error's Error() output.
func Error(err error) string {
	if err == nil {
		return ""
	}
	return String(err.Error())
}
