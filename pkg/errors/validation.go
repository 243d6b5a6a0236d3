package errors

import (
	"strings"
	"unicode"
)

// MaxLiteralLength bounds matrix literals accepted from untrusted sources
// (query strings, command-line arguments).
const MaxLiteralLength = 4096

// ValidateLiteral validates a matrix literal before it is handed to a parser.
//
// The validation rules are intentionally conservative:
//   - No empty literals
//   - Maximum length of MaxLiteralLength bytes
//   - No control characters other than whitespace
func ValidateLiteral(s string) error {
	if strings.TrimSpace(s) == "" {
		return New(ErrCodeInvalidInput, "matrix literal cannot be empty")
	}

	if len(s) > MaxLiteralLength {
		return New(ErrCodeInvalidInput, "matrix literal too long (max %d characters)", MaxLiteralLength)
	}

	for _, r := range s {
		if unicode.IsControl(r) && !unicode.IsSpace(r) {
			return New(ErrCodeInvalidInput, "matrix literal contains invalid control characters")
		}
	}

	return nil
}

// ValidateOrder validates a matrix order used for enumeration.
// Enumeration grows super-exponentially, so callers pass an explicit ceiling.
func ValidateOrder(n, max int) error {
	if n < 1 {
		return New(ErrCodeInvalidInput, "order must be at least 1, got %d", n)
	}
	if n > max {
		return New(ErrCodeInvalidInput, "order %d too large (max %d)", n, max)
	}
	return nil
}

// ValidatePath validates an output file path for safety.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 500 characters
//   - No null bytes or control characters
func ValidatePath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}

	const maxPathLength = 500
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid characters")
		}
	}

	return nil
}
