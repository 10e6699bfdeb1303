package errors

import (
	"strings"
	"unicode"
)

// maxKeyLength bounds item keys read from documents and scripts.
const maxKeyLength = 256

// ValidateKey validates an item key read from an external document.
//
// Keys are opaque to the editor, but they end up in SVG ids and data
// attributes, so the rules are conservative:
//   - No empty keys
//   - No control characters
//   - No whitespace
//   - Maximum length of 256 characters
func ValidateKey(key string) error {
	if key == "" {
		return New(ErrCodeInvalidInput, "item key cannot be empty")
	}
	if len(key) > maxKeyLength {
		return New(ErrCodeInvalidInput, "item key too long (max %d characters)", maxKeyLength)
	}
	for _, r := range key {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "item key %q contains control characters", key)
		}
		if unicode.IsSpace(r) {
			return New(ErrCodeInvalidInput, "item key %q contains whitespace", key)
		}
	}
	return nil
}

// ValidatePath validates an output path given on the command line.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 500 characters
//   - No null bytes or control characters
//   - No trailing slash (must name a file)
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

	if strings.HasSuffix(path, "/") {
		return New(ErrCodeInvalidPath, "path %q names a directory", path)
	}

	return nil
}
