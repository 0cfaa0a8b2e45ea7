package errors

import (
	"strings"
	"unicode"
)

// ValidateRequired returns a VALIDATION error naming the element and the
// missing field when value is empty. It is used by the sugar layer before a
// primitive ever reaches the extractor.
func ValidateRequired(element, field, value string) error {
	if value == "" {
		return New(ErrCodeValidation, "%s component requires a %s prop", element, field)
	}
	return nil
}

// ValidateOutputPath validates a file path the CLI or facade will write to.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 4096 characters
//   - No null bytes or control characters
//   - Must not name a directory (trailing separator)
func ValidateOutputPath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "output path cannot be empty")
	}

	const maxPathLength = 4096
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "output path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "output path contains invalid characters")
		}
	}

	if strings.HasSuffix(path, "/") || strings.HasSuffix(path, "\\") {
		return New(ErrCodeInvalidPath, "output path must name a file, not a directory: %q", path)
	}

	return nil
}
