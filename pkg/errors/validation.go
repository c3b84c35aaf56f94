package errors

import (
	"strings"
	"unicode"
)

// maxPathLength bounds destination paths accepted from prompts and flags.
const maxPathLength = 4096

// ValidateOutputPath validates a destination path chosen by the user.
//
// Validation rules:
//   - Path cannot be empty or whitespace only
//   - Maximum length of 4096 characters
//   - No null bytes or control characters
//   - Must not end in a path separator (it names a file, not a directory)
func ValidateOutputPath(path string) error {
	if strings.TrimSpace(path) == "" {
		return New(ErrCodeInvalidPath, "output path cannot be empty")
	}

	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "output path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "output path contains invalid characters")
		}
	}

	if strings.HasSuffix(path, "/") || strings.HasSuffix(path, "\\") {
		return New(ErrCodeInvalidPath, "output path %q names a directory", path)
	}

	return nil
}
