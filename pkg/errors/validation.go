package errors

import (
	"regexp"
	"strings"
	"unicode"
)

// prefixRegex matches file name prefixes: letters, digits, dot, dash, underscore.
var prefixRegex = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9._-]*$`)

// ValidatePrefix checks an output file name prefix. The prefix becomes the
// first part of every written file name, so it must be a plain name with no
// path components.
func ValidatePrefix(prefix string) error {
	if prefix == "" {
		return New(ErrCodeInvalidOption, "prefix cannot be empty")
	}
	if len(prefix) > 128 {
		return New(ErrCodeInvalidOption, "prefix too long (max 128 characters)")
	}
	if strings.Contains(prefix, "..") {
		return New(ErrCodeInvalidOption, "prefix cannot contain path traversal sequences (..)")
	}
	if !prefixRegex.MatchString(prefix) {
		return New(ErrCodeInvalidOption, "invalid prefix: %q (letters, digits, '.', '-', '_' only)", prefix)
	}
	return nil
}

// ValidateOutputDir checks an output directory path for characters that
// never belong in one. Existence is not checked; the directory is created
// on write.
func ValidateOutputDir(dir string) error {
	if dir == "" {
		return New(ErrCodeInvalidOption, "output directory cannot be empty")
	}
	for _, r := range dir {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidOption, "output directory contains invalid characters")
		}
	}
	return nil
}
