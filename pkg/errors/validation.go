package errors

import (
	"regexp"
	"strings"
	"unicode"
)

// maxIDLength bounds operator and tile identifiers.
const maxIDLength = 64

// ValidateID validates an operator or tile identifier.
//
// The validation rules are intentionally conservative:
//   - No empty ids
//   - No control characters or whitespace
//   - Maximum length of 64 characters
func ValidateID(id string) error {
	if id == "" {
		return New(ErrCodeInvalidInput, "id cannot be empty")
	}

	if len(id) > maxIDLength {
		return New(ErrCodeInvalidInput, "id too long (max %d characters)", maxIDLength)
	}

	for _, r := range id {
		if unicode.IsControl(r) || unicode.IsSpace(r) {
			return New(ErrCodeInvalidInput, "id %q contains whitespace or control characters", id)
		}
	}

	return nil
}

// operatorIDRegex matches catalog operator ids such as "H", "CNOT" or "rx-pi2".
var operatorIDRegex = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9_.+-]*$`)

// ValidateOperatorID validates a catalog operator id.
func ValidateOperatorID(id string) error {
	if err := ValidateID(id); err != nil {
		return err
	}

	if !operatorIDRegex.MatchString(id) {
		return New(ErrCodeInvalidCatalog, "invalid operator id: %q", id)
	}

	return nil
}

// ValidatePath validates a config, catalog or script file path.
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

	if strings.TrimSpace(path) != path {
		return New(ErrCodeInvalidPath, "path has leading or trailing whitespace")
	}

	return nil
}
