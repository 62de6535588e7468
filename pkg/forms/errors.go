package forms

import (
	"fmt"
	"strings"
)

// UnknownFormError reports a form ID absent from the catalog. It signals a
// catalog/case-type mismatch in configuration, not bad user input, so callers
// should treat it as fatal.
type UnknownFormError struct {
	FormID string
}

func (e *UnknownFormError) Error() string {
	return fmt.Sprintf("forms: unknown form %q", e.FormID)
}

// MissingFieldError carries the localized labels of every required field that
// could not be resolved for a form. The mapper collects all of them before
// failing so the user sees the full list at once.
type MissingFieldError struct {
	FormID string
	Labels []string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("forms: form %s missing required fields: %s",
		e.FormID, strings.Join(e.Labels, ", "))
}
