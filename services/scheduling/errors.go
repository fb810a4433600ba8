package scheduling

import "fmt"

// FieldError reports a caller contract violation on a specific engine input.
// The engine rejects structurally invalid input instead of repairing it;
// guessing intent here would hide tutor-side data-entry bugs.
type FieldError struct {
	Field   string
	Message string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func newFieldError(field, format string, args ...any) error {
	return &FieldError{Field: field, Message: fmt.Sprintf(format, args...)}
}

// InvalidTimezoneError reports an IANA timezone identifier that could not be
// resolved. Callers pick the policy: surface it, or degrade to UTC via
// ResolveTimezoneOrUTC.
type InvalidTimezoneError struct {
	Name string
}

func (e *InvalidTimezoneError) Error() string {
	return fmt.Sprintf("unresolvable timezone identifier %q", e.Name)
}
