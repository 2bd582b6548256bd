package project

import (
	"fmt"
	"strings"
)

// NameConflictError reports an application name that collides with a
// framework builtin.
type NameConflictError struct {
	Name       string // the requested name, as typed
	Builtin    string // the reserved builtin it collides with
	Suggestion string // an alternative that does not collide
}

func (e *NameConflictError) Error() string {
	return fmt.Sprintf("application name %q conflicts with the built-in app %q; try %q instead",
		e.Name, e.Builtin, e.Suggestion)
}

// ValidateAppName checks that name is usable as an application name: a valid
// lowercase identifier that does not collide with a reserved builtin.
// Reserved-name matching is case-insensitive, so Admin and ADMIN are rejected
// the same as admin.
func (c *Config) ValidateAppName(name string) error {
	if name == "" {
		return fmt.Errorf("application name must not be empty")
	}

	// Reserved-name check runs first so that casing variants of a builtin
	// (Admin, ADMIN) surface as a name conflict rather than a generic
	// identifier error.
	lower := strings.ToLower(name)
	for _, reserved := range c.ReservedApps {
		if lower == strings.ToLower(reserved) {
			return &NameConflictError{
				Name:       name,
				Builtin:    reserved,
				Suggestion: lower + "_app",
			}
		}
	}

	if !isIdentifier(name) {
		return fmt.Errorf("invalid application name %q: must start with a lowercase letter and contain only lowercase letters, digits, and underscores", name)
	}
	return nil
}

// isIdentifier reports whether s is a lowercase Python-importable module
// name: [a-z][a-z0-9_]*.
func isIdentifier(s string) bool {
	for i, r := range s {
		switch {
		case r >= 'a' && r <= 'z':
		case r == '_' && i > 0:
		case r >= '0' && r <= '9' && i > 0:
		default:
			return false
		}
	}
	return len(s) > 0
}
