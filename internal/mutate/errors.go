package mutate

import (
	"fmt"

	"github.com/layertools/djinit/internal/project"
)

// ParseError reports a configuration file whose expected insertion point
// could not be located, usually because the file was hand-edited into a
// shape the mutator does not recognize.
type ParseError struct {
	Role   project.Role
	Path   string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("cannot update %s file %s: %s", e.Role, e.Path, e.Reason)
}
