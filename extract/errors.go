package extract

import "fmt"

// MissingDeclarationError reports that a required named declaration could not
// be found in the schema, or was found with the wrong declaration kind.
type MissingDeclarationError struct {
	// Name is the declaration that was looked up.
	Name string
	// Detail describes what was expected.
	Detail string
}

func (e *MissingDeclarationError) Error() string {
	return fmt.Sprintf("missing declaration %s: %s", e.Name, e.Detail)
}

// UnsupportedShapeError reports a declaration whose internal shape deviates
// from the supported schema subset.
type UnsupportedShapeError struct {
	// Context names the offending domain, event, command or type.
	Context string
	// Detail describes the deviation.
	Detail string
}

func (e *UnsupportedShapeError) Error() string {
	return fmt.Sprintf("unsupported shape at %s: %s", e.Context, e.Detail)
}
