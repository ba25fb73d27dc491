package extract

import (
	"fmt"
	"strings"

	"github.com/crdptools/crdpmap/decl"
)

// ResolveTypeRef resolves a two-part qualified type reference ("Domain.Type")
// from a type node. context names the surrounding event, command or type for
// error messages. References nested deeper than two parts are rejected.
func ResolveTypeRef(n decl.Node, context string) (TypeReference, error) {
	ref, ok := n.(*decl.TypeRef)
	if !ok {
		return TypeReference{}, &UnsupportedShapeError{Context: context, Detail: "unexpected type node"}
	}
	parts := strings.Split(ref.Name, ".")
	switch {
	case len(parts) == 2 && parts[0] != "" && parts[1] != "":
		return TypeReference{Domain: parts[0], Type: parts[1]}, nil
	case len(parts) > 2:
		return TypeReference{}, &UnsupportedShapeError{
			Context: context,
			Detail:  fmt.Sprintf("triple-nested qualified name %q", ref.Name),
		}
	default:
		return TypeReference{}, &UnsupportedShapeError{Context: context, Detail: "unexpected type node"}
	}
}
