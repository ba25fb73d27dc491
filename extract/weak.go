package extract

import "github.com/crdptools/crdpmap/decl"

// IsWeakType reports whether every property member of the named structural
// type under the given domain grouping is optional. Weak types permit
// omitting the whole value. Members that are not property signatures do not
// affect the result.
func IsWeakType(tree *decl.File, domain, typeName string) (bool, error) {
	n, ok := decl.FindInFile(tree, domain)
	if !ok {
		return false, &MissingDeclarationError{Name: domain, Detail: "domain grouping not found"}
	}
	grouping, ok := n.(*decl.Module)
	if !ok {
		return false, &MissingDeclarationError{Name: domain, Detail: "declaration is not a namespace grouping"}
	}

	qualified := domain + "." + typeName
	tn, ok := decl.FindNamed(grouping.Decls, typeName)
	if !ok {
		return false, &MissingDeclarationError{Name: qualified, Detail: "type declaration not found in domain grouping"}
	}
	iface, ok := tn.(*decl.Interface)
	if !ok {
		return false, &MissingDeclarationError{Name: qualified, Detail: "declaration is not a structural interface"}
	}

	for _, m := range iface.Members {
		if p, ok := m.(*decl.Property); ok && !p.Optional {
			return false, nil
		}
	}
	return true, nil
}
