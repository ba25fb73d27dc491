package extract

import "github.com/crdptools/crdpmap/decl"

// EnumerateDomains lists the protocol domain names exposed as properties on
// the root client declaration, in declaration order. The root client may be
// a structural interface or a namespace grouping; only simple property
// signatures count as domains.
func EnumerateDomains(tree *decl.File, rootClient string) ([]string, error) {
	n, ok := decl.FindInFile(tree, rootClient)
	if !ok {
		return nil, &MissingDeclarationError{Name: rootClient, Detail: "root client declaration not found"}
	}

	var members []decl.Node
	switch d := n.(type) {
	case *decl.Interface:
		members = d.Members
	case *decl.Module:
		members = d.Decls
	}

	domains := make([]string, 0, len(members))
	for _, m := range members {
		if p, ok := m.(*decl.Property); ok {
			domains = append(domains, p.Name)
		}
	}
	return domains, nil
}
