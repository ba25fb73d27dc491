package decl

// FindNamed returns the first declaration with the given name, searching the
// nodes depth-first and descending into module groupings. It returns false
// when no interface or module with that name exists.
func FindNamed(nodes []Node, name string) (Node, bool) {
	for _, n := range nodes {
		switch d := n.(type) {
		case *Interface:
			if d.Name == name {
				return d, true
			}
		case *Module:
			if d.Name == name {
				return d, true
			}
			if found, ok := FindNamed(d.Decls, name); ok {
				return found, true
			}
		}
	}
	return nil, false
}

// FindInFile is FindNamed applied to a file's top-level declarations.
func FindInFile(file *File, name string) (Node, bool) {
	return FindNamed(file.Decls, name)
}
