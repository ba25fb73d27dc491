// Package decl defines the declaration-tree node set for the supported
// protocol schema subset. The tree is produced by a schema provider (see
// tsparse) and read by the extraction engine; nodes are never mutated after
// construction.
package decl

// Node is the common interface for all declaration-tree nodes. The node set
// is closed: consumers dispatch with a type switch and treat any other
// implementation as unsupported.
type Node interface {
	node()
}

// File is the root of a parsed schema file.
type File struct {
	// Decls are the top-level declarations in source order.
	Decls []Node
}

// Interface is a structural interface declaration.
type Interface struct {
	// Name is the declared interface name.
	Name string
	// Members are the body members in declaration order. Only Property and
	// Method nodes appear here.
	Members []Node
}

// Module is a namespace-like grouping of declarations.
type Module struct {
	// Name is the namespace name.
	Name string
	// Decls are the contained declarations in source order.
	Decls []Node
}

// Property is a property signature inside an interface or grouping.
type Property struct {
	// Name is the property name.
	Name string
	// Optional reports whether the property is marked optional.
	Optional bool
	// Type is the declared type, or nil when the signature carries none.
	Type Node
}

// Method is a method signature inside an interface.
type Method struct {
	// Name is the method name.
	Name string
	// Params are the declared parameters in order.
	Params []Param
	// Return is the declared return type, or nil when absent.
	Return Node
}

// FuncType is a function type node, such as a callback signature or the
// value type of a command property.
type FuncType struct {
	// Params are the declared parameters in order.
	Params []Param
	// Return is the declared return type, or nil when absent.
	Return Node
}

// TypeRef is a reference to a type declared elsewhere. Name may be a dotted
// qualified path ("Network.Request"); Args carries generic type arguments.
type TypeRef struct {
	Name string
	Args []Node
}

// Keyword is a built-in keyword type such as "void" or "any".
type Keyword struct {
	Name string
}

// Opaque is a type expression outside the supported subset, preserved
// verbatim. Extractors reject it wherever a type reference is required.
type Opaque struct {
	Text string
}

// Param is a single declared parameter of a Method or FuncType.
type Param struct {
	// Name is the parameter name.
	Name string
	// Optional reports whether the parameter is marked optional.
	Optional bool
	// Type is the declared parameter type, or nil when absent.
	Type Node
}

func (*File) node()      {}
func (*Interface) node() {}
func (*Module) node()    {}
func (*Property) node()  {}
func (*Method) node()    {}
func (*FuncType) node()  {}
func (*TypeRef) node()   {}
func (*Keyword) node()   {}
func (*Opaque) node()    {}

// Void reports whether n is the void keyword type.
func Void(n Node) bool {
	kw, ok := n.(*Keyword)
	return ok && kw.Name == "void"
}
