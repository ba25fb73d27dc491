// Package tsparse parses the supported TypeScript declaration subset into
// the decl tree consumed by the extraction engine. Only the constructs the
// protocol schema uses are modeled; any other type expression is preserved
// as an opaque node, and declarations outside the subset are skipped.
package tsparse

import (
	"context"
	"fmt"
	"os"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/typescript/typescript"

	"github.com/crdptools/crdpmap/decl"
)

// DefaultMaxFileSize is the largest schema file the parser accepts.
const DefaultMaxFileSize int64 = 10 * 1024 * 1024

// Option configures a Parser.
type Option func(*Parser)

// WithMaxFileSize sets the maximum schema file size in bytes.
func WithMaxFileSize(bytes int64) Option {
	return func(p *Parser) {
		if bytes > 0 {
			p.maxFileSize = bytes
		}
	}
}

// Parser parses protocol declaration files. Each Parse call creates its own
// tree-sitter parser, so a Parser is safe for concurrent use.
type Parser struct {
	maxFileSize int64
}

// NewParser creates a Parser with the given options.
func NewParser(opts ...Option) *Parser {
	p := &Parser{maxFileSize: DefaultMaxFileSize}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// ParseFile reads and parses a declaration file.
func (p *Parser) ParseFile(ctx context.Context, path string) (*decl.File, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read schema file: %w", err)
	}
	return p.Parse(ctx, content)
}

// Parse parses declaration source into a decl tree.
func (p *Parser) Parse(ctx context.Context, content []byte) (*decl.File, error) {
	if int64(len(content)) > p.maxFileSize {
		return nil, fmt.Errorf("schema file size %d exceeds limit %d", len(content), p.maxFileSize)
	}

	parser := sitter.NewParser()
	parser.SetLanguage(typescript.GetLanguage())

	tree, err := parser.ParseCtx(ctx, nil, content)
	if err != nil {
		return nil, fmt.Errorf("parse schema: %w", err)
	}
	defer tree.Close()

	root := tree.RootNode()
	if root == nil {
		return nil, fmt.Errorf("parse schema: no root node")
	}
	if root.HasError() {
		return nil, fmt.Errorf("parse schema: source contains syntax errors")
	}

	return &decl.File{Decls: convertStatements(root, content)}, nil
}

// convertStatements converts the declarations under a program, namespace
// body or ambient/export wrapper. Statements outside the supported subset
// are skipped.
func convertStatements(n *sitter.Node, src []byte) []decl.Node {
	var decls []decl.Node
	for i := 0; i < int(n.ChildCount()); i++ {
		child := n.Child(i)
		switch child.Type() {
		case "interface_declaration":
			if d := convertInterface(child, src); d != nil {
				decls = append(decls, d)
			}
		case "internal_module", "module":
			if d := convertModule(child, src); d != nil {
				decls = append(decls, d)
			}
		case "ambient_declaration", "export_statement", "statement_block":
			decls = append(decls, convertStatements(child, src)...)
		}
	}
	return decls
}

func convertInterface(n *sitter.Node, src []byte) *decl.Interface {
	iface := &decl.Interface{}
	for i := 0; i < int(n.ChildCount()); i++ {
		child := n.Child(i)
		switch child.Type() {
		case "type_identifier":
			iface.Name = text(child, src)
		case "interface_body", "object_type":
			iface.Members = convertMembers(child, src)
		}
	}
	if iface.Name == "" {
		return nil
	}
	return iface
}

func convertModule(n *sitter.Node, src []byte) *decl.Module {
	mod := &decl.Module{}
	for i := 0; i < int(n.ChildCount()); i++ {
		child := n.Child(i)
		switch child.Type() {
		case "identifier", "nested_identifier", "string":
			mod.Name = text(child, src)
		case "statement_block":
			mod.Decls = convertStatements(child, src)
		}
	}
	if mod.Name == "" {
		return nil
	}
	return mod
}

func convertMembers(body *sitter.Node, src []byte) []decl.Node {
	var members []decl.Node
	for i := 0; i < int(body.ChildCount()); i++ {
		child := body.Child(i)
		switch child.Type() {
		case "property_signature":
			if m := convertProperty(child, src); m != nil {
				members = append(members, m)
			}
		case "method_signature":
			if m := convertMethod(child, src); m != nil {
				members = append(members, m)
			}
		}
	}
	return members
}

func convertProperty(n *sitter.Node, src []byte) *decl.Property {
	prop := &decl.Property{}
	for i := 0; i < int(n.ChildCount()); i++ {
		child := n.Child(i)
		switch child.Type() {
		case "property_identifier":
			prop.Name = text(child, src)
		case "?":
			prop.Optional = true
		case "type_annotation":
			prop.Type = convertAnnotation(child, src)
		}
	}
	if prop.Name == "" {
		return nil
	}
	return prop
}

func convertMethod(n *sitter.Node, src []byte) *decl.Method {
	method := &decl.Method{}
	for i := 0; i < int(n.ChildCount()); i++ {
		child := n.Child(i)
		switch child.Type() {
		case "property_identifier":
			method.Name = text(child, src)
		case "formal_parameters":
			method.Params = convertParams(child, src)
		case "type_annotation":
			method.Return = convertAnnotation(child, src)
		}
	}
	if method.Name == "" {
		return nil
	}
	return method
}

func convertParams(n *sitter.Node, src []byte) []decl.Param {
	var params []decl.Param
	for i := 0; i < int(n.ChildCount()); i++ {
		child := n.Child(i)
		if child.Type() != "required_parameter" && child.Type() != "optional_parameter" {
			continue
		}
		param := decl.Param{Optional: child.Type() == "optional_parameter"}
		for j := 0; j < int(child.ChildCount()); j++ {
			gc := child.Child(j)
			switch gc.Type() {
			case "identifier":
				param.Name = text(gc, src)
			case "type_annotation":
				param.Type = convertAnnotation(gc, src)
			}
		}
		params = append(params, param)
	}
	return params
}

// convertAnnotation unwraps a ": T" annotation to its type node.
func convertAnnotation(n *sitter.Node, src []byte) decl.Node {
	for i := 0; i < int(n.ChildCount()); i++ {
		child := n.Child(i)
		if child.Type() != ":" {
			return convertType(child, src)
		}
	}
	return nil
}

func convertType(n *sitter.Node, src []byte) decl.Node {
	switch n.Type() {
	case "predefined_type":
		return &decl.Keyword{Name: text(n, src)}
	case "type_identifier", "nested_type_identifier":
		return &decl.TypeRef{Name: text(n, src)}
	case "generic_type":
		return convertGenericType(n, src)
	case "function_type":
		return convertFunctionType(n, src)
	case "parenthesized_type":
		for i := 0; i < int(n.ChildCount()); i++ {
			child := n.Child(i)
			if child.Type() != "(" && child.Type() != ")" {
				return convertType(child, src)
			}
		}
		return &decl.Opaque{Text: text(n, src)}
	default:
		return &decl.Opaque{Text: text(n, src)}
	}
}

func convertGenericType(n *sitter.Node, src []byte) decl.Node {
	ref := &decl.TypeRef{}
	for i := 0; i < int(n.ChildCount()); i++ {
		child := n.Child(i)
		switch child.Type() {
		case "type_identifier", "nested_type_identifier":
			ref.Name = text(child, src)
		case "type_arguments":
			for j := 0; j < int(child.ChildCount()); j++ {
				gc := child.Child(j)
				switch gc.Type() {
				case "<", ">", ",":
				default:
					ref.Args = append(ref.Args, convertType(gc, src))
				}
			}
		}
	}
	if ref.Name == "" {
		return &decl.Opaque{Text: text(n, src)}
	}
	return ref
}

func convertFunctionType(n *sitter.Node, src []byte) decl.Node {
	fn := &decl.FuncType{}
	arrowSeen := false
	for i := 0; i < int(n.ChildCount()); i++ {
		child := n.Child(i)
		switch {
		case child.Type() == "formal_parameters":
			fn.Params = convertParams(child, src)
		case child.Type() == "=>":
			arrowSeen = true
		case arrowSeen:
			fn.Return = convertType(child, src)
			arrowSeen = false
		}
	}
	return fn
}

func text(n *sitter.Node, src []byte) string {
	return string(src[n.StartByte():n.EndByte()])
}
