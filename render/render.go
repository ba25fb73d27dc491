// Package render serializes an extracted protocol mapping into the generated
// declaration file. Rendering is pure and byte-deterministic: identical
// mappings always produce identical output.
package render

import (
	"strings"

	"github.com/crdptools/crdpmap/extract"
)

// header is the fixed boilerplate emitted at the top of every generated file.
const header = `// Copyright (c) the crdpmap authors. Licensed under the MIT license.
// Generated by crdpmap. Do not edit by hand; regenerate instead.
`

const (
	namespaceName = "CrdpMappings"
	typeNamespace = "Crdp"
	eventsType    = "Events"
	commandsType  = "Commands"
	voidType      = "void"
	indent        = "    "
)

// Mapping renders the generated mapping declaration. It performs no
// validation; the mapping must already be fully extracted.
func Mapping(m *extract.Mapping) string {
	var b strings.Builder
	b.WriteString(header)
	b.WriteString("\ndeclare namespace " + namespaceName + " {\n")

	b.WriteString(indent + "export type " + eventsType + " = {\n")
	for _, e := range m.Events() {
		b.WriteString(indent + indent + "'" + e.Key + "': " + typeName(e.Payload) + ";\n")
	}
	b.WriteString(indent + "};\n\n")

	b.WriteString(indent + "export type " + commandsType + " = {\n")
	for _, c := range m.Commands() {
		params := typeName(c.Params)
		if c.WeakParams {
			params = voidType + " | " + typeName(c.Params)
		}
		b.WriteString(indent + indent + "'" + c.Key + "': { paramsType: " + params +
			"; returnType: " + typeName(c.Returns) + " };\n")
	}
	b.WriteString(indent + "};\n")

	b.WriteString("}\n\nexport {};\n")
	return b.String()
}

// typeName formats a resolved reference under the protocol root namespace,
// or void when there is no payload.
func typeName(ref *extract.TypeReference) string {
	if ref == nil {
		return voidType
	}
	return typeNamespace + "." + ref.Domain + "." + ref.Type
}
