package extract

import (
	"fmt"

	"github.com/crdptools/crdpmap/decl"
)

// ExtractCommands records one command entry per function-typed property
// declared on the domain's "<Domain>Commands" interface. Members that are
// not property signatures are skipped; a property whose value is not a
// function type is an unsupported shape.
func ExtractCommands(tree *decl.File, domain, wrapper string, mapping *Mapping) error {
	commandsName := domain + "Commands"
	n, ok := decl.FindInFile(tree, commandsName)
	if !ok {
		return &MissingDeclarationError{Name: commandsName, Detail: "command declaration not found"}
	}
	iface, ok := n.(*decl.Interface)
	if !ok {
		return &MissingDeclarationError{Name: commandsName, Detail: "declaration is not a structural interface"}
	}

	for _, member := range iface.Members {
		p, ok := member.(*decl.Property)
		if !ok {
			continue
		}
		key := domain + "." + p.Name
		fn, ok := p.Type.(*decl.FuncType)
		if !ok {
			return &UnsupportedShapeError{Context: key, Detail: "command property value is not a function type"}
		}

		paramNode, err := SingleParamType(fn.Params, key)
		if err != nil {
			return err
		}
		var params *TypeReference
		weak := false
		if paramNode != nil {
			ref, err := ResolveTypeRef(paramNode, key)
			if err != nil {
				return err
			}
			params = &ref
			weak, err = IsWeakType(tree, ref.Domain, ref.Type)
			if err != nil {
				return err
			}
		}

		returns, err := commandReturnType(fn, wrapper, key)
		if err != nil {
			return err
		}
		mapping.putCommand(CommandEntry{Key: key, Params: params, WeakParams: weak, Returns: returns})
	}
	return nil
}

// commandReturnType unwraps the asynchronous-result wrapper around a
// command's return type. The wrapper must carry exactly one type argument:
// either the void keyword or a resolvable type reference.
func commandReturnType(fn *decl.FuncType, wrapper, context string) (*TypeReference, error) {
	ret, ok := fn.Return.(*decl.TypeRef)
	if !ok || ret.Name != wrapper {
		return nil, &UnsupportedShapeError{
			Context: context,
			Detail:  fmt.Sprintf("command must return %s<T>", wrapper),
		}
	}
	if len(ret.Args) != 1 {
		return nil, &UnsupportedShapeError{
			Context: context,
			Detail:  fmt.Sprintf("%s must carry exactly one type argument, found %d", wrapper, len(ret.Args)),
		}
	}

	arg := ret.Args[0]
	if decl.Void(arg) {
		return nil, nil
	}
	ref, err := ResolveTypeRef(arg, context)
	if err != nil {
		return nil, err
	}
	return &ref, nil
}
