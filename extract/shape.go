package extract

import (
	"fmt"

	"github.com/crdptools/crdpmap/decl"
)

// SingleParamType returns the declared type of the only parameter, or nil
// when there are no parameters. The parameter's type must be a type
// reference; two or more parameters are an unsupported shape.
func SingleParamType(params []decl.Param, context string) (*decl.TypeRef, error) {
	switch len(params) {
	case 0:
		return nil, nil
	case 1:
		ref, ok := params[0].Type.(*decl.TypeRef)
		if !ok {
			return nil, &UnsupportedShapeError{Context: context, Detail: "parameter type is not a type reference"}
		}
		return ref, nil
	default:
		return nil, &UnsupportedShapeError{
			Context: context,
			Detail:  fmt.Sprintf("expected at most one parameter, found %d", len(params)),
		}
	}
}

// ListenerPayloadType extracts the payload type reference from an event
// listener method. The listener's single parameter must be the callback
// function type; the callback in turn takes the payload as its only
// parameter, or nothing for payload-less events.
func ListenerPayloadType(m *decl.Method, context string) (*decl.TypeRef, error) {
	if len(m.Params) != 1 {
		return nil, &UnsupportedShapeError{
			Context: context,
			Detail:  fmt.Sprintf("expected exactly one listener parameter, found %d", len(m.Params)),
		}
	}
	callback, ok := m.Params[0].Type.(*decl.FuncType)
	if !ok {
		return nil, &UnsupportedShapeError{Context: context, Detail: "listener parameter is not a callback function type"}
	}
	return SingleParamType(callback.Params, context)
}
