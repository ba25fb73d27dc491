package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crdptools/crdpmap/decl"
	"github.com/crdptools/crdpmap/extract"
)

// renderTree builds a two-domain schema covering payloads, weak parameters
// and void results.
func renderTree() *decl.File {
	voidKw := func() decl.Node { return &decl.Keyword{Name: "void"} }
	callback := func(payload decl.Node) decl.Node {
		fn := &decl.FuncType{Return: voidKw()}
		if payload != nil {
			fn.Params = []decl.Param{{Name: "params", Type: payload}}
		}
		return fn
	}
	promise := func(arg decl.Node) decl.Node {
		return &decl.TypeRef{Name: "Promise", Args: []decl.Node{arg}}
	}
	command := func(name string, param, ret decl.Node) *decl.Property {
		fn := &decl.FuncType{Return: ret}
		if param != nil {
			fn.Params = []decl.Param{{Name: "params", Type: param}}
		}
		return &decl.Property{Name: name, Type: fn}
	}

	return &decl.File{Decls: []decl.Node{
		&decl.Interface{Name: "CrdpClient", Members: []decl.Node{
			&decl.Property{Name: "Network"},
			&decl.Property{Name: "Page"},
		}},
		&decl.Module{Name: "Network", Decls: []decl.Node{
			&decl.Interface{Name: "RequestWillBeSentEvent", Members: []decl.Node{
				&decl.Property{Name: "requestId"},
			}},
			&decl.Interface{Name: "SetCacheDisabledRequest", Members: []decl.Node{
				&decl.Property{Name: "cacheDisabled", Optional: true},
			}},
		}},
		&decl.Module{Name: "Page", Decls: []decl.Node{
			&decl.Interface{Name: "NavigateRequest", Members: []decl.Node{
				&decl.Property{Name: "url"},
			}},
			&decl.Interface{Name: "NavigateResult", Members: []decl.Node{
				&decl.Property{Name: "frameId"},
			}},
		}},
		&decl.Interface{Name: "NetworkClient", Members: []decl.Node{
			&decl.Method{Name: "onRequestWillBeSent", Params: []decl.Param{
				{Name: "listener", Type: callback(&decl.TypeRef{Name: "Network.RequestWillBeSentEvent"})},
			}},
		}},
		&decl.Interface{Name: "NetworkCommands", Members: []decl.Node{
			command("enable", nil, promise(voidKw())),
			command("setCacheDisabled", &decl.TypeRef{Name: "Network.SetCacheDisabledRequest"}, promise(voidKw())),
		}},
		&decl.Interface{Name: "PageClient", Members: []decl.Node{
			&decl.Method{Name: "onLoadEventFired", Params: []decl.Param{
				{Name: "listener", Type: callback(nil)},
			}},
		}},
		&decl.Interface{Name: "PageCommands", Members: []decl.Node{
			command("navigate", &decl.TypeRef{Name: "Page.NavigateRequest"}, promise(&decl.TypeRef{Name: "Page.NavigateResult"})),
		}},
	}}
}

const wantOutput = `// Copyright (c) the crdpmap authors. Licensed under the MIT license.
// Generated by crdpmap. Do not edit by hand; regenerate instead.

declare namespace CrdpMappings {
    export type Events = {
        'Network.requestWillBeSent': Crdp.Network.RequestWillBeSentEvent;
        'Page.loadEventFired': void;
    };

    export type Commands = {
        'Network.enable': { paramsType: void; returnType: void };
        'Network.setCacheDisabled': { paramsType: void | Crdp.Network.SetCacheDisabledRequest; returnType: void };
        'Page.navigate': { paramsType: Crdp.Page.NavigateRequest; returnType: Crdp.Page.NavigateResult };
    };
}

export {};
`

func TestMapping(t *testing.T) {
	t.Run("renders the full mapping deterministically", func(t *testing.T) {
		mapping, err := extract.Extract(renderTree(), extract.Options{})
		require.NoError(t, err)
		assert.Equal(t, wantOutput, Mapping(mapping))
	})

	t.Run("repeated renders are byte-identical", func(t *testing.T) {
		mapping, err := extract.Extract(renderTree(), extract.Options{})
		require.NoError(t, err)
		assert.Equal(t, Mapping(mapping), Mapping(mapping))
	})

	t.Run("renders empty maps as empty blocks", func(t *testing.T) {
		tree := &decl.File{Decls: []decl.Node{&decl.Interface{Name: "CrdpClient"}}}
		mapping, err := extract.Extract(tree, extract.Options{})
		require.NoError(t, err)

		out := Mapping(mapping)
		assert.Contains(t, out, "export type Events = {\n    };")
		assert.Contains(t, out, "export type Commands = {\n    };")
	})
}
