package extract

import (
	"testing"
	"unicode"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crdptools/crdpmap/decl"
)

func eventsTree(domain string, members ...decl.Node) *decl.File {
	return &decl.File{Decls: []decl.Node{
		&decl.Interface{Name: domain + "Client", Members: members},
	}}
}

func TestExtractEvents(t *testing.T) {
	t.Run("derives event names with a lower-case first character", func(t *testing.T) {
		tree := eventsTree("Network",
			listener("onRequestWillBeSent", ref("Network.RequestWillBeSentEvent")),
			listener("onLoadingFinished", ref("Network.LoadingFinishedEvent")),
		)
		mapping := NewMapping()
		require.NoError(t, ExtractEvents(tree, "Network", mapping))

		events := mapping.Events()
		require.Len(t, events, 2)
		assert.Equal(t, "Network.requestWillBeSent", events[0].Key)
		assert.Equal(t, "Network.loadingFinished", events[1].Key)
		for _, e := range events {
			name := e.Key[len("Network."):]
			assert.True(t, unicode.IsLower(rune(name[0])), "event name %q must start lower-case", name)
		}
	})

	t.Run("payload-less listeners map to no payload", func(t *testing.T) {
		tree := eventsTree("Network", listener("onLoadEventFired", nil))
		mapping := NewMapping()
		require.NoError(t, ExtractEvents(tree, "Network", mapping))
		require.Len(t, mapping.Events(), 1)
		assert.Nil(t, mapping.Events()[0].Payload)
	})

	t.Run("skips non-method members", func(t *testing.T) {
		tree := eventsTree("Network",
			&decl.Property{Name: "connected", Type: &decl.Keyword{Name: "boolean"}},
			listener("onConnected", nil),
		)
		mapping := NewMapping()
		require.NoError(t, ExtractEvents(tree, "Network", mapping))
		require.Len(t, mapping.Events(), 1)
		assert.Equal(t, "Network.connected", mapping.Events()[0].Key)
	})

	t.Run("rejects listener names outside the convention", func(t *testing.T) {
		for _, name := range []string{"request", "onrequest", "on", "Onrequest"} {
			t.Run(name, func(t *testing.T) {
				tree := eventsTree("Network", listener(name, nil))
				err := ExtractEvents(tree, "Network", NewMapping())
				var shape *UnsupportedShapeError
				require.ErrorAs(t, err, &shape)
				assert.Equal(t, "NetworkClient."+name, shape.Context)
			})
		}
	})

	t.Run("fails when the client declaration is missing", func(t *testing.T) {
		tree := &decl.File{}
		err := ExtractEvents(tree, "Network", NewMapping())
		var missing *MissingDeclarationError
		require.ErrorAs(t, err, &missing)
		assert.Equal(t, "NetworkClient", missing.Name)
	})

	t.Run("fails when the client declaration is not an interface", func(t *testing.T) {
		tree := &decl.File{Decls: []decl.Node{&decl.Module{Name: "NetworkClient"}}}
		err := ExtractEvents(tree, "Network", NewMapping())
		var missing *MissingDeclarationError
		require.ErrorAs(t, err, &missing)
		assert.Contains(t, missing.Detail, "not a structural interface")
	})

	t.Run("duplicate listeners overwrite without reordering", func(t *testing.T) {
		tree := eventsTree("Target",
			listener("onDetached", ref("Target.FirstEvent")),
			listener("onCrashed", nil),
			listener("onDetached", ref("Target.SecondEvent")),
		)
		mapping := NewMapping()
		require.NoError(t, ExtractEvents(tree, "Target", mapping))

		events := mapping.Events()
		require.Len(t, events, 2)
		assert.Equal(t, "Target.detached", events[0].Key)
		assert.Equal(t, "SecondEvent", events[0].Payload.Type)
		assert.Equal(t, "Target.crashed", events[1].Key)
	})

	t.Run("propagates payload resolution failures", func(t *testing.T) {
		tree := eventsTree("Target", listener("onDetached", ref("UnqualifiedEvent")))
		err := ExtractEvents(tree, "Target", NewMapping())
		var shape *UnsupportedShapeError
		require.ErrorAs(t, err, &shape)
		assert.Equal(t, "Target.detached", shape.Context)
	})
}
