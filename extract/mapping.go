// Package extract walks a parsed protocol declaration tree and builds the
// event and command mapping consumed by the renderer. Extraction is
// single-pass and synchronous; the first malformed declaration aborts the
// entire run.
package extract

// TypeReference names a type declared under a specific protocol domain.
// Both parts are always non-empty; references are never nested deeper.
type TypeReference struct {
	Domain string
	Type   string
}

func (r TypeReference) String() string {
	return r.Domain + "." + r.Type
}

// EventEntry maps one fully-qualified event key ("Domain.event") to its
// payload type. Payload is nil for events that carry none.
type EventEntry struct {
	Key     string
	Payload *TypeReference
}

// CommandEntry maps one fully-qualified command key ("Domain.command") to its
// parameter and result types. Params and Returns are nil where the command
// takes or produces nothing. WeakParams marks parameter types whose members
// are all optional, so the whole value may be omitted.
type CommandEntry struct {
	Key        string
	Params     *TypeReference
	WeakParams bool
	Returns    *TypeReference
}

// Mapping is the extracted protocol schema: an ordered event map and an
// ordered command map. Keys keep their first-insertion position; writing an
// existing key replaces its value in place, so duplicates are last-write-wins
// without disturbing serialization order.
type Mapping struct {
	eventKeys   []string
	events      map[string]EventEntry
	commandKeys []string
	commands    map[string]CommandEntry
}

// NewMapping creates an empty mapping. A mapping is owned by a single
// extraction run and must not be shared across runs.
func NewMapping() *Mapping {
	return &Mapping{
		events:   make(map[string]EventEntry),
		commands: make(map[string]CommandEntry),
	}
}

func (m *Mapping) putEvent(key string, payload *TypeReference) {
	if _, ok := m.events[key]; !ok {
		m.eventKeys = append(m.eventKeys, key)
	}
	m.events[key] = EventEntry{Key: key, Payload: payload}
}

func (m *Mapping) putCommand(entry CommandEntry) {
	if _, ok := m.commands[entry.Key]; !ok {
		m.commandKeys = append(m.commandKeys, entry.Key)
	}
	m.commands[entry.Key] = entry
}

// Events returns the event entries in map order.
func (m *Mapping) Events() []EventEntry {
	out := make([]EventEntry, 0, len(m.eventKeys))
	for _, k := range m.eventKeys {
		out = append(out, m.events[k])
	}
	return out
}

// Commands returns the command entries in map order.
func (m *Mapping) Commands() []CommandEntry {
	out := make([]CommandEntry, 0, len(m.commandKeys))
	for _, k := range m.commandKeys {
		out = append(out, m.commands[k])
	}
	return out
}
