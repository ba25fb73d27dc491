package extract

import (
	"regexp"
	"strings"

	"github.com/crdptools/crdpmap/decl"
)

// listenerName is the naming convention for event listener methods.
var listenerName = regexp.MustCompile(`^on[A-Z]`)

// ExtractEvents records one event entry per listener method declared on the
// domain's "<Domain>Client" interface. Members that are not method
// signatures are skipped.
func ExtractEvents(tree *decl.File, domain string, mapping *Mapping) error {
	clientName := domain + "Client"
	n, ok := decl.FindInFile(tree, clientName)
	if !ok {
		return &MissingDeclarationError{Name: clientName, Detail: "event listener declaration not found"}
	}
	iface, ok := n.(*decl.Interface)
	if !ok {
		return &MissingDeclarationError{Name: clientName, Detail: "declaration is not a structural interface"}
	}

	for _, member := range iface.Members {
		m, ok := member.(*decl.Method)
		if !ok {
			continue
		}
		if !listenerName.MatchString(m.Name) {
			return &UnsupportedShapeError{
				Context: clientName + "." + m.Name,
				Detail:  "listener name does not match the on<Event> convention",
			}
		}

		key := domain + "." + eventName(m.Name)
		payloadNode, err := ListenerPayloadType(m, key)
		if err != nil {
			return err
		}
		var payload *TypeReference
		if payloadNode != nil {
			ref, err := ResolveTypeRef(payloadNode, key)
			if err != nil {
				return err
			}
			payload = &ref
		}
		mapping.putEvent(key, payload)
	}
	return nil
}

// eventName derives the protocol event name from a listener method name by
// stripping the "on" prefix and lower-casing the next character.
func eventName(listener string) string {
	rest := listener[len("on"):]
	return strings.ToLower(rest[:1]) + rest[1:]
}
