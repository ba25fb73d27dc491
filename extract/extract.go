package extract

import "github.com/crdptools/crdpmap/decl"

// Default declaration names for the protocol schema.
const (
	DefaultRootClient   = "CrdpClient"
	DefaultAsyncWrapper = "Promise"
)

// Options configures an extraction run.
type Options struct {
	// RootClient is the declaration that enumerates protocol domains.
	// Defaults to "CrdpClient".
	RootClient string
	// AsyncWrapper is the generic wrapper around command results.
	// Defaults to "Promise".
	AsyncWrapper string
}

func (o *Options) applyDefaults() {
	if o.RootClient == "" {
		o.RootClient = DefaultRootClient
	}
	if o.AsyncWrapper == "" {
		o.AsyncWrapper = DefaultAsyncWrapper
	}
}

// Extract walks the schema tree once and returns the completed event and
// command mapping. Domains are processed in enumeration order; the first
// malformed declaration aborts the run and no partial mapping is returned.
func Extract(tree *decl.File, opts Options) (*Mapping, error) {
	opts.applyDefaults()

	domains, err := EnumerateDomains(tree, opts.RootClient)
	if err != nil {
		return nil, err
	}

	mapping := NewMapping()
	for _, domain := range domains {
		if err := ExtractEvents(tree, domain, mapping); err != nil {
			return nil, err
		}
		if err := ExtractCommands(tree, domain, opts.AsyncWrapper, mapping); err != nil {
			return nil, err
		}
	}
	return mapping, nil
}
