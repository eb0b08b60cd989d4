package prefs

import (
	"fmt"
	"sync"

	"github.com/ygrebnov/prefs/codec"
)

// Format pairs an encoding identity with the codec implementing it. The tag
// doubles as the extension of the format's default file name, so a store
// using YAML under the Auto location resolves to <config root>/<app>/config.yaml.
//
// Obtain a Format from the built-in variables, from JSONIndent, or from
// RegisterFormat; the zero Format carries no codec and is rejected by
// WithFormat.
type Format struct {
	tag string
	c   codec.Codec
}

// Built-in formats. JSON is the default for stores that do not choose one.
var (
	JSON = Format{tag: "json", c: codec.JSON{}}
	YAML = Format{tag: "yaml", c: codec.YAML{}}
	TOML = Format{tag: "toml", c: codec.TOML{}}
	INI  = Format{tag: "ini", c: codec.INI{}}
	Gob  = Format{tag: "gob", c: codec.Gob{}}
)

// JSONIndent returns a JSON variant that pretty-prints with the given
// per-level indent string, for example "\t" or "  ". The variant keeps the
// json tag, so its default file name stays config.json and it reads files
// written by the compact JSON format. Panics if indent is empty.
func JSONIndent(indent string) Format {
	if indent == "" {
		panic("prefs: JSONIndent: indent cannot be empty")
	}
	return Format{tag: "json", c: codec.JSON{Indent: indent}}
}

// Tag returns the format's encoding identity, e.g. "json".
func (f Format) Tag() string { return f.tag }

// DefaultFileName returns the canonical settings file name for the format,
// "config.<tag>".
func (f Format) DefaultFileName() string { return "config." + f.tag }

// Codec returns the codec the format encodes and decodes with.
func (f Format) Codec() codec.Codec { return f.c }

// String implements fmt.Stringer.
func (f Format) String() string { return f.tag }

var (
	formatsMu sync.RWMutex
	formats   = map[string]Format{
		JSON.tag: JSON,
		YAML.tag: YAML,
		TOML.tag: TOML,
		INI.tag:  INI,
		Gob.tag:  Gob,
	}
)

// RegisterFormat makes a host-defined format available to LookupFormat and
// returns the Format value to use with WithFormat. The tag must be non-empty,
// extension-safe and unique; like the built-ins, registrations are program
// wiring rather than runtime input, so RegisterFormat panics on an empty tag,
// a nil codec or a duplicate tag. Safe for concurrent use.
func RegisterFormat(tag string, c codec.Codec) Format {
	if tag == "" {
		panic("prefs: RegisterFormat: tag cannot be empty")
	}
	if c == nil {
		panic("prefs: RegisterFormat: codec cannot be nil")
	}
	formatsMu.Lock()
	defer formatsMu.Unlock()
	if _, dup := formats[tag]; dup {
		panic(fmt.Sprintf("prefs: RegisterFormat: tag %q already registered", tag))
	}
	f := Format{tag: tag, c: c}
	formats[tag] = f
	return f
}

// LookupFormat returns the format registered under tag. Hosts that persist a
// format choice as a string, such as a command line flag, resolve it here.
func LookupFormat(tag string) (Format, bool) {
	formatsMu.RLock()
	defer formatsMu.RUnlock()
	f, ok := formats[tag]
	return f, ok
}
