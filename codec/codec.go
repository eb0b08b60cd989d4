// Package codec defines the serialization boundary used by prefs stores and
// implements it for the built-in formats: JSON, YAML, TOML, INI and gob.
//
// A Codec turns a single settings record into bytes and back. Codecs hold no
// state between calls and are safe for concurrent use; format options, such
// as JSON indentation, live in exported fields on the codec value itself.
package codec

// Codec encodes and decodes one settings record.
type Codec interface {
	// Marshal serializes v.
	Marshal(v any) ([]byte, error)

	// Unmarshal deserializes data into v, which must be a pointer.
	Unmarshal(data []byte, v any) error

	// Name identifies the codec in error messages and diagnostics.
	Name() string
}
