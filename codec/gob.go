package codec

import (
	"bytes"
	"encoding/gob"
)

// Gob encodes records with encoding/gob, the binary counterpart to the text
// codecs. Gob output is compact and self-describing but Go-specific, so it
// suits settings no other tooling needs to read. Zero-valued fields are not
// transmitted, and records must carry at least one exported field.
type Gob struct{}

func (Gob) Marshal(v any) ([]byte, error) {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (Gob) Unmarshal(data []byte, v any) error {
	return gob.NewDecoder(bytes.NewReader(data)).Decode(v)
}

func (Gob) Name() string { return "gob" }
