package codec

import "encoding/json"

// JSON encodes records as JSON. The zero value produces compact single-line
// output; setting Indent switches to pretty-printed output using that string
// for each nesting level. Both variants read each other's files.
type JSON struct {
	// Indent is the per-level indent string, for example "\t" or "  ".
	// Empty means compact output.
	Indent string
}

func (c JSON) Marshal(v any) ([]byte, error) {
	if c.Indent == "" {
		return json.Marshal(v)
	}
	return json.MarshalIndent(v, "", c.Indent)
}

func (c JSON) Unmarshal(data []byte, v any) error {
	return json.Unmarshal(data, v)
}

func (c JSON) Name() string { return "json" }
