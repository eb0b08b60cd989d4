package codec

import "github.com/pelletier/go-toml/v2"

// TOML encodes records as TOML via github.com/pelletier/go-toml/v2. TOML
// requires string map keys and has no null, so records carrying non-string
// keys or nil values fail to encode.
type TOML struct{}

func (TOML) Marshal(v any) ([]byte, error) {
	return toml.Marshal(v)
}

func (TOML) Unmarshal(data []byte, v any) error {
	return toml.Unmarshal(data, v)
}

func (TOML) Name() string { return "toml" }
