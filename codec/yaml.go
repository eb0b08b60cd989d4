package codec

import "gopkg.in/yaml.v3"

// YAML encodes records as YAML via gopkg.in/yaml.v3. Note that yaml.v3 may
// panic instead of returning an error on kinds it cannot represent (func,
// chan); stores guard their encode path accordingly.
type YAML struct{}

func (YAML) Marshal(v any) ([]byte, error) {
	return yaml.Marshal(v)
}

func (YAML) Unmarshal(data []byte, v any) error {
	return yaml.Unmarshal(data, v)
}

func (YAML) Name() string { return "yaml" }
