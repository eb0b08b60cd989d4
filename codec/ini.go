package codec

import (
	"bytes"

	"gopkg.in/ini.v1"
)

// INI encodes records as INI files via gopkg.in/ini.v1. INI is the most
// constrained built-in format: the record must be a struct, top-level fields
// become keys in the default section and struct fields become sections.
// Records outside that shape fail to encode.
type INI struct{}

func (INI) Marshal(v any) ([]byte, error) {
	f := ini.Empty()
	if err := ini.ReflectFrom(f, v); err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if _, err := f.WriteTo(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (INI) Unmarshal(data []byte, v any) error {
	f, err := ini.Load(data)
	if err != nil {
		return err
	}
	return f.MapTo(v)
}

func (INI) Name() string { return "ini" }
