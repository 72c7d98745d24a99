// Package codec moves values, strong types included, through JSON, YAML
// and TOML documents behind one interface.
package codec

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Codec provides encoding/decoding operations.
type Codec interface {
	Encode(v any) ([]byte, error)
	Decode(data []byte, v any) error
}

// TypedCodec provides generic type-safe encoding/decoding operations.
type TypedCodec[T any] interface {
	Encode(T) ([]byte, error)
	Decode([]byte) (T, error)
}

// Format names a document format.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// ParseFormat accepts a format name in any case; "yml" is an alias of yaml.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "toml":
		return FormatTOML, nil
	}
	return "", fmt.Errorf("codec: unknown format %q", name)
}

// For returns the default codec for f. JSON output is indented.
func For(f Format) (Codec, error) {
	switch f {
	case FormatJSON:
		return NewJSONCodec().WithPretty(), nil
	case FormatYAML:
		return NewYAMLCodec(), nil
	case FormatTOML:
		return NewTOMLCodec(), nil
	}
	return nil, fmt.Errorf("codec: unknown format %q", string(f))
}

// JSONCodec encodes/decodes using JSON.
type JSONCodec struct {
	Pretty bool
	Indent string
}

// NewJSONCodec creates a new JSON codec with default options.
func NewJSONCodec() *JSONCodec {
	return &JSONCodec{Indent: "  "}
}

// Encode encodes value to JSON.
func (c *JSONCodec) Encode(v any) ([]byte, error) {
	if c.Pretty {
		return json.MarshalIndent(v, "", c.Indent)
	}
	return json.Marshal(v)
}

// Decode decodes JSON to value.
func (c *JSONCodec) Decode(data []byte, v any) error {
	return json.Unmarshal(data, v)
}

// WithPretty enables pretty printing.
func (c *JSONCodec) WithPretty() *JSONCodec {
	c.Pretty = true
	return c
}

// YAMLCodec encodes/decodes using YAML.
type YAMLCodec struct {
	Indent int
}

// NewYAMLCodec creates a new YAML codec.
func NewYAMLCodec() *YAMLCodec {
	return &YAMLCodec{Indent: 2}
}

// Encode encodes value to YAML.
func (c *YAMLCodec) Encode(v any) ([]byte, error) {
	var buf bytes.Buffer
	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(c.Indent)
	if err := encoder.Encode(v); err != nil {
		return nil, err
	}
	if err := encoder.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Decode decodes YAML to value.
func (c *YAMLCodec) Decode(data []byte, v any) error {
	return yaml.Unmarshal(data, v)
}

// TOMLCodec encodes/decodes using TOML. Only tables (structs and maps) can
// be encoded at the top level.
type TOMLCodec struct {
	Indent string
}

// NewTOMLCodec creates a new TOML codec.
func NewTOMLCodec() *TOMLCodec {
	return &TOMLCodec{Indent: "  "}
}

// Encode encodes value to TOML.
func (c *TOMLCodec) Encode(v any) ([]byte, error) {
	var buf bytes.Buffer
	encoder := toml.NewEncoder(&buf)
	encoder.Indent = c.Indent
	if err := encoder.Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Decode decodes TOML to value.
func (c *TOMLCodec) Decode(data []byte, v any) error {
	_, err := toml.Decode(string(data), v)
	return err
}

// Typed wraps a Codec with type-safe Encode and Decode.
type Typed[T any] struct {
	codec Codec
}

// NewTyped creates a type-safe view of c.
func NewTyped[T any](c Codec) *Typed[T] {
	return &Typed[T]{codec: c}
}

// Encode encodes v.
func (c *Typed[T]) Encode(v T) ([]byte, error) {
	return c.codec.Encode(v)
}

// Decode decodes data into a new T.
func (c *Typed[T]) Decode(data []byte) (T, error) {
	var v T
	err := c.codec.Decode(data, &v)
	return v, err
}
