package strong

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// MarshalText implements encoding.TextMarshaler.
func (o Of[T, S, K]) MarshalText() ([]byte, error) {
	var k K
	return []byte(k.text(o.value)), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (o *Of[T, S, K]) UnmarshalText(data []byte) error {
	var k K
	v, err := k.parse(string(data))
	if err != nil {
		return err
	}
	o.value = v
	return nil
}

// MarshalJSON implements json.Marshaler. Decimals, durations, identifiers,
// times and characters are written as JSON strings; numbers and booleans
// keep their JSON type.
func (o Of[T, S, K]) MarshalJSON() ([]byte, error) {
	var k K
	return json.Marshal(k.native(o.value))
}

// UnmarshalJSON implements json.Unmarshaler. A JSON null leaves the value
// unchanged. Numeric and boolean kinds also accept their quoted form.
func (o *Of[T, S, K]) UnmarshalJSON(data []byte) error {
	var k K
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		return nil
	}
	var raw string
	if len(data) > 0 && data[0] == '"' {
		if err := json.Unmarshal(data, &raw); err != nil {
			return err
		}
	} else {
		var zero T
		_, quoted := k.native(zero).(string)
		if _, numeric := any(k).(bareNumber); quoted && !(numeric && isJSONNumber(data)) {
			return fmt.Errorf("%s: expected JSON string, got %s", k.name(), data)
		}
		raw = string(data)
	}
	v, err := k.parse(raw)
	if err != nil {
		return err
	}
	o.value = v
	return nil
}

// bareNumber marks quoted kinds that also accept an unquoted JSON number.
type bareNumber interface {
	bareNumber()
}

func isJSONNumber(data []byte) bool {
	var n json.Number
	return json.Unmarshal(data, &n) == nil
}

// MarshalYAML implements yaml.Marshaler.
func (o Of[T, S, K]) MarshalYAML() (any, error) {
	var k K
	return k.native(o.value), nil
}

// UnmarshalYAML implements yaml.Unmarshaler for scalar nodes.
func (o *Of[T, S, K]) UnmarshalYAML(node *yaml.Node) error {
	var k K
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("%s: expected scalar YAML node at line %d", k.name(), node.Line)
	}
	if node.Tag == "!!null" {
		return nil
	}
	v, err := k.parse(node.Value)
	if err != nil {
		return err
	}
	o.value = v
	return nil
}

// UnmarshalTOML implements toml.Unmarshaler.
func (o *Of[T, S, K]) UnmarshalTOML(data any) error {
	var k K
	var raw string
	switch v := data.(type) {
	case string:
		raw = v
	case int64:
		raw = strconv.FormatInt(v, 10)
	case float64:
		raw = strconv.FormatFloat(v, 'g', -1, 64)
	case bool:
		raw = strconv.FormatBool(v)
	case time.Time:
		raw = v.Format(time.RFC3339Nano)
	default:
		return fmt.Errorf("%s: unsupported TOML value of type %T", k.name(), data)
	}
	v, err := k.parse(raw)
	if err != nil {
		return err
	}
	o.value = v
	return nil
}
