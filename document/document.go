package document

import (
	"encoding/json"
	"fmt"
	"math"
)

// Document is a parsed semi-structured source payload.
type Document map[string]any

// Parse decodes a JSON object payload.
func Parse(data []byte) (Document, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse document: %w", err)
	}
	return doc, nil
}

// Lookup returns the value stored under key. The second result is false
// when the key is absent; absence is not an error at this layer.
func (d Document) Lookup(key string) (Value, bool) {
	raw, ok := d[key]
	if !ok {
		return Value{}, false
	}
	return Value{key: key, raw: raw}, true
}

// Snapshot serializes the whole document for diagnostics. Unmarshalable
// content falls back to the fmt representation.
func (d Document) Snapshot() string {
	data, err := json.Marshal(d)
	if err != nil {
		return fmt.Sprintf("%v", map[string]any(d))
	}
	return string(data)
}

// TypeError reports a value whose underlying type does not match the
// requested coercion.
type TypeError struct {
	Key  string
	Want string
	Got  any
}

func (e *TypeError) Error() string {
	return fmt.Sprintf("attribute %q: cannot read %T as %s", e.Key, e.Got, e.Want)
}

// Value is a typed accessor over a single document attribute.
type Value struct {
	key string
	raw any
}

// Raw returns the underlying value as decoded.
func (v Value) Raw() any { return v.raw }

// AsBool coerces the value to a boolean.
func (v Value) AsBool() (bool, error) {
	b, ok := v.raw.(bool)
	if !ok {
		return false, &TypeError{Key: v.key, Want: "boolean", Got: v.raw}
	}
	return b, nil
}

// AsInt coerces the value to an integer. JSON numerics decode as
// float64; a fractional value is a type mismatch, not a truncation.
func (v Value) AsInt() (int64, error) {
	switch n := v.raw.(type) {
	case float64:
		if n != math.Trunc(n) {
			return 0, &TypeError{Key: v.key, Want: "integer", Got: v.raw}
		}
		return int64(n), nil
	case int64:
		return n, nil
	case int:
		return int64(n), nil
	case json.Number:
		i, err := n.Int64()
		if err != nil {
			return 0, &TypeError{Key: v.key, Want: "integer", Got: v.raw}
		}
		return i, nil
	default:
		return 0, &TypeError{Key: v.key, Want: "integer", Got: v.raw}
	}
}

// AsDecimal coerces the value to a decimal number.
func (v Value) AsDecimal() (float64, error) {
	switch n := v.raw.(type) {
	case float64:
		return n, nil
	case int64:
		return float64(n), nil
	case int:
		return float64(n), nil
	case json.Number:
		f, err := n.Float64()
		if err != nil {
			return 0, &TypeError{Key: v.key, Want: "number", Got: v.raw}
		}
		return f, nil
	default:
		return 0, &TypeError{Key: v.key, Want: "number", Got: v.raw}
	}
}

// AsString coerces the value to a string. Non-string values are a
// mismatch: a numeric payload under a text mapping points at a
// misconfigured catalog and should surface, not be stringified away.
func (v Value) AsString() (string, error) {
	s, ok := v.raw.(string)
	if !ok {
		return "", &TypeError{Key: v.key, Want: "text", Got: v.raw}
	}
	return s, nil
}
