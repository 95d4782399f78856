package payload

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"
)

// Value is a sealed interface over decoded JSON values.
// Only Null, String, Int, Number, Bool, Array, and Object implement it.
type Value interface {
	payloadValue() // Sealed - only these types implement it
}

// Null represents a JSON null.
type Null struct{}

func (Null) payloadValue() {}

// String represents a JSON string.
type String string

func (String) payloadValue() {}

// Int represents a JSON integer within int64 range.
type Int int64

func (Int) payloadValue() {}

// Number represents a JSON number that is not an int64 integer.
// The literal text is kept verbatim.
type Number string

func (Number) payloadValue() {}

// IsInteger reports whether the literal is an integer too large for Int.
func (n Number) IsInteger() bool {
	return n != "" && !strings.ContainsAny(string(n), ".eE")
}

// Bool represents a JSON boolean.
type Bool bool

func (Bool) payloadValue() {}

// Array represents a JSON array.
type Array []Value

func (Array) payloadValue() {}

// Object represents a JSON object.
type Object map[string]Value

func (Object) payloadValue() {}

// Lookup returns the value stored under key and whether the key was present.
func (o Object) Lookup(key string) (Value, bool) {
	v, ok := o[key]
	return v, ok
}

// SortedKeys returns the object's keys in byte order.
func (o Object) SortedKeys() []string {
	keys := make([]string, 0, len(o))
	for k := range o {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

var (
	// ErrNotJSON is returned when a body is empty or not well-formed JSON.
	ErrNotJSON = errors.New("body is not valid JSON")

	// ErrNotObject is returned when a body is valid JSON but not an object.
	ErrNotObject = errors.New("JSON payload is not an object")
)

// Decode parses a single JSON document into a Value.
// Trailing content after the document is rejected.
func Decode(data []byte) (Value, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var raw any
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotJSON, err)
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, fmt.Errorf("%w: trailing data after document", ErrNotJSON)
	}

	return FromAny(raw)
}

// DecodeObject parses a JSON document that must be an object.
func DecodeObject(data []byte) (Object, error) {
	v, err := Decode(data)
	if err != nil {
		return nil, err
	}
	obj, ok := v.(Object)
	if !ok {
		return nil, ErrNotObject
	}
	return obj, nil
}

// FromAny converts a Go value produced by encoding/json (with UseNumber)
// or built by hand into a Value. Plain Go ints and floats are accepted so
// callers can construct payloads without going through JSON.
func FromAny(v any) (Value, error) {
	switch val := v.(type) {
	case nil:
		return Null{}, nil
	case Value:
		return val, nil
	case bool:
		return Bool(val), nil
	case string:
		return String(val), nil
	case json.Number:
		return fromNumber(val), nil
	case int:
		return Int(val), nil
	case int64:
		return Int(val), nil
	case float64:
		return Number(fmt.Sprint(val)), nil
	case []string:
		arr := make(Array, len(val))
		for i, s := range val {
			arr[i] = String(s)
		}
		return arr, nil
	case []any:
		arr := make(Array, len(val))
		for i, elem := range val {
			converted, err := FromAny(elem)
			if err != nil {
				return nil, fmt.Errorf("array[%d]: %w", i, err)
			}
			arr[i] = converted
		}
		return arr, nil
	case map[string]any:
		obj := make(Object, len(val))
		for k, elem := range val {
			converted, err := FromAny(elem)
			if err != nil {
				return nil, fmt.Errorf("object[%q]: %w", k, err)
			}
			obj[k] = converted
		}
		return obj, nil
	default:
		return nil, fmt.Errorf("unsupported type: %T", v)
	}
}

// ObjectFromMap converts a map of Go values into an Object.
func ObjectFromMap(m map[string]any) (Object, error) {
	v, err := FromAny(m)
	if err != nil {
		return nil, err
	}
	return v.(Object), nil
}

// fromNumber classifies a JSON number literal as Int or Number.
func fromNumber(n json.Number) Value {
	s := string(n)
	if strings.ContainsAny(s, ".eE") {
		return Number(s)
	}
	i, err := n.Int64()
	if err != nil {
		return Number(s)
	}
	return Int(i)
}
