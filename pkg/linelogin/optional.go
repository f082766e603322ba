package linelogin

import (
	"bytes"
	"encoding/json"
)

// Optional holds a field that may be absent from the wire form. An absent
// value is skipped on marshal (fields are tagged omitzero) and JSON null or a
// missing key unmarshals as absent.
type Optional[T any] struct {
	Value   T
	Present bool
}

// Some returns a present Optional holding v.
func Some[T any](v T) Optional[T] {
	return Optional[T]{Value: v, Present: true}
}

// None returns an absent Optional.
func None[T any]() Optional[T] {
	return Optional[T]{}
}

// Get returns the value and whether it was present.
func (o Optional[T]) Get() (T, bool) {
	return o.Value, o.Present
}

// Or returns the value when present, otherwise def.
func (o Optional[T]) Or(def T) T {
	if !o.Present {
		return def
	}
	return o.Value
}

// IsZero reports absence; encoding/json consults it for omitzero.
func (o Optional[T]) IsZero() bool {
	return !o.Present
}

func (o Optional[T]) MarshalJSON() ([]byte, error) {
	if !o.Present {
		return []byte("null"), nil
	}
	return json.Marshal(o.Value)
}

func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		*o = Optional[T]{}
		return nil
	}
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*o = Some(v)
	return nil
}
