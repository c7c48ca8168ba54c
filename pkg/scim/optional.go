package scim

import (
	"bytes"
	"encoding/json"
)

// Optional distinguishes an attribute that is absent from one that was
// explicitly set, including set to null. The zero value is absent; fields
// tagged omitzero are dropped from the wire when absent and kept otherwise.
type Optional[T any] struct {
	value T
	set   bool
	null  bool
}

// Some returns an Optional holding v.
func Some[T any](v T) Optional[T] {
	return Optional[T]{value: v, set: true}
}

// Null returns an Optional explicitly set to null.
func Null[T any]() Optional[T] {
	return Optional[T]{set: true, null: true}
}

// IsZero reports whether the attribute is absent. encoding/json consults it
// for omitzero fields.
func (o Optional[T]) IsZero() bool {
	return !o.set
}

// Present reports whether the attribute holds a value.
func (o Optional[T]) Present() bool {
	return o.set && !o.null
}

// IsNull reports whether the attribute was explicitly set to null.
func (o Optional[T]) IsNull() bool {
	return o.set && o.null
}

// Value returns the attribute value and whether one is present.
func (o Optional[T]) Value() (T, bool) {
	if !o.Present() {
		var zero T
		return zero, false
	}

	return o.value, true
}

// Or returns the attribute value, or fallback when absent or null.
func (o Optional[T]) Or(fallback T) T {
	if v, ok := o.Value(); ok {
		return v
	}

	return fallback
}

var nullLiteral = []byte("null")

func (o Optional[T]) MarshalJSON() ([]byte, error) {
	if !o.Present() {
		return nullLiteral, nil
	}

	return json.Marshal(o.value)
}

func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, nullLiteral) {
		*o = Null[T]()
		return nil
	}

	var v T

	err := json.Unmarshal(data, &v)
	if err != nil {
		return err
	}

	*o = Some(v)

	return nil
}
