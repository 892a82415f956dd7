package service

import (
	"encoding/json"
	"errors"
	"reflect"
)

// Optional records whether a JSON field was present in a request body,
// which is what separates a partial update from a zero value.
type Optional[T any] struct {
	Set   bool
	Null  bool
	Value T
}

// Some returns a present, non-null Optional holding v.
func Some[T any](v T) Optional[T] {
	return Optional[T]{Set: true, Value: v}
}

// UnmarshalJSON marks the field as present; a JSON null sets Null. Values
// that do not fit T are reported as *json.UnmarshalTypeError so the decoder
// can attach the field name.
func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	o.Set = true
	if string(data) == "null" {
		o.Null = true
		return nil
	}
	if err := json.Unmarshal(data, &o.Value); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return typeErr
		}
		return &json.UnmarshalTypeError{Value: string(data), Type: reflect.TypeOf(o.Value)}
	}
	return nil
}

func (o Optional[T]) present() bool { return o.Set }
