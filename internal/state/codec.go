package state

import (
	"encoding/json"
	"fmt"
	"reflect"

	"github.com/dmitrijs2005/arunika/internal/common"
	"github.com/go-playground/validator/v10"
)

// Codec converts a slice value to and from its stored bytes.
type Codec[T any] interface {
	Encode(v T) ([]byte, error)
	Decode(b []byte) (T, error)
}

var validate = validator.New(validator.WithRequiredStructEnabled())

type jsonCodec[T any] struct{}

// JSON stores T as JSON. Decoding rejects invalid syntax, a null top-level
// value and any value failing its validate tags.
func JSON[T any]() Codec[T] {
	return jsonCodec[T]{}
}

func (jsonCodec[T]) Encode(v T) ([]byte, error) {
	return json.Marshal(v)
}

func (jsonCodec[T]) Decode(b []byte) (T, error) {
	var out, zero T
	if err := json.Unmarshal(b, &out); err != nil {
		return zero, fmt.Errorf("%w: %v", common.ErrInvalidSlice, err)
	}
	if err := check(out); err != nil {
		return zero, fmt.Errorf("%w: %v", common.ErrInvalidSlice, err)
	}
	return out, nil
}

func check(v any) error {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Map, reflect.Pointer:
		if rv.IsNil() {
			return fmt.Errorf("null value")
		}
		if rv.Kind() == reflect.Pointer {
			return check(rv.Elem().Interface())
		}
		return validate.Var(v, "dive")
	case reflect.Struct:
		return validate.Struct(v)
	}
	return nil
}

type stringCodec struct {
	accept func(string) bool
}

// String stores a plain string. When accept is non-nil, values it rejects
// fail to decode.
func String(accept func(string) bool) Codec[string] {
	return stringCodec{accept: accept}
}

func (stringCodec) Encode(v string) ([]byte, error) {
	return []byte(v), nil
}

func (c stringCodec) Decode(b []byte) (string, error) {
	s := string(b)
	if c.accept != nil && !c.accept(s) {
		return "", fmt.Errorf("%w: unexpected value %q", common.ErrInvalidSlice, s)
	}
	return s, nil
}
