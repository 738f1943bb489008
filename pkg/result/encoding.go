package result

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"

	"gopkg.in/yaml.v3"
)

var errorType = reflect.TypeFor[error]()

// plain is the interop shape: a discriminator and the payload.
type plain struct {
	Type  string `json:"type" yaml:"type"`
	Value any    `json:"value" yaml:"value"`
}

func (r Result[T, F]) plain() plain {
	if r.IsErr() {
		return plain{Type: KindErr.String(), Value: payload(r.err)}
	}
	return plain{Type: KindOk.String(), Value: payload(r.ok)}
}

// payload replaces a value held through the error interface with its
// message. Concrete error types are encoded as they are.
func payload[V any](v V) any {
	if reflect.TypeFor[V]() != errorType {
		return v
	}
	e := any(v)
	if isNil(e) {
		return nil
	}
	return e.(error).Error()
}

// MarshalJSON produces {"type":"Ok"|"Err","value":<payload>}. A payload
// typed as the error interface is written as its message.
func (r Result[T, F]) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.plain())
}

// UnmarshalJSON accepts the MarshalJSON shape, with "Success" and "Fail" as
// older spellings of the type. A JSON null leaves r unchanged.
func (r *Result[T, F]) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return nil
	}

	var raw struct {
		Type  *string         `json:"type"`
		Value json.RawMessage `json:"value"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	kind, err := parseRawKind(raw.Type)
	if err != nil {
		return err
	}

	if len(raw.Value) == 0 || bytes.Equal(raw.Value, []byte("null")) {
		raw.Value = nil
	}
	decode := func(v any) error {
		if raw.Value == nil {
			return nil
		}
		if e, ok := v.(*error); ok {
			var msg string
			if err := json.Unmarshal(raw.Value, &msg); err != nil {
				return err
			}
			*e = errors.New(msg)
			return nil
		}
		return json.Unmarshal(raw.Value, v)
	}
	return r.assign(kind, decode)
}

// MarshalYAML produces the same type/value mapping as MarshalJSON.
func (r Result[T, F]) MarshalYAML() (interface{}, error) {
	return r.plain(), nil
}

// UnmarshalYAML accepts the MarshalYAML mapping, including the "Success"
// and "Fail" spellings.
func (r *Result[T, F]) UnmarshalYAML(node *yaml.Node) error {
	var raw struct {
		Type  *string   `yaml:"type"`
		Value yaml.Node `yaml:"value"`
	}
	if err := node.Decode(&raw); err != nil {
		return err
	}
	kind, err := parseRawKind(raw.Type)
	if err != nil {
		return err
	}

	decode := func(v any) error {
		if raw.Value.Kind == 0 || raw.Value.Tag == "!!null" {
			return nil
		}
		if e, ok := v.(*error); ok {
			var msg string
			if err := raw.Value.Decode(&msg); err != nil {
				return err
			}
			*e = errors.New(msg)
			return nil
		}
		return raw.Value.Decode(v)
	}
	return r.assign(kind, decode)
}

func parseRawKind(s *string) (Kind, error) {
	if s == nil {
		return 0, fmt.Errorf("%w: missing type", ErrInvalidKind)
	}
	return ParseKind(*s)
}

func (r *Result[T, F]) assign(kind Kind, decode func(v any) error) error {
	if kind == KindErr {
		var v F
		if err := decode(&v); err != nil {
			return fmt.Errorf("decode err value: %w", err)
		}
		*r = Err[T](v)
		return nil
	}

	var v T
	if err := decode(&v); err != nil {
		return fmt.Errorf("decode ok value: %w", err)
	}
	*r = Ok[T, F](v)
	return nil
}
