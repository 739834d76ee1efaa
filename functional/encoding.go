package functional

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"

	"gopkg.in/yaml.v3"
)

const (
	leftKey  = "left"
	rightKey = "right"
)

var jsonNull = []byte("null")

// MarshalJSON encodes None as null and Some(v) as v.
func (o Option[T]) MarshalJSON() ([]byte, error) {
	if !o.present {
		return jsonNull, nil
	}
	return json.Marshal(o.value)
}

// UnmarshalJSON decodes null as None and anything else as Some.
func (o *Option[T]) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), jsonNull) {
		*o = None[T]()
		return nil
	}
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*o = Some(v)
	return nil
}

// IsZero reports None, so omitempty and omitzero drop absent fields.
func (o Option[T]) IsZero() bool {
	return !o.present
}

// MarshalYAML implements yaml.Marshaler.
func (o Option[T]) MarshalYAML() (any, error) {
	if !o.present {
		return nil, nil
	}
	return o.value, nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (o *Option[T]) UnmarshalYAML(node *yaml.Node) error {
	if node.ShortTag() == "!!null" {
		*o = None[T]()
		return nil
	}
	var v T
	if err := node.Decode(&v); err != nil {
		return err
	}
	*o = Some(v)
	return nil
}

// LogValue implements slog.LogValuer.
func (o Option[T]) LogValue() slog.Value {
	if !o.present {
		return slog.StringValue("None")
	}
	return slog.AnyValue(o.value)
}

// MarshalJSON encodes the active side as {"left": v} or {"right": v}.
func (e Either[L, R]) MarshalJSON() ([]byte, error) {
	if e.isRight {
		return json.Marshal(map[string]R{rightKey: e.right})
	}
	return json.Marshal(map[string]L{leftKey: e.left})
}

// UnmarshalJSON implements json.Unmarshaler. A JSON null leaves e unchanged.
func (e *Either[L, R]) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), jsonNull) {
		return nil
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}
	if len(fields) != 1 {
		return errEitherShape(len(fields))
	}
	if raw, ok := fields[rightKey]; ok {
		var r R
		if err := json.Unmarshal(raw, &r); err != nil {
			return err
		}
		*e = Right[L](r)
		return nil
	}
	if raw, ok := fields[leftKey]; ok {
		var l L
		if err := json.Unmarshal(raw, &l); err != nil {
			return err
		}
		*e = Left[L, R](l)
		return nil
	}
	return errEitherShape(len(fields))
}

// MarshalYAML implements yaml.Marshaler.
func (e Either[L, R]) MarshalYAML() (any, error) {
	if e.isRight {
		return map[string]R{rightKey: e.right}, nil
	}
	return map[string]L{leftKey: e.left}, nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (e *Either[L, R]) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode || len(node.Content) != 2 {
		return errEitherShape(len(node.Content) / 2)
	}
	key, value := node.Content[0], node.Content[1]
	switch key.Value {
	case rightKey:
		var r R
		if err := value.Decode(&r); err != nil {
			return err
		}
		*e = Right[L](r)
	case leftKey:
		var l L
		if err := value.Decode(&l); err != nil {
			return err
		}
		*e = Left[L, R](l)
	default:
		return errEitherShape(1)
	}
	return nil
}

// LogValue implements slog.LogValuer.
func (e Either[L, R]) LogValue() slog.Value {
	if e.isRight {
		return slog.GroupValue(slog.Any(rightKey, e.right))
	}
	return slog.GroupValue(slog.Any(leftKey, e.left))
}

func errEitherShape(keys int) error {
	return fmt.Errorf("either: want exactly one of %q or %q, got %d key(s)", leftKey, rightKey, keys)
}
