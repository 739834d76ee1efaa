// Package codec provides typed JSON and YAML codecs that report failures
// as functional.Either values.
package codec

import (
	"bytes"
	"encoding/json"

	"github.com/authcorp/option/functional"
	"gopkg.in/yaml.v3"
)

// TypedCodec provides generic type-safe encoding/decoding operations.
type TypedCodec[T any] interface {
	Encode(T) ([]byte, error)
	Decode([]byte) (T, error)
}

// TypedJSONCodec provides type-safe JSON encoding/decoding.
type TypedJSONCodec[T any] struct {
	Pretty bool
	Indent string
}

// NewTypedJSONCodec creates a new type-safe JSON codec.
func NewTypedJSONCodec[T any]() *TypedJSONCodec[T] {
	return &TypedJSONCodec[T]{Indent: "  "}
}

// WithPretty enables pretty printing.
func (c *TypedJSONCodec[T]) WithPretty() *TypedJSONCodec[T] {
	c.Pretty = true
	return c
}

// WithIndent sets the indentation string.
func (c *TypedJSONCodec[T]) WithIndent(indent string) *TypedJSONCodec[T] {
	c.Indent = indent
	return c
}

// Encode encodes value to JSON.
func (c *TypedJSONCodec[T]) Encode(v T) ([]byte, error) {
	if c.Pretty {
		return json.MarshalIndent(v, "", c.Indent)
	}
	return json.Marshal(v)
}

// Decode decodes JSON to value.
func (c *TypedJSONCodec[T]) Decode(data []byte) (T, error) {
	var v T
	err := json.Unmarshal(data, &v)
	return v, err
}

// TypedYAMLCodec provides type-safe YAML encoding/decoding.
type TypedYAMLCodec[T any] struct {
	Indent int
}

// NewTypedYAMLCodec creates a new type-safe YAML codec.
func NewTypedYAMLCodec[T any]() *TypedYAMLCodec[T] {
	return &TypedYAMLCodec[T]{Indent: 2}
}

// WithIndent sets the indentation level.
func (c *TypedYAMLCodec[T]) WithIndent(indent int) *TypedYAMLCodec[T] {
	c.Indent = indent
	return c
}

// Encode encodes value to YAML.
func (c *TypedYAMLCodec[T]) Encode(v T) ([]byte, error) {
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
func (c *TypedYAMLCodec[T]) Decode(data []byte) (T, error) {
	var v T
	err := yaml.Unmarshal(data, &v)
	return v, err
}

// Either-based functions for functional error handling

// EncodeEither encodes v, reporting a failure as Left.
func EncodeEither[T any](codec TypedCodec[T], v T) functional.Either[error, []byte] {
	return functional.FromResult(codec.Encode(v))
}

// DecodeEither decodes data, reporting a failure as Left.
func DecodeEither[T any](codec TypedCodec[T], data []byte) functional.Either[error, T] {
	return functional.FromResult(codec.Decode(data))
}

// DecodeOption decodes data and discards the failure reason.
func DecodeOption[T any](codec TypedCodec[T], data []byte) functional.Option[T] {
	return DecodeEither(codec, data).ToOption()
}

// Transcode decodes data with from and re-encodes the result with to.
// The first failure short-circuits.
func Transcode[T any](from, to TypedCodec[T], data []byte) functional.Either[error, []byte] {
	return functional.FlatMapEither(DecodeEither(from, data), func(v T) functional.Either[error, []byte] {
		return EncodeEither(to, v)
	})
}

// EncodeJSON is a convenience function for JSON encoding.
func EncodeJSON[T any](v T) ([]byte, error) {
	return NewTypedJSONCodec[T]().Encode(v)
}

// DecodeJSON is a convenience function for JSON decoding.
func DecodeJSON[T any](data []byte) (T, error) {
	return NewTypedJSONCodec[T]().Decode(data)
}

// EncodeYAML is a convenience function for YAML encoding.
func EncodeYAML[T any](v T) ([]byte, error) {
	return NewTypedYAMLCodec[T]().Encode(v)
}

// DecodeYAML is a convenience function for YAML decoding.
func DecodeYAML[T any](data []byte) (T, error) {
	return NewTypedYAMLCodec[T]().Decode(data)
}
