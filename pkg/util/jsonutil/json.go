// Package jsonutil uses json-iterator to get better performance than standard encoding/json package.
// And it's 100% compatible with encoding/json.
package jsonutil

import (
	"io"

	jsoniter "github.com/json-iterator/go"
)

var defaultStrategy = jsoniter.ConfigCompatibleWithStandardLibrary

// RawMessage is a raw encoded JSON value, kept undecoded until its target
// type is known.
type RawMessage = jsoniter.RawMessage

func Marshal(v interface{}) ([]byte, error) {
	return defaultStrategy.Marshal(v)
}

func Unmarshal(data []byte, v interface{}) error {
	return defaultStrategy.Unmarshal(data, v)
}

func MarshalIndent(v interface{}, prefix, indent string) ([]byte, error) {
	return defaultStrategy.MarshalIndent(v, prefix, indent)
}

// Valid reports whether data is a syntactically valid JSON document.
func Valid(data []byte) bool {
	return defaultStrategy.Valid(data)
}

func NewEncoder(w io.Writer) *jsoniter.Encoder {
	return defaultStrategy.NewEncoder(w)
}

func NewDecoder(r io.Reader) *jsoniter.Decoder {
	return defaultStrategy.NewDecoder(r)
}
