// Package jsoncodec provides the JSON encoder and decoder used by the fiber app.
//
// Decoding is strict: invalid UTF-8, unpaired surrogate escapes and duplicate
// object names are errors, and object names match case-sensitively.
// Encoding writes strings as they are, without escaping '<', '>', '&',
// U+2028 or U+2029.
package jsoncodec

import "github.com/go-json-experiment/json"

// Marshal satisfies fiber.Config.JSONEncoder.
func Marshal(v any) ([]byte, error) {
	return json.Marshal(v)
}

// Unmarshal satisfies fiber.Config.JSONDecoder.
func Unmarshal(data []byte, v any) error {
	return json.Unmarshal(data, v)
}
