// Package codec centralizes the encoding of exported clustering results.
//
// Exports record the codec name so a reader can pick the matching decoder.
package codec

import "fmt"

// Codec turns a clustering result into bytes and back. Name is the value
// accepted by ByName and the --codec flag.
type Codec interface {
	Marshal(v any) ([]byte, error)
	Unmarshal(data []byte, v any) error
	Name() string
}

// ByName resolves a configured codec name ("json" or "go-json").
func ByName(name string) (Codec, bool) {
	switch name {
	case "json":
		return JSON{}, true
	case "go-json":
		return GoJSON{}, true
	default:
		return nil, false
	}
}

// MustMarshal encodes v and panics on failure. Use it only for values that
// always encode, such as fixtures. A nil c selects Default.
func MustMarshal(c Codec, v any) []byte {
	if c == nil {
		c = Default
	}
	b, err := c.Marshal(v)
	if err != nil {
		panic(fmt.Errorf("codec: encode with %s: %w", c.Name(), err))
	}
	return b
}
