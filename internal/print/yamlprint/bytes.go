package yamlprint

import (
	"encoding/base64"
	"unicode/utf8"

	"gopkg.in/yaml.v3"
)

// Bytes returns the YAML representation of raw network bytes, suitable as the
// result of a MarshalYAML method. Valid UTF-8 is emitted as a string, other
// input as a base64 scalar tagged !!binary.
func Bytes(b []byte) any {
	if utf8.Valid(b) {
		return string(b)
	}
	return &yaml.Node{
		Kind:  yaml.ScalarNode,
		Tag:   "!!binary",
		Value: base64.StdEncoding.EncodeToString(b),
	}
}
