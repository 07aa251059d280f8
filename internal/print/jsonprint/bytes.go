package jsonprint

import (
	"bytes"
	"encoding/json"
	"unicode/utf8"
)

// Bytes encodes raw network bytes as a JSON string. Valid UTF-8 is written as
// text without HTML escaping, so responses like "<html>" stay readable; any
// other input is written in the base64 form encoding/json uses for []byte.
func Bytes(b []byte) ([]byte, error) {
	var v any = b
	if utf8.Valid(b) {
		v = string(b)
	}
	buf := new(bytes.Buffer)
	e := json.NewEncoder(buf)
	e.SetEscapeHTML(false)
	if err := e.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}
