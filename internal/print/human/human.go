// Package human provides types that support parsing and formatting
// human-friendly representations of values in various units.
//
// The types implement flag.Value and the text, JSON and YAML (un)marshaling
// interfaces so they can be used directly in command line options and
// configuration files:
//
//	type responseConfig struct {
//		BufferSize human.Bytes    `yaml:"bufferSize"`
//		Timeout    human.Duration `yaml:"timeout"`
//	}
package human

import (
	"fmt"
	"strings"
	"unicode"
)

func trimSpaces(s string) string {
	return strings.TrimRightFunc(s, unicode.IsSpace)
}

func parseUnit(s string) (head, unit string) {
	s = strings.TrimSpace(s)
	i := strings.LastIndexFunc(s, func(r rune) bool {
		return !unicode.IsLetter(r)
	})
	if i < 0 {
		return "", s
	}
	return trimSpaces(s[:i+1]), s[i+1:]
}

func match(s, pattern string) bool {
	return len(s) <= len(pattern) && strings.EqualFold(s, pattern[:len(s)])
}

type suffix byte

func (c suffix) trim(s string) string {
	for len(s) > 0 && s[len(s)-1] == byte(c) {
		s = s[:len(s)-1]
	}
	return s
}

func ftoa(value, scale float64) string {
	var format string

	if value == 0 {
		return "0"
	}

	switch {
	case (value / scale) >= 100:
		format = "%.0f"
	case (value / scale) >= 10:
		format = "%.1f"
	case scale > 1:
		format = "%.2f"
	default:
		format = "%.3f"
	}

	s := fmt.Sprintf(format, value/scale)
	if strings.Contains(s, ".") {
		s = suffix('0').trim(s)
		s = suffix('.').trim(s)
	}
	return s
}
