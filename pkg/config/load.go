package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/dshills/boothopt/pkg/scene"
)

// LoadScene reads, strips comments from, parses, and validates a scene
// configuration file in the commented JSON-like format described in
// spec §6.
func LoadScene(path string) (*scene.Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	return LoadSceneFromBytes(data)
}

// LoadSceneFromBytes parses a commented JSON-like scene configuration
// from a byte slice. Useful for testing and programmatic config
// generation.
func LoadSceneFromBytes(data []byte) (*scene.Scene, error) {
	stripped := StripComments(data)

	var s scene.Scene
	if err := json.Unmarshal(stripped, &s); err != nil {
		return nil, fmt.Errorf("parsing config JSON: %w", err)
	}

	s.Solver = s.Solver.Normalized()

	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	return &s, nil
}

// StripComments removes C-style block comments (`/* ... */`) and
// line comments (`//` to end of line) from a JSON-like byte stream,
// leaving everything inside string literals untouched. The input need
// not otherwise be valid JSON; StripComments only tracks string-literal
// boundaries and comment delimiters, byte by byte.
func StripComments(data []byte) []byte {
	out := make([]byte, 0, len(data))
	inString := false
	escaped := false

	for i := 0; i < len(data); i++ {
		c := data[i]

		if inString {
			out = append(out, c)
			if escaped {
				escaped = false
			} else if c == '\\' {
				escaped = true
			} else if c == '"' {
				inString = false
			}
			continue
		}

		switch {
		case c == '"':
			inString = true
			out = append(out, c)
		case c == '/' && i+1 < len(data) && data[i+1] == '/':
			for i < len(data) && data[i] != '\n' {
				i++
			}
			if i < len(data) {
				out = append(out, '\n')
			}
		case c == '/' && i+1 < len(data) && data[i+1] == '*':
			i += 2
			for i+1 < len(data) && !(data[i] == '*' && data[i+1] == '/') {
				i++
			}
			i++ // now points at '/', loop's i++ advances past it
		default:
			out = append(out, c)
		}
	}

	return out
}
