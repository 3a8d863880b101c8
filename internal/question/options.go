package question

import (
	"encoding/json"
	"fmt"
	"strings"
)

// OptionList is an ordered sequence of answer options. The backend is
// loose about the wire shape: options arrive as a JSON array, as a
// JSON-encoded array inside a string, or as a comma-separated string.
// Decoding normalizes all three into trimmed strings so the raw union
// never escapes this package.
type OptionList []string

// UnmarshalJSON decodes any of the supported wire shapes.
func (o *OptionList) UnmarshalJSON(data []byte) error {
	var direct []string
	if err := json.Unmarshal(data, &direct); err == nil {
		*o = trimAll(direct)
		return nil
	}
	var raw string
	if err := json.Unmarshal(data, &raw); err == nil {
		*o = ParseOptionString(raw)
		return nil
	}
	if string(data) == "null" {
		*o = nil
		return nil
	}
	return fmt.Errorf("options: unsupported shape %s", data)
}

// ParseOptionString normalizes a string-encoded option list. A JSON
// array string decodes as such, a comma-separated string splits on
// commas, and any other non-empty string is a single option.
func ParseOptionString(raw string) OptionList {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil
	}
	var nested []string
	if err := json.Unmarshal([]byte(trimmed), &nested); err == nil {
		return trimAll(nested)
	}
	if strings.Contains(trimmed, ",") {
		return trimAll(strings.Split(trimmed, ","))
	}
	return OptionList{trimmed}
}

// trimAll trims surrounding whitespace from every option.
func trimAll(options []string) OptionList {
	if options == nil {
		return nil
	}
	out := make(OptionList, len(options))
	for i, option := range options {
		out[i] = strings.TrimSpace(option)
	}
	return out
}
