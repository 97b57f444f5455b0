package models

import (
	"encoding/json"
	"strings"
)

// FlexString holds a scalar submitted either as a JSON string or a JSON number.
// Parsing into a typed value is left to the caller.
type FlexString string

// UnmarshalJSON keeps the literal text of numbers and the value of strings
func (f *FlexString) UnmarshalJSON(data []byte) error {
	raw := strings.TrimSpace(string(data))
	if raw == "null" {
		*f = ""
		return nil
	}
	if strings.HasPrefix(raw, `"`) {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = FlexString(s)
		return nil
	}
	*f = FlexString(raw)
	return nil
}

// String returns the trimmed text
func (f FlexString) String() string {
	return strings.TrimSpace(string(f))
}
