package types

import (
	"fmt"
	"strconv"
	"strings"
)

// FlexID is a numeric identifier that can be unmarshaled from either a JSON
// number or a JSON string. The storefront posts form values, so product ids
// arrive in both shapes.
type FlexID uint64

// UnmarshalJSON implements the json.Unmarshaler interface.
func (f *FlexID) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "" || s == "null" {
		return nil
	}
	s = strings.Trim(s, `"`)
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return fmt.Errorf("FlexID: invalid id %q: %w", s, err)
	}
	*f = FlexID(v)
	return nil
}

// MarshalJSON implements the json.Marshaler interface.
func (f FlexID) MarshalJSON() ([]byte, error) {
	return []byte(strconv.FormatUint(uint64(f), 10)), nil
}

// Uint64 converts FlexID back to uint64.
func (f FlexID) Uint64() uint64 {
	return uint64(f)
}
