package domain

import (
	"encoding/json"
	"strconv"
	"strings"
)

// Amount is a nutrient value as received from the USDA API. Records are not
// consistent about the type: most send a JSON number, some send the number as
// a string, and the occasional record sends garbage. Anything unusable decodes
// to the zero Amount instead of failing the whole payload.
type Amount struct {
	value *float64
}

// NewAmount wraps a known value, mainly for building fixtures
func NewAmount(v float64) Amount {
	return Amount{value: &v}
}

// Float returns the decoded value and whether one was present
func (a Amount) Float() (float64, bool) {
	if a.value == nil {
		return 0, false
	}
	return *a.value, true
}

// UnmarshalJSON accepts a JSON number or a numeric string; null and anything
// else leave the Amount empty without raising an error.
func (a *Amount) UnmarshalJSON(data []byte) error {
	a.value = nil

	s := strings.TrimSpace(string(data))
	if s == "" || s == "null" {
		return nil
	}

	if strings.HasPrefix(s, `"`) {
		var raw string
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil
		}
		s = strings.TrimSpace(raw)
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}

	a.value = &v
	return nil
}

// MarshalJSON round-trips the value; an empty Amount marshals as null
func (a Amount) MarshalJSON() ([]byte, error) {
	if a.value == nil {
		return []byte("null"), nil
	}
	return json.Marshal(*a.value)
}
