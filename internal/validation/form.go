package validation

import (
	"bytes"
	"encoding/json"
)

// FormNumber is a numeric form field kept in its raw text form so that
// non-numeric input reaches validation instead of failing the decode. In JSON
// it accepts a number, a string or null.
type FormNumber string

func (n *FormNumber) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*n = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*n = FormNumber(s)
		return nil
	}
	var num json.Number
	if err := json.Unmarshal(b, &num); err != nil {
		return err
	}
	*n = FormNumber(num.String())
	return nil
}

func (n FormNumber) String() string {
	return string(n)
}
