package models

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// FlexibleID is an identifier that may arrive in JSON either as a string or
// as a number. Catalog keys are UUIDs for products and integers for packages
// and services, and clients send both forms.
type FlexibleID string

// UnmarshalJSON accepts "abc", "12" and 12
func (id *FlexibleID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*id = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = FlexibleID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("identifier must be a string or a number: %w", err)
	}
	*id = FlexibleID(n.String())
	return nil
}

// String returns the identifier text
func (id FlexibleID) String() string {
	return string(id)
}
