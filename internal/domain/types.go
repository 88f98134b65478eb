package domain

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
)

// StringList is stored as a JSON column so list-valued fields
// (image refs, course refs) survive on any of the supported drivers.
type StringList []string

func (s StringList) Value() (driver.Value, error) {
	if s == nil {
		s = StringList{}
	}
	return json.Marshal(s)
}

func (s *StringList) Scan(value any) error {
	return scanJSON(value, s)
}

// IntList is stored as a JSON column (product sizes).
type IntList []int

func (s IntList) Value() (driver.Value, error) {
	if s == nil {
		s = IntList{}
	}
	return json.Marshal(s)
}

func (s *IntList) Scan(value any) error {
	return scanJSON(value, s)
}

func scanJSON(value, dst any) error {
	if value == nil {
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, dst)
	case string:
		return json.Unmarshal([]byte(v), dst)
	}
	return errors.New("unsupported column type for JSON scan")
}
