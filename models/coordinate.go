package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Coordinate is an optional latitude or longitude value.
//
// It unmarshals from a JSON number, a numeric JSON string, or null, and
// marshals to a JSON number, or null when unset.
type Coordinate struct {
	Value float64
	Valid bool
}

// NewCoordinate returns a set Coordinate holding v.
func NewCoordinate(v float64) Coordinate {
	return Coordinate{Value: v, Valid: true}
}

// Float returns a pointer to the value, or nil when unset.
func (c Coordinate) Float() *float64 {
	if !c.Valid {
		return nil
	}
	v := c.Value
	return &v
}

func (c *Coordinate) UnmarshalJSON(b []byte) error {
	if bytes.Equal(bytes.TrimSpace(b), []byte("null")) {
		*c = Coordinate{}
		return nil
	}

	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*c = NewCoordinate(value)
		return nil
	case string:
		value = strings.TrimSpace(value)
		if value == "" {
			*c = Coordinate{}
			return nil
		}
		f, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return fmt.Errorf("invalid coordinate %q: %w", value, err)
		}
		*c = NewCoordinate(f)
		return nil
	default:
		return fmt.Errorf("invalid coordinate type %T", v)
	}
}

func (c Coordinate) MarshalJSON() ([]byte, error) {
	if !c.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(c.Value)
}
