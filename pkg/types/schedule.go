package types

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// Schedule maps weekday labels to broadcast time ranges, e.g.
// {"monday": "08:00-18:00"}, persisted as JSONB.
type Schedule map[string]string

// Value marshals the map into JSON for Postgres.
func (s Schedule) Value() (driver.Value, error) {
	if s == nil {
		return "{}", nil
	}
	buf, err := json.Marshal(s)
	if err != nil {
		return nil, err
	}
	return buf, nil
}

// Scan decodes JSONB into the map.
func (s *Schedule) Scan(value interface{}) error {
	if value == nil {
		*s = nil
		return nil
	}

	var raw []byte
	switch v := value.(type) {
	case string:
		raw = []byte(v)
	case []byte:
		raw = v
	default:
		return fmt.Errorf("schedule: unsupported scan type %T", value)
	}

	result := make(Schedule)
	if err := json.Unmarshal(raw, &result); err != nil {
		return err
	}
	*s = result
	return nil
}
