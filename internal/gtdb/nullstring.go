package gtdb

import "encoding/json"

// NullString is a schema-tolerant string. GTDB payloads routinely omit fields
// or carry JSON null where a string is expected; either case surfaces as the
// literal string "null" instead of failing deserialization. The zero value
// (field absent from the payload) also marshals as "null".
type NullString string

func (s *NullString) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*s = "null"
		return nil
	}
	var v string
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	*s = NullString(v)
	return nil
}

func (s NullString) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s NullString) String() string {
	if s == "" {
		return "null"
	}
	return string(s)
}

// IsSet reports whether the field carried an actual value.
func (s NullString) IsSet() bool {
	return s != "" && s != "null"
}
