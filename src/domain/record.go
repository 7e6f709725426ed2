package domain

import "encoding/json"

// Record is a single catalogue record: a loosely typed field map as
// returned by the record store. Accessors tolerate missing or
// differently typed fields so callers do not have to guard every read.
type Record map[string]any

func (self Record) Has(key string) bool {
	_, ok := self[key]
	return ok
}

func (self Record) Str(key string) string {
	if value, ok := self[key].(string); ok {
		return value
	}
	return ""
}

// Int64 reads a numeric field. JSON numbers decode as float64.
func (self Record) Int64(key string) int64 {
	switch value := self[key].(type) {
	case float64:
		return int64(value)
	case int64:
		return value
	case int:
		return int64(value)
	default:
		return 0
	}
}

func (self Record) Strs(key string) []string {
	values, ok := self[key].([]any)
	if !ok {
		return nil
	}
	strs := make([]string, 0, len(values))
	for _, value := range values {
		if str, ok := value.(string); ok {
			strs = append(strs, str)
		}
	}
	return strs
}

func (self Record) Map(key string) Record {
	if value, ok := self[key].(map[string]any); ok {
		return Record(value)
	}
	return nil
}

func (self Record) ID() int64 {
	return self.Int64("id")
}

func (self Record) DocumentID() string {
	return self.Str("documentId")
}

// extraFields collects every field of a raw record that is not
// covered by a schema's known keys, preserving unknown fields
// across a decode round trip.
func extraFields(data []byte, known ...string) (Record, error) {
	var all map[string]any
	if err := json.Unmarshal(data, &all); err != nil {
		return nil, err
	}
	for _, key := range known {
		delete(all, key)
	}
	if len(all) == 0 {
		return nil, nil
	}
	return all, nil
}
