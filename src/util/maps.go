package util

// UpdateMap merges sub into the nested map at m[key], creating the
// nested map when the key is absent.
func UpdateMap(m map[string]any, key string, sub map[string]any) {
	nested, ok := m[key].(map[string]any)
	if !ok {
		nested = map[string]any{}
		m[key] = nested
	}
	for k, v := range sub {
		nested[k] = v
	}
}

// FetchYamlValuesForKey walks arbitrarily nested maps and lists, as
// produced by YAML or JSON decoding, and collects every value stored
// under key. Map values are merged in flat, scalar values keep the key,
// and matches found deeper in the structure are grouped under their
// parent key. Returns nil when nothing matches.
func FetchYamlValuesForKey(data any, key string) map[string]any {
	var values map[string]any
	add := func(k string, v any) {
		if values == nil {
			values = map[string]any{}
		}
		values[k] = v
	}

	switch data := data.(type) {
	case map[string]any:
		if v, ok := data[key]; ok {
			if sub, ok := v.(map[string]any); ok {
				for k, v := range sub {
					add(k, v)
				}
			} else {
				add(key, v)
			}
		}
		for k, v := range data {
			switch v.(type) {
			case map[string]any, []any:
				if child := FetchYamlValuesForKey(v, key); child != nil {
					add(k, child)
				}
			}
		}
	case []any:
		for _, item := range data {
			for k, v := range FetchYamlValuesForKey(item, key) {
				add(k, v)
			}
		}
	}

	return values
}

// FindMatchingKeys collects every value stored under searchKey anywhere
// in a nested structure of maps and lists.
func FindMatchingKeys(data any, searchKey string) []any {
	var found []any

	switch data := data.(type) {
	case map[string]any:
		for key, value := range data {
			if key == searchKey {
				found = append(found, value)
			} else {
				found = append(found, FindMatchingKeys(value, searchKey)...)
			}
		}
	case []any:
		for _, item := range data {
			found = append(found, FindMatchingKeys(item, searchKey)...)
		}
	}

	return found
}
