package answers

// Clean returns a copy of record with nil values, Missing sentinels, and empty
// containers pruned recursively. The result never holds a key whose value is
// nil or an empty map/slice, and applying Clean to its own output is a no-op.
func Clean(record Record) Record {
	cleaned := cleanMap(record)
	if cleaned == nil {
		return Record{}
	}
	return cleaned
}

func cleanMap(m map[string]any) map[string]any {
	if len(m) == 0 {
		return nil
	}
	out := make(map[string]any, len(m))
	for key, value := range m {
		if cleaned, keep := cleanValue(value); keep {
			out[key] = cleaned
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

func cleanValue(v any) (any, bool) {
	switch value := v.(type) {
	case nil:
		return nil, false
	case missing:
		return nil, false
	case Record:
		cleaned := cleanMap(value)
		return cleaned, cleaned != nil
	case map[string]any:
		cleaned := cleanMap(value)
		return cleaned, cleaned != nil
	case []any:
		return cleanSlice(value)
	case []string:
		if len(value) == 0 {
			return nil, false
		}
		return value, true
	default:
		return value, true
	}
}

func cleanSlice(items []any) (any, bool) {
	if len(items) == 0 {
		return nil, false
	}
	out := make([]any, 0, len(items))
	for _, item := range items {
		switch element := item.(type) {
		case nil:
			continue
		case missing:
			continue
		case map[string]any:
			// Elements keep their slot even when the clean pass empties
			// them; only the key-level prune removes empty containers.
			out = append(out, orEmpty(cleanMap(element)))
		case Record:
			out = append(out, orEmpty(cleanMap(element)))
		default:
			out = append(out, element)
		}
	}
	if len(out) == 0 {
		return nil, false
	}
	return out, true
}

func orEmpty(m map[string]any) map[string]any {
	if m == nil {
		return map[string]any{}
	}
	return m
}
