package repository

import "encoding/json"

// marshalList encodes a string slice as a JSON array for SQLite storage.
// A nil slice is stored as an empty array, never NULL.
func marshalList(items []string) string {
	if len(items) == 0 {
		return "[]"
	}
	data, err := json.Marshal(items)
	if err != nil {
		return "[]"
	}
	return string(data)
}

// unmarshalList decodes a stored JSON array back into a string slice.
// Returns nil for empty arrays so domain structs stay comparable.
func unmarshalList(s string) []string {
	if s == "" || s == "[]" {
		return nil
	}
	var items []string
	if err := json.Unmarshal([]byte(s), &items); err != nil {
		return nil
	}
	return items
}
