package payload

import "encoding/json"

// Stringify serializes source as a JSON object. Nil values are kept as
// explicit nulls. A value tree that cannot be encoded yields "{}".
func Stringify(source map[string]any) string {
	if source == nil {
		source = map[string]any{}
	}
	data, err := json.Marshal(source)
	if err != nil {
		return "{}"
	}
	return string(data)
}

// ParseMap and ParseList are the decoding half of the JSON helper. Device
// replies are plain text today; they are kept for callers reading JSON
// bodies delivered to a SuccessFunc.

// ParseMap decodes a JSON object. Malformed input yields an empty map.
func ParseMap(source string) map[string]any {
	var out map[string]any
	if err := json.Unmarshal([]byte(source), &out); err != nil || out == nil {
		return map[string]any{}
	}
	return out
}

// ParseList decodes a JSON array. Malformed input yields an empty slice.
func ParseList(source string) []any {
	var out []any
	if err := json.Unmarshal([]byte(source), &out); err != nil || out == nil {
		return []any{}
	}
	return out
}
