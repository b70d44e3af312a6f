package event

import "github.com/goccy/go-json"

// DecodePayload decodes an event payload into T via type assertion then JSON fallback.
// Payloads published in-process are already the correct struct.
func DecodePayload[T any](input interface{}) (T, error) {
	if v, ok := input.(T); ok {
		return v, nil
	}
	var result T
	data, err := json.Marshal(input)
	if err != nil {
		return result, err
	}
	return result, json.Unmarshal(data, &result)
}
