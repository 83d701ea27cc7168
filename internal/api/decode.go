package api

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// wrapperKey is the field some API revisions nest the collection under.
const wrapperKey = "content"

// decodeCollection normalizes both response shapes into a slice.
// The wrapper key is checked first; otherwise the payload must itself be an array.
func decodeCollection[T any](body []byte) ([]T, error) {
	body = bytes.TrimSpace(body)
	if len(body) == 0 {
		return nil, fmt.Errorf("%w: empty body", ErrMalformedResponse)
	}

	switch body[0] {
	case '{':
		var wrapper map[string]json.RawMessage
		if err := json.Unmarshal(body, &wrapper); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrMalformedResponse, err)
		}
		raw, ok := wrapper[wrapperKey]
		if !ok {
			return nil, fmt.Errorf("%w: object without %q field", ErrMalformedResponse, wrapperKey)
		}
		return decodeArray[T](raw)
	case '[':
		return decodeArray[T](body)
	default:
		return nil, fmt.Errorf("%w: expected array or object", ErrMalformedResponse)
	}
}

func decodeArray[T any](raw json.RawMessage) ([]T, error) {
	raw = bytes.TrimSpace(raw)
	if bytes.Equal(raw, []byte("null")) {
		return []T{}, nil
	}
	items := []T{}
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedResponse, err)
	}
	return items, nil
}
