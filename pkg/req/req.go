package req

import (
	"encoding/json"
	"fmt"
	"io"
)

// Decode reads a JSON request body into T. Unknown fields are rejected so
// client typos fail loudly instead of silently defaulting.
func Decode[T any](body io.Reader) (T, error) {
	var payload T
	dec := json.NewDecoder(body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&payload); err != nil {
		return payload, fmt.Errorf("decode request body: %w", err)
	}
	return payload, nil
}
