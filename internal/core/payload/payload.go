// Package payload contains the pure business logic for the JSON payload
// stored in a tag's application record.
package payload

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"unicode/utf8"
)

// CurrentVersion is the payload version written by Encode.
const CurrentVersion = 1

// ErrEncoding is returned when an ID cannot be stored as ASCII text.
var ErrEncoding = errors.New("payload encoding error")

// Payload is the {v, id} object stored on a tag.
type Payload struct {
	Version int    `json:"v"`
	ID      string `json:"id"`
}

// wirePayload distinguishes absent keys from zero values while decoding.
type wirePayload struct {
	Version *int    `json:"v"`
	ID      *string `json:"id"`
}

// Encode builds the compact JSON payload {"v":1,"id":<id>} as ASCII bytes.
func Encode(id string) ([]byte, error) {
	for i := 0; i < len(id); i++ {
		if id[i] >= utf8.RuneSelf {
			return nil, fmt.Errorf("%w: id %q contains non-ASCII characters", ErrEncoding, id)
		}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(Payload{Version: CurrentVersion, ID: id}); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEncoding, err)
	}

	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// Decode probes payload for a {v, id} object. It reports false for anything
// else, including records written by unrelated applications. The version is
// returned as found and never validated.
func Decode(payload string) (Payload, bool) {
	if payload == "" {
		return Payload{}, false
	}

	var w wirePayload
	if err := json.Unmarshal([]byte(payload), &w); err != nil {
		return Payload{}, false
	}
	if w.Version == nil || w.ID == nil {
		return Payload{}, false
	}

	return Payload{Version: *w.Version, ID: *w.ID}, true
}
