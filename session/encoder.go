package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// ErrMalformedRecord is returned when persisted bytes do not describe a usable session.
var ErrMalformedRecord = errors.New("malformed session record")

// ErrEmptyToken is returned when a record without an auth token would become current.
var ErrEmptyToken = errors.New("session record has empty auth token")

// Encode serializes r the way it is kept in the durable slot.
func Encode(r Record) ([]byte, error) {
	if strings.TrimSpace(r.AuthToken) == "" {
		return nil, ErrEmptyToken
	}
	return json.Marshal(r)
}

// Decode parses a persisted record. Anything that is not a JSON object with a non-empty
// token is rejected with ErrMalformedRecord.
func Decode(data []byte) (Record, error) {
	var r Record
	if err := json.Unmarshal(data, &r); err != nil {
		return Record{}, fmt.Errorf("%w: %v", ErrMalformedRecord, err)
	}
	if strings.TrimSpace(r.AuthToken) == "" {
		return Record{}, fmt.Errorf("%w: missing token", ErrMalformedRecord)
	}
	return r, nil
}
