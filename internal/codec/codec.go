// Package codec obscures the persisted ledger text.
//
// The encoding is reversible by anyone who reads the file. It keeps account
// data from being readable at a glance and nothing more.
package codec

import (
	"encoding/base64"
	"errors"
	"fmt"
)

// ErrDecode is returned when a token is not validly formed.
var ErrDecode = errors.New("malformed store data")

type Codec interface {
	Encode(text string) string
	Decode(token string) (string, error)
}

// Base64 encodes text with standard, padded base64.
type Base64 struct{}

func NewBase64() Base64 {
	return Base64{}
}

func (Base64) Encode(text string) string {
	return base64.StdEncoding.EncodeToString([]byte(text))
}

func (Base64) Decode(token string) (string, error) {
	raw, err := base64.StdEncoding.DecodeString(token)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrDecode, err)
	}
	return string(raw), nil
}
