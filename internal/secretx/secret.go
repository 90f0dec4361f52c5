// Package secretx provides a wrapper for plaintext secrets that blocks
// every default printable representation. A Secret is held only long
// enough to be hashed and is wiped afterwards.
package secretx

import (
	"encoding/json"
	"log/slog"
)

const redacted = "[REDACTED]"

// Secret holds a plaintext credential. It never prints, marshals, or
// logs its contents; the only way to reach the bytes is Expose.
type Secret struct {
	data []byte
}

// New wraps the given bytes. The Secret takes ownership: the caller
// must not reuse the slice.
func New(data []byte) *Secret {
	return &Secret{data: data}
}

// FromString wraps a copy of the given string.
func FromString(s string) *Secret {
	return &Secret{data: []byte(s)}
}

// Expose returns the underlying bytes, or nil after Zero.
func (s *Secret) Expose() []byte {
	return s.data
}

// Zero overwrites the plaintext and releases it. Safe to call twice.
func (s *Secret) Zero() {
	for i := range s.data {
		s.data[i] = 0
	}
	s.data = nil
}

func (s *Secret) String() string {
	return redacted
}

func (s *Secret) GoString() string {
	return redacted
}

// MarshalJSON always emits the redaction marker.
func (s *Secret) MarshalJSON() ([]byte, error) {
	return []byte(`"` + redacted + `"`), nil
}

// UnmarshalJSON accepts a JSON string, so request DTOs can decode a
// password field directly into a Secret.
func (s *Secret) UnmarshalJSON(b []byte) error {
	var v string
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	s.data = []byte(v)
	return nil
}

// LogValue keeps slog output safe even if a Secret is passed as an attr.
func (s *Secret) LogValue() slog.Value {
	return slog.StringValue(redacted)
}
