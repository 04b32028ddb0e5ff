package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"hash"
	"sync"
)

// Signer computes and checks keyed HMAC-SHA256 signatures of response bodies.
// The server sets the HashSHA256 header with Sign and the client checks it
// with Verify. A Signer is safe for concurrent use.
type Signer struct {
	pool sync.Pool
}

// NewSigner returns a Signer keyed with hashKey. Hashers are pooled to avoid
// an allocation per response.
//
// Example usage:
//
//	signer := utils.NewSigner("my-secret-key")
//	w.Header().Set("HashSHA256", signer.Sign(body))
func NewSigner(hashKey string) *Signer {
	key := []byte(hashKey)
	return &Signer{
		pool: sync.Pool{
			New: func() any {
				return hmac.New(sha256.New, key)
			},
		},
	}
}

// Sum returns the raw HMAC-SHA256 digest of data.
func (s *Signer) Sum(data []byte) []byte {
	h := s.pool.Get().(hash.Hash)
	h.Reset()

	h.Write(data)
	sum := h.Sum(nil)

	h.Reset()
	s.pool.Put(h)

	return sum
}

// Sign returns the hex-encoded HMAC-SHA256 digest of data.
func (s *Signer) Sign(data []byte) string {
	return hex.EncodeToString(s.Sum(data))
}

// Verify reports whether signature is the hex-encoded digest of data.
// Comparison is constant-time.
func (s *Signer) Verify(data []byte, signature string) bool {
	got, err := hex.DecodeString(signature)
	if err != nil {
		return false
	}

	return hmac.Equal(got, s.Sum(data))
}
