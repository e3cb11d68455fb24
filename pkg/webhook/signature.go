// Package webhook implements HMAC-SHA256 signing and verification for
// inbound provider callbacks using the GitHub X-Hub-Signature-256 scheme.
package webhook

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
)

// SignatureHeader is the request header carrying the hex-encoded signature.
const SignatureHeader = "X-Hub-Signature-256"

// Signature computes the signature for body under secret, formatted as
// "sha256=<hex digest>".
func Signature(secret, body []byte) string {
	mac := hmac.New(sha256.New, secret)
	mac.Write(body)
	return "sha256=" + hex.EncodeToString(mac.Sum(nil))
}

// Verify reports whether the header-supplied signature matches the expected
// signature for body under secret. Comparison is constant-time. An empty
// signature never verifies.
func Verify(secret, body []byte, signature string) bool {
	if signature == "" {
		return false
	}
	expected := Signature(secret, body)
	return hmac.Equal([]byte(expected), []byte(signature))
}
