// Package signature authenticates GitHub webhook deliveries.
//
// GitHub signs the exact request body with the shared secret and sends
// "sha256=<hex>" in X-Hub-Signature-256 (and "sha1=<hex>" in the legacy
// X-Hub-Signature). Verification must run on the raw bytes received; any
// re-encoding of the JSON breaks it.
package signature

import (
	"crypto/hmac"
	"crypto/sha1" //nolint:gosec // GitHub's legacy X-Hub-Signature is HMAC-SHA1
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"hash"
	"strings"
)

type Algorithm string

const (
	SHA256 Algorithm = "sha256"
	SHA1   Algorithm = "sha1"
)

const (
	HeaderSHA256 = "X-Hub-Signature-256"
	HeaderSHA1   = "X-Hub-Signature"
)

// Verify reports whether header is a valid signature of body under secret.
// It never panics; every malformed input is simply a failed verification.
func Verify(body []byte, header string, secret string) bool {
	if header == "" || len(body) == 0 || secret == "" {
		return false
	}

	alg, digest, ok := strings.Cut(header, "=")
	if !ok || digest == "" {
		return false
	}

	newHash := hashFor(Algorithm(alg))
	if newHash == nil {
		return false
	}

	expected := []byte(alg + "=" + compute(newHash, body, secret))
	actual := []byte(header)

	return subtle.ConstantTimeCompare(expected, actual) == 1
}

// Sign returns the header value GitHub would send for body.
func Sign(body []byte, secret string, alg Algorithm) string {
	newHash := hashFor(alg)
	if newHash == nil {
		return ""
	}
	return string(alg) + "=" + compute(newHash, body, secret)
}

// PickHeader returns the preferred signature header value: sha256 when
// present, otherwise the legacy sha1 one.
func PickHeader(get func(string) string) string {
	if v := get(HeaderSHA256); v != "" {
		return v
	}
	return get(HeaderSHA1)
}

func hashFor(alg Algorithm) func() hash.Hash {
	switch alg {
	case SHA256:
		return sha256.New
	case SHA1:
		return sha1.New
	default:
		return nil
	}
}

func compute(newHash func() hash.Hash, body []byte, secret string) string {
	mac := hmac.New(newHash, []byte(secret))
	_, _ = mac.Write(body)
	return hex.EncodeToString(mac.Sum(nil))
}
