package configs

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
)

// Canonicalize re-encodes a JSON document with object keys sorted and all
// insignificant whitespace removed, so that equal documents always produce
// equal bytes.
func Canonicalize(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("empty document")
	}

	var v any
	err := json.Unmarshal(data, &v)
	if err != nil {
		return nil, fmt.Errorf("invalid json: %w", err)
	}

	// encoding/json marshals map keys in sorted order
	return json.Marshal(v)
}

// ContentHash returns the first 16 hex chars of the SHA-256 digest over the
// canonical form. Devices compare this against their stored hash to detect
// configuration changes without transferring the payload.
func ContentHash(data []byte) (string, error) {
	canonical, err := Canonicalize(data)
	if err != nil {
		return "", err
	}

	sum := sha256.Sum256(canonical)

	return hex.EncodeToString(sum[:])[:16], nil
}
