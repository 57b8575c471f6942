package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
)

// Hash returns the hex SHA-256 digest of data.
func Hash(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// HashJSON returns the digest of v's JSON encoding. Struct fields encode in
// declaration order and map keys sorted, so equal values hash equally.
func HashJSON(v any) (string, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("hash: %w", err)
	}
	return Hash(data), nil
}

// digestKey builds "namespace:<digest>" from the JSON encoding of parts.
func digestKey(namespace string, parts ...any) string {
	digest, err := HashJSON(parts)
	if err != nil {
		digest = Hash([]byte(fmt.Sprint(parts...)))
	}
	return namespace + ":" + digest
}
