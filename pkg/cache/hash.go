package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
)

// Hash computes a SHA-256 hash of the input data.
// Returns the full 64-character hex string.
func Hash(data []byte) string {
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}

// ConfigKey generates a run-cache key from a resolved configuration value.
// Two configurations that marshal to the same JSON produce the same key,
// regardless of Go struct identity.
func ConfigKey(cfg any) (string, error) {
	data, err := json.Marshal(cfg)
	if err != nil {
		return "", err
	}
	return "run:" + Hash(data), nil
}
