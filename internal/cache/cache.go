package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// Cache defines the interface for caching external lookup responses
type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte, ttl time.Duration) error
	Delete(key string) error
	Clear() error
}

// Key generates a namespaced cache key for a query sent to an external
// source. The source name ("factcheck", "news") keeps responses from
// different registries apart even when the query text is identical.
func Key(source, query string) string {
	hash := sha256.Sum256([]byte(query))
	return "newsdetect:v1:" + source + ":" + hex.EncodeToString(hash[:])
}
