package cache

import (
	"github.com/vivekminipuri/AI-fake-news-detector/internal/model"
)

// New builds a cache from configuration. Returns nil when caching is
// disabled; callers treat a nil Cache as a pass-through.
func New(cfg model.CacheConfig) Cache {
	if !cfg.Enabled {
		return nil
	}

	if cfg.Dir != "" {
		return NewLayeredCache(cfg.MemoryTTL, cfg.Dir, cfg.DiskTTL)
	}
	return NewMemoryCache(cfg.MemoryTTL, cfg.MemoryTTL/2)
}
