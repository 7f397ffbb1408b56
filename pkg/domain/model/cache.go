package model

import "time"

// SourceVersionDir marks a cache entry aggregated from multiple files, which
// has no single content-addressable version.
const SourceVersionDir = "dir"

// CacheEntry is one persisted documentation record. Content is immutable once
// written; a refresh replaces the whole entry at the same key.
type CacheEntry struct {
	Content       string    `json:"content"`
	FetchedAt     time.Time `json:"fetched_at"`
	SourceVersion string    `json:"source_version"`
}

// Fresh reports whether the entry is within the TTL at the given time.
// Entries outside the TTL are stale and usable only as a fallback.
func (x *CacheEntry) Fresh(now time.Time, ttl time.Duration) bool {
	return now.Sub(x.FetchedAt) < ttl
}
