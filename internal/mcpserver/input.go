package mcpserver

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"github.com/paulway/paramval/schema"
)

// docInput represents the two ways a parameter document can be provided to
// a tool. Exactly one of File or Content must be set.
type docInput struct {
	File    string `json:"file,omitempty"    jsonschema:"Path to a parameter document on disk (YAML or JSON)"`
	Content string `json:"content,omitempty" jsonschema:"Inline parameter document content (YAML or JSON)"`
}

// cacheEntry holds a cached document with LRU ordering and TTL expiry.
type cacheEntry struct {
	doc       *schema.Document
	insertAt  time.Time
	expiresAt time.Time
}

// docCacheStore provides a session-scoped cache for loaded documents.
// File inputs are keyed by (absolutePath, modTime), so edits invalidate the
// entry automatically. Content inputs are keyed by a SHA-256 hash.
// Entries have per-type TTLs and a background sweeper removes expired ones.
type docCacheStore struct {
	mu             sync.Mutex
	entries        map[string]*cacheEntry
	maxSize        int
	sweeperStarted atomic.Bool
}

var docCache = &docCacheStore{
	entries: make(map[string]*cacheEntry),
	maxSize: cfg.CacheMaxSize,
}

// get returns a cached document or nil. Expired entries are lazily removed.
func (c *docCacheStore) get(key string) *schema.Document {
	c.mu.Lock()
	defer c.mu.Unlock()
	if e, ok := c.entries[key]; ok {
		if !e.expiresAt.IsZero() && time.Now().After(e.expiresAt) {
			delete(c.entries, key)
			return nil
		}
		// Touch entry for LRU.
		e.insertAt = time.Now()
		return e.doc
	}
	return nil
}

// putWithTTL stores a document with a TTL, evicting the oldest entry if at
// capacity.
func (c *docCacheStore) putWithTTL(key string, doc *schema.Document, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := time.Now()
	entry := &cacheEntry{doc: doc, insertAt: now, expiresAt: now.Add(ttl)}

	if _, ok := c.entries[key]; ok {
		c.entries[key] = entry
		return
	}

	if len(c.entries) >= c.maxSize {
		var oldestKey string
		var oldestAt time.Time
		for k, e := range c.entries {
			if oldestKey == "" || e.insertAt.Before(oldestAt) {
				oldestKey = k
				oldestAt = e.insertAt
			}
		}
		delete(c.entries, oldestKey)
	}
	c.entries[key] = entry
}

// startSweeper launches a background goroutine that removes expired entries
// every interval. It is started at most once per process.
func (c *docCacheStore) startSweeper(ctx context.Context, interval time.Duration) {
	if !c.sweeperStarted.CompareAndSwap(false, true) {
		return
	}
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				c.sweep()
			}
		}
	}()
}

// sweep removes all expired entries.
func (c *docCacheStore) sweep() {
	c.mu.Lock()
	defer c.mu.Unlock()
	now := time.Now()
	for k, e := range c.entries {
		if !e.expiresAt.IsZero() && now.After(e.expiresAt) {
			delete(c.entries, k)
		}
	}
}

// resolve loads the parameter document described by the input, consulting
// the session cache first.
func (in docInput) resolve() (*schema.Document, error) {
	set := 0
	if in.File != "" {
		set++
	}
	if in.Content != "" {
		set++
	}
	if set != 1 {
		return nil, fmt.Errorf("exactly one of file or content must be provided")
	}

	if in.Content != "" {
		sum := sha256.Sum256([]byte(in.Content))
		key := "content:" + hex.EncodeToString(sum[:])
		if cfg.CacheEnabled {
			if doc := docCache.get(key); doc != nil {
				return doc, nil
			}
		}
		doc, err := schema.LoadWithOptions(schema.WithBytes([]byte(in.Content)))
		if err != nil {
			return nil, err
		}
		if cfg.CacheEnabled {
			docCache.putWithTTL(key, doc, cfg.CacheContentTTL)
		}
		return doc, nil
	}

	abs, err := filepath.Abs(in.File)
	if err != nil {
		return nil, fmt.Errorf("resolving document path: %w", err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return nil, fmt.Errorf("reading document: %w", err)
	}
	key := fmt.Sprintf("file:%s:%d", abs, info.ModTime().UnixNano())
	if cfg.CacheEnabled {
		if doc := docCache.get(key); doc != nil {
			return doc, nil
		}
	}
	doc, err := schema.LoadWithOptions(schema.WithFilePath(abs))
	if err != nil {
		return nil, err
	}
	if cfg.CacheEnabled {
		docCache.putWithTTL(key, doc, cfg.CacheFileTTL)
	}
	return doc, nil
}
