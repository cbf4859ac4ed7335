package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/CybrFarhvn06/Codex/internal/models"
)

// Entry is one cached synthesis result. The generator name travels with the
// report so a cache hit reports the same provenance as the original request.
type Entry struct {
	Generator string         `json:"generator"`
	Report    *models.Report `json:"report"`
}

// Reports caches synthesized reports keyed by the normalized topic and query.
// Every failure is absorbed: a cache that is down or corrupt degrades to a
// miss, never to an error.
type Reports struct {
	rdb    *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

func NewReports(rdb *redis.Client, ttl time.Duration, logger *zap.Logger) *Reports {
	return &Reports{rdb: rdb, ttl: ttl, logger: logger}
}

func reportKey(topic, query string) string {
	sum := sha256.Sum256([]byte(topic + "\x00" + query))
	return "report:" + hex.EncodeToString(sum[:])
}

// Get returns the cached entry for a topic/query pair, or false on a miss.
func (c *Reports) Get(ctx context.Context, topic, query string) (*Entry, bool) {
	if c == nil || c.rdb == nil {
		return nil, false
	}

	raw, err := c.rdb.Get(ctx, reportKey(topic, query)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false
	}
	if err != nil {
		c.logger.Warn("report cache read failed", zap.Error(err))
		return nil, false
	}

	var entry Entry
	if err := json.Unmarshal(raw, &entry); err != nil {
		c.logger.Warn("report cache entry is corrupt", zap.Error(err))
		return nil, false
	}
	if entry.Report == nil || entry.Report.Validate() != nil {
		return nil, false
	}
	return &entry, true
}

// Set stores a synthesis result. Write failures are logged and dropped.
func (c *Reports) Set(ctx context.Context, topic, query string, entry *Entry) {
	if c == nil || c.rdb == nil {
		return
	}

	raw, err := json.Marshal(entry)
	if err != nil {
		c.logger.Warn("report cache encode failed", zap.Error(err))
		return
	}
	if err := c.rdb.Set(ctx, reportKey(topic, query), raw, c.ttl).Err(); err != nil {
		c.logger.Warn("report cache write failed", zap.Error(err))
	}
}
