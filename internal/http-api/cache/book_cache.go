package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"libraryhub/internal/http-api/models"

	"github.com/redis/go-redis/v9"
)

// BookCache is a read-through cache for single-book lookups. It is strictly
// best-effort: a miss or a redis failure falls back to the database, and
// every mutation of a book invalidates its entry.
type BookCache struct {
	rdb    *redis.Client
	ttl    time.Duration
	logger *slog.Logger
}

func NewBookCache(rdb *redis.Client, ttl time.Duration, logger *slog.Logger) *BookCache {
	return &BookCache{rdb: rdb, ttl: ttl, logger: logger}
}

func bookKey(id int64) string {
	return fmt.Sprintf("book:%d", id)
}

func (c *BookCache) Get(ctx context.Context, id int64) (*models.Book, bool) {
	data, err := c.rdb.Get(ctx, bookKey(id)).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.logger.Warn("book cache get failed", "book_id", id, "error", err)
		}
		return nil, false
	}
	var book models.Book
	if err := json.Unmarshal(data, &book); err != nil {
		c.logger.Warn("book cache entry corrupt, dropping", "book_id", id, "error", err)
		c.Invalidate(ctx, id)
		return nil, false
	}
	return &book, true
}

func (c *BookCache) Set(ctx context.Context, book *models.Book) {
	data, err := json.Marshal(book)
	if err != nil {
		return
	}
	if err := c.rdb.Set(ctx, bookKey(book.ID), data, c.ttl).Err(); err != nil {
		c.logger.Warn("book cache set failed", "book_id", book.ID, "error", err)
	}
}

func (c *BookCache) Invalidate(ctx context.Context, id int64) {
	if err := c.rdb.Del(ctx, bookKey(id)).Err(); err != nil {
		c.logger.Warn("book cache invalidate failed", "book_id", id, "error", err)
	}
}
