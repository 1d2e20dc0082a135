package cache

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// ErrDisabled is returned by writes on a client without a Redis server.
var ErrDisabled = errors.New("cache disabled")

// Client wraps redis.Client. Reads fail safe by treating connectivity errors
// as misses; writes report them. A nil Client, or one built without an
// address, behaves as an empty cache that accepts no writes.
type Client struct {
	client *redis.Client
}

// New creates a new Redis client. An empty addr yields a disabled client.
func New(addr, password string, db int) *Client {
	if addr == "" {
		return &Client{}
	}
	opts := &redis.Options{
		Addr:         addr,
		Password:     password,
		DB:           db,
		MaxRetries:   1,
		DialTimeout:  2 * time.Second,
		ReadTimeout:  time.Second,
		WriteTimeout: time.Second,
	}
	return &Client{client: redis.NewClient(opts)}
}

// Enabled reports whether the client is backed by a Redis server.
func (c *Client) Enabled() bool {
	return c != nil && c.client != nil
}

// Ping checks connectivity.
func (c *Client) Ping(ctx context.Context) error {
	if !c.Enabled() {
		return nil
	}
	return c.client.Ping(ctx).Err()
}

// Get returns value or nil if missing or redis unavailable.
func (c *Client) Get(ctx context.Context, key string) ([]byte, error) {
	if !c.Enabled() {
		return nil, nil
	}
	res, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		// fail safe: behave like cache miss
		return nil, nil
	}
	return res, nil
}

// Set stores value with TTL. A disabled client returns ErrDisabled.
func (c *Client) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if !c.Enabled() {
		return ErrDisabled
	}
	return c.client.Set(ctx, key, value, ttl).Err()
}

// Close releases the underlying connection pool.
func (c *Client) Close() error {
	if !c.Enabled() {
		return nil
	}
	return c.client.Close()
}
