package alfacrm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"
)

// NATSKVConfig configures the NATS JetStream key-value cache backend.
type NATSKVConfig struct {
	// URL is the NATS server URL, e.g. "nats://localhost:4222".
	URL string

	// Bucket is the KV bucket name. Created when it does not exist.
	Bucket string

	// Credentials is an optional path to a NATS credentials file.
	Credentials string

	// TTL is the bucket-level entry lifetime. Zero keeps entries until
	// their own expiry is hit on read.
	TTL time.Duration

	// ConnectTimeout bounds the initial connection. Zero means 5 seconds.
	ConnectTimeout time.Duration
}

// NATSKVCache is a Cache backed by a NATS JetStream key-value bucket, useful
// when several processes should share one index cache.
type NATSKVCache struct {
	conn *nats.Conn
	kv   jetstream.KeyValue
}

// NewNATSKVCache connects to NATS and binds the configured bucket.
func NewNATSKVCache(config *NATSKVConfig) (*NATSKVCache, error) {
	if config == nil || config.URL == "" || config.Bucket == "" {
		return nil, ErrNATSConfigRequired
	}

	connectTimeout := config.ConnectTimeout
	if connectTimeout == 0 {
		connectTimeout = 5 * time.Second
	}

	opts := []nats.Option{nats.Timeout(connectTimeout)}
	if config.Credentials != "" {
		opts = append(opts, nats.UserCredentials(config.Credentials))
	}

	conn, err := nats.Connect(config.URL, opts...)
	if err != nil {
		return nil, fmt.Errorf("connecting to NATS: %w", err)
	}

	js, err := jetstream.New(conn)
	if err != nil {
		conn.Close()

		return nil, fmt.Errorf("creating JetStream context: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()

	kv, err := js.CreateOrUpdateKeyValue(ctx, jetstream.KeyValueConfig{
		Bucket: config.Bucket,
		TTL:    config.TTL,
	})
	if err != nil {
		conn.Close()

		return nil, fmt.Errorf("binding KV bucket %q: %w", config.Bucket, err)
	}

	return &NATSKVCache{conn: conn, kv: kv}, nil
}

// Get retrieves an entry, failing when it is absent or expired.
func (c *NATSKVCache) Get(ctx context.Context, key string) (*CacheEntry, error) {
	kvEntry, err := c.kv.Get(ctx, sanitizeKVKey(key))
	if err != nil {
		if errors.Is(err, jetstream.ErrKeyNotFound) {
			return nil, ErrCacheKeyNotFound
		}

		return nil, fmt.Errorf("reading KV entry: %w", err)
	}

	var entry CacheEntry

	err = json.Unmarshal(kvEntry.Value(), &entry)
	if err != nil {
		return nil, fmt.Errorf("decoding KV entry: %w", err)
	}

	if entry.Expired() {
		_ = c.kv.Delete(ctx, sanitizeKVKey(key))

		return nil, ErrCacheEntryExpired
	}

	return &entry, nil
}

// Set stores an entry.
func (c *NATSKVCache) Set(ctx context.Context, key string, entry *CacheEntry) error {
	if entry == nil {
		return ErrCacheEntryRequired
	}

	data, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("encoding KV entry: %w", err)
	}

	_, err = c.kv.Put(ctx, sanitizeKVKey(key), data)
	if err != nil {
		return fmt.Errorf("writing KV entry: %w", err)
	}

	return nil
}

// Delete removes an entry.
func (c *NATSKVCache) Delete(ctx context.Context, key string) error {
	err := c.kv.Delete(ctx, sanitizeKVKey(key))
	if err != nil && !errors.Is(err, jetstream.ErrKeyNotFound) {
		return fmt.Errorf("deleting KV entry: %w", err)
	}

	return nil
}

// Clear removes all entries from the bucket.
func (c *NATSKVCache) Clear(ctx context.Context) error {
	lister, err := c.kv.ListKeys(ctx)
	if err != nil {
		return fmt.Errorf("listing KV keys: %w", err)
	}

	for key := range lister.Keys() {
		err = c.kv.Delete(ctx, key)
		if err != nil {
			return fmt.Errorf("deleting KV entry: %w", err)
		}
	}

	return nil
}

// Has reports whether a live entry exists for the key.
func (c *NATSKVCache) Has(ctx context.Context, key string) bool {
	entry, err := c.Get(ctx, key)

	return err == nil && entry != nil
}

// Close releases the NATS connection.
func (c *NATSKVCache) Close() {
	c.conn.Close()
}

var kvKeyReplacer = strings.NewReplacer(
	"/", ".",
	"?", "_",
	"&", "_",
	"=", "-",
	" ", "_",
	"{", "_",
	"}", "_",
	`"`, "",
	":", "-",
	",", "_",
	"[", "_",
	"]", "_",
)

// sanitizeKVKey maps cache keys onto the grammar NATS KV accepts. List cache
// keys carry path separators and JSON filter syntax; the path separator maps
// to the subject separator, and a key must not start or end with one nor
// contain an empty token.
func sanitizeKVKey(key string) string {
	sanitized := kvKeyReplacer.Replace(key)

	tokens := make([]string, 0, 8)
	for _, token := range strings.Split(sanitized, ".") {
		if token != "" {
			tokens = append(tokens, token)
		}
	}

	return strings.Join(tokens, ".")
}
