// Package redis holds the wallet-session storage: a process-wide client plus
// an encrypted session store keyed under the capy namespace.
package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// keyPrefix namespaces every key this service writes, so a shared Redis
// instance can host other apps without collisions.
const keyPrefix = "capy:"

var client *redis.Client

// Init connects the process-wide client and verifies the server is reachable.
func Init(url, password string) error {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return fmt.Errorf("parse redis url: %w", err)
	}

	if password != "" {
		opts.Password = password
	}

	client = redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis ping: %w", err)
	}

	return nil
}

// SetClient swaps the process-wide client (used for testing)
func SetClient(c *redis.Client) {
	client = c
}

// Close releases the client's connections. Safe to call before Init.
func Close() error {
	if client == nil {
		return nil
	}
	return client.Close()
}
