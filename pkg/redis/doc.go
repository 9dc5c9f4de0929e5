// Package redis connects to Redis with go-redis/v9, retrying until the
// server answers, and exposes a readiness probe.
package redis
