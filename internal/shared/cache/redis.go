package cache

import (
	"encoding/json"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/garyburd/redigo/redis"
)

const keyPrefix = "cache/"

type Redis struct {
	pool *redis.Pool

	hits   uint64
	misses uint64
	errors uint64
}

func NewRedis(redisURL string) *Redis {
	return &Redis{
		pool: &redis.Pool{
			MaxIdle:     10,
			IdleTimeout: 240 * time.Second,
			TestOnBorrow: func(c redis.Conn, t time.Time) error {
				_, pingErr := c.Do("PING")
				return pingErr
			},
			Dial: func() (redis.Conn, error) {
				return redis.DialURL(redisURL)
			},
		},
	}
}

func (r *Redis) Get(key string, dest interface{}) error {
	key = keyPrefix + key

	conn := r.pool.Get()
	defer conn.Close()

	var data []byte
	data, err := redis.Bytes(conn.Do("GET", key))
	if err != nil {
		if err == redis.ErrNil {
			atomic.AddUint64(&r.misses, 1)
			return nil // cache miss
		}
		atomic.AddUint64(&r.errors, 1)
		return fmt.Errorf("error getting key %s: %v", key, err)
	}

	if err = json.Unmarshal(data, dest); err != nil {
		atomic.AddUint64(&r.errors, 1)
		return fmt.Errorf("can't unmarshal json from redis: %s", err)
	}

	atomic.AddUint64(&r.hits, 1)
	return nil
}

func (r *Redis) Set(key string, expireTimeout time.Duration, value interface{}) error {
	key = keyPrefix + key

	valueBytes, err := json.Marshal(value)
	if err != nil {
		atomic.AddUint64(&r.errors, 1)
		return fmt.Errorf("can't json marshal value: %s", err)
	}

	conn := r.pool.Get()
	defer conn.Close()

	_, err = conn.Do("SETEX", key, int(expireTimeout/time.Second), valueBytes)
	if err != nil {
		atomic.AddUint64(&r.errors, 1)
		v := string(valueBytes)
		if len(v) > 15 {
			v = v[0:12] + "..."
		}
		return fmt.Errorf("error setting key %s to %s: %v", key, v, err)
	}

	return nil
}

func (r *Redis) Stats() Stats {
	return Stats{
		Hits:   atomic.LoadUint64(&r.hits),
		Misses: atomic.LoadUint64(&r.misses),
		Errors: atomic.LoadUint64(&r.errors),
	}
}
