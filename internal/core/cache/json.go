package cache

import (
	"context"
	"encoding/json"
	"time"
)

var null = []byte("null")

// GetOrLoadJSON 以 JSON 存取 *T。load 返回 (nil, nil) 时缓存 "null"（负缓存，防止击穿）。
// 缓存里的值解不开（比如结构体改过字段）时删掉该 key，直接回源一次。
func GetOrLoadJSON[T any](
	c *Cache,
	ctx context.Context,
	key string,
	ttl time.Duration,
	load func(ctx context.Context) (*T, error),
) (*T, error) {
	encode := func(ctx context.Context) ([]byte, error) {
		v, err := load(ctx)
		if err != nil {
			return nil, err
		}
		if v == nil {
			return null, nil
		}
		return json.Marshal(v)
	}

	b, err := c.GetOrLoad(ctx, key, ttl, encode)
	if err != nil {
		return nil, err
	}
	out, err := decode[T](b)
	if err == nil {
		return out, nil
	}

	_ = c.Delete(ctx, key)
	if b, err = c.GetOrLoad(ctx, key, ttl, encode); err != nil {
		return nil, err
	}
	return decode[T](b)
}

func decode[T any](b []byte) (*T, error) {
	if string(b) == string(null) {
		return nil, nil
	}
	var out T
	if err := json.Unmarshal(b, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
