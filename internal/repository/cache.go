package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// ListCache guarda resultados de listagem por tabela. Key fixa a geração
// atual da tabela na chave; Get e Set de uma mesma listagem usam a mesma
// chave, e Invalidate descarta todas as listagens da tabela de uma vez.
type ListCache interface {
	Key(ctx context.Context, tabela, chave string) (string, error)
	Get(ctx context.Context, key string, dest any) (bool, error)
	Set(ctx context.Context, key string, v any) error
	Invalidate(ctx context.Context, tabela string) error
}

const prefixoCache = "painel:lista:"

// RedisCache versiona as chaves por uma geração por tabela: invalidar é
// incrementar a geração, e as chaves antigas expiram pelo TTL.
type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisCache(client *redis.Client, ttl time.Duration) *RedisCache {
	return &RedisCache{client: client, ttl: ttl}
}

func (c *RedisCache) Get(ctx context.Context, key string, dest any) (bool, error) {
	data, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal(data, dest); err != nil {
		return false, fmt.Errorf("cache: decodificar %s: %w", key, err)
	}
	return true, nil
}

func (c *RedisCache) Set(ctx context.Context, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("cache: codificar %s: %w", key, err)
	}
	return c.client.Set(ctx, key, data, c.ttl).Err()
}

func (c *RedisCache) Invalidate(ctx context.Context, tabela string) error {
	return c.client.Incr(ctx, geracaoKey(tabela)).Err()
}

func (c *RedisCache) Key(ctx context.Context, tabela, chave string) (string, error) {
	gen, err := c.client.Get(ctx, geracaoKey(tabela)).Int64()
	if err != nil && !errors.Is(err, redis.Nil) {
		return "", err
	}
	return fmt.Sprintf("%s%s:%d:%s", prefixoCache, tabela, gen, chave), nil
}

func geracaoKey(tabela string) string {
	return prefixoCache + tabela + ":geracao"
}
