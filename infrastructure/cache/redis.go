package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/vfg2006/store-revenue-api/internal/config"
)

// Store é o contrato de cache consumido pelo motor de receita. Valores são
// sempre texto (totais decimais serializados); a política de cache-aside e o
// fail-open ficam na camada de caso de uso, não aqui.
type Store interface {
	// GetString retorna o valor da chave e um booleano indicando presença.
	// Chave ausente não é erro.
	GetString(ctx context.Context, key string) (string, bool, error)
	// SetString grava o valor com o TTL informado; ttl zero grava sem expiração.
	SetString(ctx context.Context, key, value string, ttl time.Duration) error
	// Delete remove as chaves informadas; chaves inexistentes são ignoradas.
	Delete(ctx context.Context, keys ...string) error
	Ping(ctx context.Context) error
	Close() error
}

type RedisStore struct {
	client *redis.Client
}

func NewRedisStore(ctx context.Context, cfg config.Redis) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("erro ao conectar ao Redis: %w", err)
	}

	return &RedisStore{client: client}, nil
}

func (s *RedisStore) GetString(ctx context.Context, key string) (string, bool, error) {
	val, err := s.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("erro ao ler a chave %q do Redis: %w", key, err)
	}
	return val, true, nil
}

func (s *RedisStore) SetString(ctx context.Context, key, value string, ttl time.Duration) error {
	if err := s.client.Set(ctx, key, value, ttl).Err(); err != nil {
		return fmt.Errorf("erro ao gravar a chave %q no Redis: %w", key, err)
	}
	return nil
}

func (s *RedisStore) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	if err := s.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("erro ao remover chaves do Redis: %w", err)
	}
	return nil
}

func (s *RedisStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

func (s *RedisStore) Close() error {
	return s.client.Close()
}
