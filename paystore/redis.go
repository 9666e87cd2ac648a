package paystore

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisStore keeps payment sessions in Redis with a TTL, so abandoned
// sessions expire on their own and multiple instances share state.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisStore(addr, password string, ttl time.Duration) (*RedisStore, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:         addr,
		Password:     password,
		DB:           0,
		ReadTimeout:  2 * time.Second,
		WriteTimeout: 2 * time.Second,
		DialTimeout:  5 * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	return &RedisStore{client: rdb, ttl: ttl}, nil
}

func (s *RedisStore) Put(ctx context.Context, record PaymentRecord) error {
	payload, err := json.Marshal(record)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, sessionKey(record.Id), payload, s.ttl).Err()
}

func (s *RedisStore) Get(ctx context.Context, id string) (PaymentRecord, error) {
	payload, err := s.client.Get(ctx, sessionKey(id)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return PaymentRecord{}, ErrNotFound
		}
		return PaymentRecord{}, fmt.Errorf("payment session lookup error: %w", err)
	}

	var record PaymentRecord
	if err := json.Unmarshal(payload, &record); err != nil {
		return PaymentRecord{}, fmt.Errorf("invalid payment session payload: %w", err)
	}
	return record, nil
}

func (s *RedisStore) Delete(ctx context.Context, id string) error {
	return s.client.Del(ctx, sessionKey(id)).Err()
}

func (s *RedisStore) Close() error {
	return s.client.Close()
}

func sessionKey(id string) string {
	return "payment:session:" + id
}
