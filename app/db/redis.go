package db

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/go-redis/redis/v8"
)

const prefixCard = "card:"

type RedisStorage struct {
	db *redis.Client
}

// Get exported card from redis
func (s *RedisStorage) Get(key string) (ExportedCard, error) {
	data, err := s.db.Get(context.Background(), prefixCard+key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return ExportedCard{}, ErrNotFound
		}
		return ExportedCard{}, fmt.Errorf("fetching card: %w", err)
	}
	var card ExportedCard
	if jerr := json.NewDecoder(bytes.NewBufferString(data)).Decode(&card); jerr != nil {
		return ExportedCard{}, fmt.Errorf("unmarshal card: %w", jerr)
	}
	return card, nil
}

// Save exported card to redis
func (s *RedisStorage) Save(card ExportedCard) error {
	jdata, jerr := json.Marshal(card)
	if jerr != nil {
		return fmt.Errorf("marshal card: %w", jerr)
	}
	if err := s.db.Set(context.Background(), prefixCard+card.Key, string(jdata), 0).Err(); err != nil {
		return fmt.Errorf("saving card: %w", err)
	}
	return nil
}

// NewRedisStorage creates RedisStorage with given url
func NewRedisStorage(url string) (*RedisStorage, error) {
	opt, err := redis.ParseURL(url)
	if err != nil {
		return nil, err
	}
	rdb := redis.NewClient(opt)
	if _, err := rdb.Ping(context.Background()).Result(); err != nil {
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return &RedisStorage{db: rdb}, nil
}
