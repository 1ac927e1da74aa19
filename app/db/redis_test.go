package db

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/go-redis/redismock/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedisGet(t *testing.T) {
	t.Run("existing", func(t *testing.T) {
		db, mock := redismock.NewClientMock()
		storage := RedisStorage{db: db}
		mock.ExpectGet("card:Haus").SetVal(`{"Key":"Haus","Back":"house"}`)

		card, err := storage.Get("Haus")
		assert.NoError(t, err)
		assert.Equal(t, ExportedCard{Key: "Haus", Back: "house"}, card)
	})
	t.Run("not_found", func(t *testing.T) {
		db, mock := redismock.NewClientMock()
		storage := RedisStorage{db: db}
		mock.ExpectGet("card:Haus").RedisNil()

		_, err := storage.Get("Haus")
		assert.ErrorIs(t, err, ErrNotFound)
	})
	t.Run("error", func(t *testing.T) {
		db, mock := redismock.NewClientMock()
		storage := RedisStorage{db: db}
		mock.ExpectGet("card:Haus").SetErr(errors.New("FAIL"))

		_, err := storage.Get("Haus")
		assert.Error(t, err)
		assert.NotErrorIs(t, err, ErrNotFound)
	})
	t.Run("invalid JSON", func(t *testing.T) {
		db, mock := redismock.NewClientMock()
		storage := RedisStorage{db: db}
		mock.ExpectGet("card:Haus").SetVal("NOT_JSON")

		_, err := storage.Get("Haus")
		assert.Error(t, err)
	})
}

func TestRedisSave(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		db, mock := redismock.NewClientMock()
		storage := RedisStorage{db: db}
		card := getCard()
		expected, err := json.Marshal(card)
		require.NoError(t, err)
		mock.ExpectSet("card:Haus", string(expected), 0).SetVal("OK")

		assert.NoError(t, storage.Save(card))
		assert.NoError(t, mock.ExpectationsWereMet())
	})
	t.Run("error", func(t *testing.T) {
		db, mock := redismock.NewClientMock()
		storage := RedisStorage{db: db}
		card := getCard()
		expected, err := json.Marshal(card)
		require.NoError(t, err)
		mock.ExpectSet("card:Haus", string(expected), 0).SetErr(errors.New("FAIL"))

		assert.Error(t, storage.Save(card))
	})
}
