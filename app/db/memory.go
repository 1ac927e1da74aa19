package db

import "sync"

type InMemoryStorage struct {
	cards map[string]ExportedCard
	mx    sync.RWMutex
}

func (d *InMemoryStorage) Get(key string) (ExportedCard, error) {
	d.mx.RLock()
	defer d.mx.RUnlock()
	card, ok := d.cards[key]
	if !ok {
		return ExportedCard{}, ErrNotFound
	}
	return card, nil
}

func (d *InMemoryStorage) Save(card ExportedCard) error {
	d.mx.Lock()
	defer d.mx.Unlock()
	d.cards[card.Key] = card
	return nil
}

func NewInMemoryStorage() *InMemoryStorage {
	return &InMemoryStorage{cards: make(map[string]ExportedCard)}
}
