package db

import (
	"encoding/base64"
	"errors"
	"time"

	"github.com/google/uuid"
)

// ErrNotFound is returned when object not found
var ErrNotFound error = errors.New("not found")

// GenerateID generates new uuid and encodes it to base64
func GenerateID() string {
	id := [16]byte(uuid.New())
	return base64.RawURLEncoding.EncodeToString(id[:])
}

// Storage keeps track of cards that were already exported
type Storage interface {
	// Get exported card by lookup key
	Get(string) (ExportedCard, error)
	// Save exported card, replacing a previous record with the same key
	Save(ExportedCard) error
}

// ExportedCard holds a single card written to an output file
type ExportedCard struct {
	ID       string
	Key      string
	Front    string
	Back     string
	Exported time.Time
}

// NewExportedCard creates a record for a card exported now
func NewExportedCard(key string, front string, back string) ExportedCard {
	return ExportedCard{
		ID:       GenerateID(),
		Key:      key,
		Front:    front,
		Back:     back,
		Exported: time.Now().UTC(),
	}
}
