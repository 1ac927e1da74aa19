package cards

import (
	"io"

	"github.com/pkg/errors"
	"github.com/rbhz/vocab-cards/app/clients/pons"
	"github.com/rbhz/vocab-cards/app/db"
	"github.com/rs/zerolog/log"
)

// Dictionary looks up raw dictionary data for a word
type Dictionary interface {
	Get(word string) ([]pons.Response, error)
}

// Generator turns vocabulary entries into cards
type Generator struct {
	dictionary Dictionary
	ledger     db.Storage
	onlyNew    bool
}

// Generate parses r and builds one card per entry in input order.
// Lookup failures are logged and produce a card without dictionary data.
func (g *Generator) Generate(r io.Reader) ([]Row, error) {
	entries, err := Parse(r)
	if err != nil {
		return nil, err
	}
	rows := make([]Row, 0, len(entries))
	for _, entry := range entries {
		if g.onlyNew {
			exported, err := g.isExported(entry.Key)
			if err != nil {
				return nil, err
			}
			if exported {
				log.Debug().Str("word", entry.Key).Msg("skipping already exported word")
				continue
			}
		}
		log.Info().Str("word", entry.Key).Msg("looking up word")
		row, err := Render(entry, g.Lookup(entry.Key))
		if err != nil {
			return nil, errors.Wrapf(err, "render card for %q", entry.Key)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// Lookup resolves word in the dictionary, returning nil when it can't be resolved
func (g *Generator) Lookup(word string) *Result {
	items, err := g.dictionary.Get(word)
	if err == nil {
		var result Result
		if result, err = NewResult(word, items); err == nil {
			return &result
		}
	}
	var statusErr *pons.StatusError
	switch {
	case errors.As(err, &statusErr):
		log.Warn().Str("word", word).Int("status", statusErr.Code).Msg("failed to fetch word")
	case errors.Is(err, pons.ErrNoResults):
		log.Info().Str("word", word).Msg("no results found")
	case errors.Is(err, pons.ErrMalformed), errors.Is(err, ErrMalformed):
		log.Error().Err(err).Str("word", word).Msg("failed to parse dictionary response")
	default:
		log.Warn().Err(err).Str("word", word).Msg("failed to fetch word")
	}
	return nil
}

// Record saves written rows to the ledger, if any
func (g *Generator) Record(rows []Row) error {
	if g.ledger == nil {
		return nil
	}
	for _, row := range rows {
		if err := g.ledger.Save(db.NewExportedCard(row.Key, row.Front, row.Back)); err != nil {
			return errors.Wrapf(err, "record card %q", row.Key)
		}
	}
	return nil
}

func (g *Generator) isExported(key string) (bool, error) {
	if g.ledger == nil {
		return false, nil
	}
	_, err := g.ledger.Get(key)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, db.ErrNotFound) {
		return false, nil
	}
	return false, errors.Wrapf(err, "check ledger for %q", key)
}

// NewGenerator creates Generator. ledger may be nil.
func NewGenerator(dictionary Dictionary, ledger db.Storage, onlyNew bool) *Generator {
	return &Generator{dictionary: dictionary, ledger: ledger, onlyNew: onlyNew}
}
