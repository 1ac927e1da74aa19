package cards

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/rbhz/vocab-cards/app/clients/pons"
)

// ErrMalformed is returned when a dictionary response lacks expected blocks
var ErrMalformed = errors.New("unexpected dictionary response structure")

var headwordCleaner = strings.NewReplacer("|", "", "·", "")

// Result holds dictionary data used to enrich a card.
// Translations and Sources are deduplicated independently, so positions don't pair up.
type Result struct {
	Headword     string
	PartOfSpeech string
	Translations []string
	Sources      []string
}

// NewResult extracts card data from the first headword block of the first hit
func NewResult(word string, items []pons.Response) (Result, error) {
	if len(items) == 0 || len(items[0].Hits) == 0 {
		return Result{}, pons.ErrNoResults
	}
	hit := items[0].Hits[0]
	if len(hit.Roms) == 0 {
		return Result{}, errors.Wrap(ErrMalformed, "first hit has no headword blocks")
	}
	rom := hit.Roms[0]
	if rom.Arabs == nil {
		return Result{}, errors.Wrap(ErrMalformed, "headword block has no translation groups")
	}

	headword := rom.Headword
	if headword == "" {
		headword = word
	}
	result := Result{
		Headword:     cleanHeadword(headword),
		PartOfSpeech: rom.Wordclass,
	}
	var translations, sources []string
	for _, arab := range rom.Arabs {
		for _, tr := range arab.Translations {
			target := strings.TrimSpace(tr.Target)
			if target == "" {
				continue
			}
			sources = append(sources, strings.TrimSpace(tr.Source))
			translations = append(translations, target)
		}
	}
	result.Translations = unique(translations)
	result.Sources = unique(sources)
	return result, nil
}

func cleanHeadword(word string) string {
	return strings.TrimSpace(headwordCleaner.Replace(word))
}

// unique drops repeated items keeping first-seen order
func unique(items []string) []string {
	seen := make(map[string]struct{}, len(items))
	res := make([]string, 0, len(items))
	for _, item := range items {
		if _, ok := seen[item]; ok {
			continue
		}
		seen[item] = struct{}{}
		res = append(res, item)
	}
	return res
}
