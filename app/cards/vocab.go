package cards

import (
	"bufio"
	"io"
	"strings"

	"github.com/pkg/errors"
)

const (
	termSeparator     = "-"
	compoundSeparator = "+"
)

// Entry is a single line of the vocabulary file
type Entry struct {
	// Term is the german side as written, compound parts included
	Term string
	// Key is the first compound part, used for dictionary lookup
	Key   string
	Gloss string
}

// Display returns the term with compound parts separated by commas
func (e Entry) Display() string {
	parts := strings.Split(e.Term, compoundSeparator)
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return strings.Join(parts, ", ")
}

// ParseLine splits line on the first dash. Lines without a dash are not entries.
func ParseLine(line string) (Entry, bool) {
	term, gloss, ok := strings.Cut(strings.TrimSpace(line), termSeparator)
	if !ok {
		return Entry{}, false
	}
	term = strings.TrimSpace(term)
	key, _, _ := strings.Cut(term, compoundSeparator)
	return Entry{
		Term:  term,
		Key:   strings.TrimSpace(key),
		Gloss: strings.TrimSpace(gloss),
	}, true
}

// Parse reads vocabulary entries in input order, silently dropping lines without a dash
func Parse(r io.Reader) ([]Entry, error) {
	var entries []Entry
	reader := bufio.NewReader(r)
	for {
		line, err := reader.ReadString('\n')
		if entry, ok := ParseLine(line); ok {
			entries = append(entries, entry)
		}
		if errors.Is(err, io.EOF) {
			return entries, nil
		}
		if err != nil {
			return nil, errors.Wrap(err, "read vocabulary")
		}
	}
}
