package cards

import "io"

// QuizItem is the expected answer for a term
type QuizItem struct {
	Answer string `json:"answer"`
}

// Inspect maps each lookup key to its gloss. Later entries win.
func Inspect(r io.Reader) (map[string]QuizItem, error) {
	entries, err := Parse(r)
	if err != nil {
		return nil, err
	}
	quiz := make(map[string]QuizItem, len(entries))
	for _, entry := range entries {
		quiz[entry.Key] = QuizItem{Answer: entry.Gloss}
	}
	return quiz, nil
}
