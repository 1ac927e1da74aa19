package cards

import (
	"bytes"
	"strings"
	"text/template"

	"github.com/pkg/errors"
)

const (
	frontTemplate = `<strong>{{ .Entry.Display }}</strong> <br><br> <span style='font-size:75%'>` +
		`{{ .Result.Headword }} ({{ .Result.PartOfSpeech }}) {{ bullets .Result.Sources }}</span>`
	backTemplate = `{{ .Entry.Gloss }}<br><br> <span style='font-size:75%'>` +
		`Automated translations:{{ bullets .Result.Translations }}</span>`
)

var (
	funcMap = template.FuncMap{
		"bullets": bullets,
	}
	frontTmpl = template.Must(template.New("front").Funcs(funcMap).Parse(frontTemplate))
	backTmpl  = template.Must(template.New("back").Funcs(funcMap).Parse(backTemplate))
)

// Row is a single flashcard
type Row struct {
	Key   string
	Front string
	Back  string
}

func bullets(items []string) string {
	return "<br>• " + strings.Join(items, "<br>• ")
}

// Render builds a card from an entry and its optional dictionary result.
// Without a result the card holds the lookup key and the gloss as is.
func Render(entry Entry, result *Result) (Row, error) {
	row := Row{Key: entry.Key}
	if result == nil {
		row.Front = entry.Key
		row.Back = entry.Gloss
		return row, nil
	}
	data := map[string]interface{}{"Entry": entry, "Result": result}
	buf := &bytes.Buffer{}
	if err := frontTmpl.Execute(buf, data); err != nil {
		return row, errors.Wrap(err, "execute front template")
	}
	row.Front = buf.String()
	buf.Reset()
	if err := backTmpl.Execute(buf, data); err != nil {
		return row, errors.Wrap(err, "execute back template")
	}
	row.Back = buf.String()
	return row, nil
}
