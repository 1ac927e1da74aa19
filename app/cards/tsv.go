package cards

import (
	"encoding/csv"
	"io"

	"github.com/pkg/errors"
)

// WriteTSV writes rows as tab separated front and back fields
func WriteTSV(w io.Writer, rows []Row) error {
	writer := csv.NewWriter(w)
	writer.Comma = '\t'
	for _, row := range rows {
		if err := writer.Write([]string{row.Front, row.Back}); err != nil {
			return errors.Wrap(err, "write row")
		}
	}
	writer.Flush()
	return errors.Wrap(writer.Error(), "flush rows")
}
