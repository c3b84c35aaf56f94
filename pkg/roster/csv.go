package roster

import (
	"encoding/csv"
	"io"

	"github.com/tougshire/orgchart/pkg/errors"
)

// ReadCSV decodes a delimited roster from r.
//
// The first row is the header. It must contain a "key" column; "reports_to",
// "full_name" and "icon" are optional. Every data row must have as many
// fields as the header. Rows with an empty key are skipped.
//
// ReadCSV does not close r.
func ReadCSV(r io.Reader, opts Options) (*Roster, error) {
	cr := csv.NewReader(r)
	rows, err := cr.ReadAll()
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode csv")
	}
	records, err := recordsFromRows(rows)
	if err != nil {
		return nil, err
	}
	return FromRecords(records, opts), nil
}
