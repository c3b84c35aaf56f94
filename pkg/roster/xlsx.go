package roster

import (
	"github.com/xuri/excelize/v2"

	"github.com/tougshire/orgchart/pkg/errors"
)

// LoadXLSX reads a roster from the first worksheet of an Excel workbook.
// The sheet uses the same header layout as [ReadCSV]. Trailing empty cells
// are treated as empty values.
func LoadXLSX(path string, opts Options) (*Roster, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "open workbook %s", path)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "workbook %s has no worksheets", path)
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "read sheet %q", sheets[0])
	}
	records, err := recordsFromRows(rows)
	if err != nil {
		return nil, err
	}
	return FromRecords(records, opts), nil
}
