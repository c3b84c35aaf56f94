package roster

import (
	"encoding/json"
	"io"
	"strings"

	"github.com/tougshire/orgchart/pkg/errors"
)

type jsonMember struct {
	Key       string `json:"key"`
	ReportsTo string `json:"reports_to"`
	FullName  string `json:"full_name"`
	Icon      string `json:"icon"`
}

// ReadJSON decodes a roster from a JSON array of objects using the same
// field names as the CSV header:
//
//	[
//	  {"key": "crudy", "full_name": "Casey Rudy"},
//	  {"key": "kbinaxas", "reports_to": "crudy", "full_name": "Kyle Binaxas", "icon": "kyle.jpg"}
//	]
//
// ReadJSON does not close r.
func ReadJSON(r io.Reader, opts Options) (*Roster, error) {
	var data []jsonMember
	if err := json.NewDecoder(r).Decode(&data); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode json")
	}
	records := make([]Record, len(data))
	for i, m := range data {
		records[i] = Record{
			Key:       strings.TrimSpace(m.Key),
			ReportsTo: strings.TrimSpace(m.ReportsTo),
			FullName:  m.FullName,
			Icon:      strings.TrimSpace(m.Icon),
		}
	}
	return FromRecords(records, opts), nil
}
