package roster

import (
	stderrors "errors"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/tougshire/orgchart/pkg/errors"
)

// Load reads the roster at path, choosing the decoder from the file
// extension: ".xlsx" for workbooks, ".json" for JSON, anything else is read
// as CSV.
//
// A missing file yields an error with code FILE_NOT_FOUND; unreadable or
// malformed content yields INVALID_INPUT.
func Load(path string, opts Options) (*Roster, error) {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "roster %s not found", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "stat %s", path)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx":
		return LoadXLSX(path, opts)
	case ".json":
		return loadWith(path, opts, ReadJSON)
	default:
		return loadWith(path, opts, ReadCSV)
	}
}

func loadWith(path string, opts Options, read func(r io.Reader, opts Options) (*Roster, error)) (*Roster, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "open %s", path)
	}
	defer f.Close()

	r, err := read(f, opts)
	if err != nil {
		var e *errors.Error
		if stderrors.As(err, &e) {
			return nil, &errors.Error{Code: e.Code, Message: path + ": " + e.Message, Cause: e.Cause}
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "read %s", path)
	}
	return r, nil
}
