package customdata

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"

	"github.com/m-mizutani/goerr/v2"
)

// Store reads the custom data file that earlier workflow steps fill with
// named attributes, e.g. "changed_files"
type Store struct {
	path string
}

// New creates a Store backed by the JSON object at path
func New(path string) *Store {
	return &Store{path: path}
}

// Strings returns the string list stored under key. A missing file or key
// is reported by ok=false, not as an error.
func (s *Store) Strings(key string) ([]string, bool, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, goerr.Wrap(err, "failed to read custom data", goerr.V("path", s.path))
	}

	var values map[string]json.RawMessage
	if err := json.Unmarshal(data, &values); err != nil {
		return nil, false, goerr.Wrap(err, "failed to decode custom data", goerr.V("path", s.path))
	}

	raw, ok := values[key]
	if !ok {
		return nil, false, nil
	}

	var out []string
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, false, goerr.Wrap(err, "custom data value is not a string list",
			goerr.V("path", s.path),
			goerr.V("key", key),
		)
	}

	return out, true, nil
}
