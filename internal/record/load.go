package record

import (
	"encoding/json"
	"io"
	"log/slog"
	"os"

	cderrors "git.home.luguber.info/inful/codedoc/internal/errors"
	"git.home.luguber.info/inful/codedoc/internal/logfields"
)

// Load reads one parser output file: a JSON array of raw records.
// Suppressed records are dropped here so later stages only ever see
// documentable input. Record order is preserved.
func Load(path string) ([]Raw, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, cderrors.RecordLoadFailed(path, err)
	}
	defer f.Close()
	return Decode(f, path)
}

// Decode reads a JSON record array from r. The origin string is used only
// for error context.
func Decode(r io.Reader, origin string) ([]Raw, error) {
	var all []Raw
	dec := json.NewDecoder(r)
	if err := dec.Decode(&all); err != nil {
		return nil, cderrors.RecordLoadFailed(origin, err)
	}

	kept := make([]Raw, 0, len(all))
	for _, rec := range all {
		if rec.Suppressed() {
			slog.Debug("suppressed record", logfields.Entity(rec.Name), logfields.Kind(string(rec.Kind)))
			continue
		}
		kept = append(kept, rec)
	}
	return kept, nil
}
