package logfields

import "log/slog"

// Canonical log field name constants to avoid drift across packages.
const (
	KeyBuildID    = "build_id"
	KeyUnit       = "unit"
	KeyEntity     = "entity"
	KeyKind       = "kind"
	KeyDir        = "dir"
	KeyFile       = "file"
	KeyFormat     = "format"
	KeyPages      = "pages"
	KeyDurationMS = "duration_ms"
	KeyError      = "error"
)

// Simple helpers returning slog.Attr. Keeping each granular means callers can compose.
func BuildID(id string) slog.Attr      { return slog.String(KeyBuildID, id) }
func Unit(slug string) slog.Attr       { return slog.String(KeyUnit, slug) }
func Entity(name string) slog.Attr     { return slog.String(KeyEntity, name) }
func Kind(k string) slog.Attr          { return slog.String(KeyKind, k) }
func Dir(d string) slog.Attr           { return slog.String(KeyDir, d) }
func File(path string) slog.Attr       { return slog.String(KeyFile, path) }
func Format(f string) slog.Attr        { return slog.String(KeyFormat, f) }
func Pages(n int) slog.Attr            { return slog.Int(KeyPages, n) }
func DurationMS(ms float64) slog.Attr  { return slog.Float64(KeyDurationMS, ms) }

func Error(err error) slog.Attr {
	if err == nil {
		return slog.String(KeyError, "")
	}
	return slog.String(KeyError, err.Error())
}
