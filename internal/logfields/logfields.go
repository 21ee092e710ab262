package logfields

import "log/slog"

// Canonical log field name constants to avoid drift across packages.
const (
	KeyConfigPath = "config_path"
	KeyLocation   = "location"
	KeyVersion    = "version"
	KeyFormat     = "format"
	KeyOutput     = "output"
	KeyIssues     = "issues"
	KeyDurationMS = "duration_ms"
	KeyRemote     = "remote"
	KeyError      = "error"
)

// Simple helpers returning slog.Attr. Keeping each granular means callers can compose.
func ConfigPath(p string) slog.Attr   { return slog.String(KeyConfigPath, p) }
func Location(l string) slog.Attr     { return slog.String(KeyLocation, l) }
func Version(v string) slog.Attr      { return slog.String(KeyVersion, v) }
func Format(f string) slog.Attr       { return slog.String(KeyFormat, f) }
func Output(p string) slog.Attr       { return slog.String(KeyOutput, p) }
func Issues(n int) slog.Attr          { return slog.Int(KeyIssues, n) }
func DurationMS(ms float64) slog.Attr { return slog.Float64(KeyDurationMS, ms) }
func Remote(url string) slog.Attr     { return slog.String(KeyRemote, url) }
func Error(err error) slog.Attr {
	if err == nil {
		return slog.String(KeyError, "")
	}
	return slog.String(KeyError, err.Error())
}
