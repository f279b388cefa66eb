package logfields

import "log/slog"

// Canonical log field name constants to avoid drift across packages.
const (
	KeyConfigPath  = "config_path"
	KeyField       = "field"
	KeyRule        = "rule"
	KeyFingerprint = "fingerprint"
	KeyReloadID    = "reload_id"
	KeyDurationMS  = "duration_ms"
	KeyFile        = "file"
	KeyAddr        = "addr"
	KeyError       = "error"
)

// Simple helpers returning slog.Attr. Keeping each granular means callers can compose.
func ConfigPath(p string) slog.Attr    { return slog.String(KeyConfigPath, p) }
func ConfigPaths(p []string) slog.Attr { return slog.Any(KeyConfigPath, p) }
func Field(f string) slog.Attr         { return slog.String(KeyField, f) }
func Rule(r string) slog.Attr          { return slog.String(KeyRule, r) }
func Fingerprint(fp string) slog.Attr  { return slog.String(KeyFingerprint, short(fp)) }
func ReloadID(id string) slog.Attr     { return slog.String(KeyReloadID, id) }
func DurationMS(ms float64) slog.Attr  { return slog.Float64(KeyDurationMS, ms) }
func File(name string) slog.Attr       { return slog.String(KeyFile, name) }
func Addr(a string) slog.Attr          { return slog.String(KeyAddr, a) }
func Error(err error) slog.Attr {
	if err == nil {
		return slog.String(KeyError, "")
	}
	return slog.String(KeyError, err.Error())
}

// short keeps log lines readable; twelve hex digits are plenty to tell
// snapshots apart.
func short(fp string) string {
	if len(fp) > 12 {
		return fp[:12]
	}
	return fp
}
