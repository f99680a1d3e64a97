package logfields

import "log/slog"

// Canonical log field name constants to avoid drift across packages.
const (
	KeyBuildID    = "build_id"
	KeyStage      = "stage"
	KeyDurationMS = "duration_ms"
	KeyFile       = "file"
	KeyPath       = "path"
	KeyExitCode   = "exit_code"
	KeyConverter  = "converter"
	KeyBytes      = "bytes"
	KeySHA256     = "sha256"
	KeyFragments  = "fragments"
	KeyFailed     = "failed"
	KeyError      = "error"
)

// Simple helpers returning slog.Attr. Keeping each granular means callers can compose.
func BuildID(id string) slog.Attr     { return slog.String(KeyBuildID, id) }
func Stage(name string) slog.Attr     { return slog.String(KeyStage, name) }
func DurationMS(ms float64) slog.Attr { return slog.Float64(KeyDurationMS, ms) }
func File(f string) slog.Attr         { return slog.String(KeyFile, f) }
func Path(p string) slog.Attr         { return slog.String(KeyPath, p) }
func ExitCode(c int) slog.Attr        { return slog.Int(KeyExitCode, c) }
func Converter(n string) slog.Attr    { return slog.String(KeyConverter, n) }
func Bytes(n int) slog.Attr           { return slog.Int(KeyBytes, n) }
func SHA256(sum string) slog.Attr     { return slog.String(KeySHA256, sum) }
func Fragments(n int) slog.Attr       { return slog.Int(KeyFragments, n) }
func Failed(n int) slog.Attr          { return slog.Int(KeyFailed, n) }
func Error(err error) slog.Attr {
	if err == nil {
		return slog.String(KeyError, "")
	}
	return slog.String(KeyError, err.Error())
}
