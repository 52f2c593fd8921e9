package logger

import (
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// New builds the process logger. Output is JSON on stdout, one event
// per line.
func New() zerolog.Logger {
	return zerolog.New(os.Stdout).
		Level(zerolog.InfoLevel).
		With().
		Timestamp().
		Str("service", "authd").
		Logger()
}

func init() {
	zerolog.TimeFieldFormat = time.RFC3339
}

// PII fields that must never appear in clear text in log payloads.
var sensitiveFields = []string{"password", "reset_token", "session_id"}

const redaction = "***"

// Redact masks the values of sensitive fields inside a semicolon
// separated "key=value" payload. Non-sensitive fields pass through
// untouched.
func Redact(message string) string {
	parts := strings.Split(message, ";")
	for i, part := range parts {
		key, _, ok := strings.Cut(part, "=")
		if !ok {
			continue
		}
		for _, field := range sensitiveFields {
			if strings.TrimSpace(key) == field {
				parts[i] = key + "=" + redaction
				break
			}
		}
	}
	return strings.Join(parts, ";")
}
