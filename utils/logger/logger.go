// Package logger holds the process-wide logrus logger.
package logger

import (
	"io"
	"os"
	"strings"
	"unicode"

	"github.com/sirupsen/logrus"
)

// Log is the shared logger. It writes to stderr so stdout stays reserved for
// rendered output.
var Log = logrus.New()

func init() {
	Configure(os.Stderr, false)
}

// Configure sets the destination and verbosity of Log.
func Configure(w io.Writer, debug bool) {
	Log.SetOutput(w)
	Log.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
		DisableColors:    true,
	})
	if debug {
		Log.SetLevel(logrus.DebugLevel)
	} else {
		Log.SetLevel(logrus.WarnLevel)
	}
}

// Component returns an entry tagged with the given component name.
func Component(name string) *logrus.Entry {
	return Log.WithField("component", name)
}

const maxSanitizedLength = 100

// SanitizeForLog escapes control characters in s and truncates it, so that
// raw stdin content cannot forge log lines.
func SanitizeForLog(s string) string {
	if s == "" {
		return ""
	}

	var b strings.Builder
	b.Grow(len(s))

	for _, r := range s {
		switch {
		case r == '\n':
			b.WriteString("\\n")
		case r == '\r':
			b.WriteString("\\r")
		case r == '\t':
			b.WriteString("\\t")
		case r == '\\':
			b.WriteString("\\\\")
		case unicode.IsControl(r), !unicode.IsPrint(r):
			b.WriteString("?")
		default:
			b.WriteRune(r)
		}
	}

	out := b.String()
	if len(out) > maxSanitizedLength {
		return out[:maxSanitizedLength] + "...[truncated]"
	}
	return out
}
