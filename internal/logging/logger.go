// Package logging writes one JSON object per line through the standard logger.
package logging

import (
	"encoding/json"
	"log"
	"os"
	"sync/atomic"
	"time"
)

type Fields map[string]interface{}

var verbose atomic.Bool

// SetVerbose turns Debug output on or off.
func SetVerbose(on bool) {
	verbose.Store(on)
}

func output(level, msg string, fields Fields) {
	if fields == nil {
		fields = Fields{}
	}
	fields["level"] = level
	fields["ts"] = time.Now().UTC().Format(time.RFC3339)
	fields["msg"] = msg
	b, err := json.Marshal(fields)
	if err != nil {
		log.Printf("%s: %s (%v)\n", level, msg, fields)
		return
	}
	log.Println(string(b))
}

// Info logs an informational message with optional fields.
func Info(msg string, fields Fields) {
	output("info", msg, fields)
}

// Debug logs only when verbose output is on.
func Debug(msg string, fields Fields) {
	if !verbose.Load() {
		return
	}
	output("debug", msg, fields)
}

// Error logs an error message and includes the error text in the fields.
func Error(msg string, err error, fields Fields) {
	output("error", msg, withError(fields, err))
}

// Fatal logs a fatal error and exits the process.
func Fatal(msg string, err error, fields Fields) {
	output("fatal", msg, withError(fields, err))
	os.Exit(1)
}

func withError(fields Fields, err error) Fields {
	if fields == nil {
		fields = Fields{}
	}
	if err != nil {
		fields["error"] = err.Error()
	}
	return fields
}
