// Package diag is the debug channel: payload dumps are written to the
// standard logger when enabled, and mirrored to an optional callback so
// callers can capture traces.
package diag

import (
	"encoding/json"
	"log"
)

// Fn receives every emitted payload regardless of the enabled flag.
type Fn func(label, payload string)

func LogJSON(enabled bool, fn Fn, label string, value any) {
	data, err := json.Marshal(value)
	if err != nil {
		LogText(enabled, fn, label, "<marshal error: "+err.Error()+">")
		return
	}
	LogText(enabled, fn, label, string(data))
}

func LogText(enabled bool, fn Fn, label, text string) {
	if fn != nil {
		fn(label, text)
	}
	if enabled {
		log.Printf("%s: %s", label, text)
	}
}
