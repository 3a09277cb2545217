// Package flog is a thin verbosity gate over the standard log package.
// ff128's pure arithmetic packages (wideint, field, array, poly) never
// import this — logging is strictly an outer-layer concern exercised by
// engine's shared-memory scratch round-trip warning and by cmd/ffbench.
package flog

import (
	"log"
	"os"
)

// Verbose gates Debugf output. It defaults to the FF128_DEBUG environment
// variable and can be overridden programmatically (e.g. from a -v CLI
// flag).
var Verbose = os.Getenv("FF128_DEBUG") == "1"

var std = log.New(os.Stderr, "ff128: ", log.LstdFlags)

// Debugf logs when Verbose is set; it is a no-op otherwise.
func Debugf(format string, args ...any) {
	if Verbose {
		std.Printf(format, args...)
	}
}

// Warnf always logs; reserved for conditions the caller can recover from
// but that a human should see (e.g. a failed shared-memory scratch round trip).
func Warnf(format string, args ...any) {
	std.Printf("WARN "+format, args...)
}
