// Package detector picks the log format from the environment.
package detector

import (
	"os"

	"golang.org/x/term"
)

// LogFormat selects how log records are rendered.
type LogFormat int

const (
	// FormatAuto picks a format from the environment.
	FormatAuto LogFormat = iota
	// FormatPretty renders colored, human readable lines.
	FormatPretty
	// FormatJSON renders one JSON object per record.
	FormatJSON
)

// DetectEnvironment returns the recommended log format.
// CI runs without a terminal on stderr get JSON, everything else pretty output.
func DetectEnvironment() LogFormat {
	return detect(term.IsTerminal(int(os.Stderr.Fd())), os.Getenv("CI"))
}

func detect(isTTY bool, ci string) LogFormat {
	isCI := ci == "true" || ci == "1"
	if isCI && !isTTY {
		return FormatJSON
	}
	return FormatPretty
}

// ResolveFormat applies the user flag to the detected format.
// userFlag should be one of: "auto", "pretty", "json", or empty.
func ResolveFormat(autoDetected LogFormat, userFlag string) LogFormat {
	switch userFlag {
	case "pretty", "text":
		return FormatPretty
	case "json":
		return FormatJSON
	default:
		return autoDetected
	}
}
