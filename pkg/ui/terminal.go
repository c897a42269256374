package ui

import (
	"fmt"
	"os"
)

// Color functions for terminal output
var (
	Cyan   = colorize("\033[36m%s\033[0m")
	Yellow = colorize("\033[33m%s\033[0m")
	Red    = colorize("\033[31m%s\033[0m")
	Green  = colorize("\033[32m%s\033[0m")
	Dim    = colorize("\033[2m%s\033[0m")
)

// colorize returns a function that wraps text with ANSI color codes
func colorize(colorString string) func(string) string {
	return func(text string) string {
		return fmt.Sprintf(colorString, text)
	}
}

var quietMode bool

// SetQuietMode suppresses informational output
func SetQuietMode(quiet bool) {
	quietMode = quiet
}

// IsQuietMode reports whether informational output is suppressed
func IsQuietMode() bool {
	return quietMode
}

// PrintInfo prints a labeled informational line
func PrintInfo(label, value string) {
	if quietMode {
		return
	}
	fmt.Printf("%s %s\n", Cyan(label+":"), value)
}

// PrintSuccess prints a success message in green
func PrintSuccess(msg string) {
	if quietMode {
		return
	}
	fmt.Println(Green(msg))
}

// PrintError prints an error message in red to stderr
func PrintError(label, value string) {
	fmt.Fprintf(os.Stderr, "%s %s\n", Red(label+":"), value)
}
