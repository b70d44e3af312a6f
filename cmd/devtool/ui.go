package main

import (
	"fmt"
	"os"
	"os/exec"
	"strings"
)

const (
	colorGreen  = "\033[0;32m"
	colorRed    = "\033[0;31m"
	colorYellow = "\033[1;33m"
	colorBlue   = "\033[0;34m"
	colorReset  = "\033[0m"
)

func say(color, mark, format string, a ...interface{}) {
	fmt.Printf("%s%s %s%s\n", color, mark, fmt.Sprintf(format, a...), colorReset)
}

func PrintInfo(format string, a ...interface{})    { say(colorBlue, "ℹ", format, a...) }
func PrintSuccess(format string, a ...interface{}) { say(colorGreen, "✓", format, a...) }
func PrintWarning(format string, a ...interface{}) { say(colorYellow, "⚠", format, a...) }
func PrintError(format string, a ...interface{})   { say(colorRed, "✗", format, a...) }

func PrintHeader(title string) {
	fmt.Printf("\n%s=== %s ===%s\n", colorYellow, title, colorReset)
}

// commandOutput runs a command and returns its trimmed stdout
func commandOutput(name string, args ...string) (string, error) {
	// #nosec G204 - devtool only runs fixed docker/go commands
	out, err := exec.Command(name, args...).Output()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(out)), nil
}

// runQuiet runs a command discarding its output
func runQuiet(name string, args ...string) error {
	// #nosec G204 - devtool only runs fixed docker/go commands
	return exec.Command(name, args...).Run()
}

// runVerbose runs a command with output piped to the terminal
func runVerbose(name string, args ...string) error {
	// #nosec G204 - devtool only runs fixed docker/go commands
	cmd := exec.Command(name, args...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}
