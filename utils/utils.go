package utils

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

var stdin = bufio.NewReader(os.Stdin)

// Prompt reads one trimmed line from stdin.
func Prompt(label string) string {
	fmt.Print(label)
	line, _ := stdin.ReadString('\n')
	return strings.TrimSpace(line)
}

// Confirm asks a yes/no question; anything but y/yes/s/si is no.
func Confirm(label string) bool {
	switch strings.ToLower(Prompt(label + " (y/n): ")) {
	case "y", "yes", "s", "si":
		return true
	}
	return false
}

// Banner prints the separator line the script summaries use.
func Banner() {
	fmt.Println(strings.Repeat("=", 50))
}

// Preview truncates a secret for diagnostic output so full values never reach
// the terminal.
func Preview(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}

// OrNA substitutes "N/A" for empty optional values in summaries.
func OrNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
