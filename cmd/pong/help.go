// ABOUTME: Help display for the pong CLI with flags, controls, config sources, and examples.
// ABOUTME: Provides printHelp for usage output and envStatus for showing active PONG_* overrides.
package main

import (
	"fmt"
	"io"
	"os"
)

const pongASCII = `
  ┌──────────────────────────────┐
  │ █             │            █ │
  │ █             ●            █ │
  │ █             │            █ │
  └──────────────────────────────┘
`

// envKeys are the environment overrides config.Load understands.
var envKeys = []string{
	"PONG_VICTORY_SCORE",
	"PONG_TICK_RATE",
	"PONG_DEFAULT_SPEED",
	"PONG_MAX_SPEED",
	"PONG_PLAYER_NAME",
	"PONG_COMPUTER_NAME",
	"PONG_SEED",
}

// printHelp writes a formatted help message to w.
func printHelp(w io.Writer, ver string) {
	fmt.Fprint(w, pongASCII)
	fmt.Fprintf(w, "pong %s: one player against a computer paddle\n", ver)
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  pong                        Play in the terminal")
	fmt.Fprintln(w, "  pong -headless              Simulate a match and print the result")
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -config <file>        YAML config (default: $XDG_CONFIG_HOME/pong/config.yaml)")
	fmt.Fprintln(w, "  -seed <n>             Seed the random source for a reproducible match")
	fmt.Fprintln(w, "  -headless             Run without the terminal UI (implied when stdout is not a terminal)")
	fmt.Fprintf(w, "  -max-ticks <n>        Headless step limit, 0 for none (default: %d)\n", defaultMaxTicks)
	fmt.Fprintln(w, "  -log <file>           Write the interactive mode's log to a file")
	fmt.Fprintln(w, "  -verbose              Log every match event in headless mode")
	fmt.Fprintln(w, "  -version              Print version and exit")
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Controls:")
	fmt.Fprintln(w, "  mouse                 Move your paddle")
	fmt.Fprintln(w, "  click / space         Serve; after a win, clear the board (serve again to play)")
	fmt.Fprintln(w, "  ↑ ↓                   Move your paddle without a mouse")
	fmt.Fprintln(w, "  tab                   Toggle the match log")
	fmt.Fprintln(w, "  q                     Quit")
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Environment:")
	for _, line := range envStatus() {
		fmt.Fprintf(w, "  %s\n", line)
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Examples:")
	fmt.Fprintln(w, "  pong -seed 42")
	fmt.Fprintln(w, "  PONG_VICTORY_SCORE=5 pong")
	fmt.Fprintln(w, "  pong -headless -seed 7 -max-ticks 0")
}

// envStatus reports each override and whether it is currently set.
func envStatus() []string {
	lines := make([]string, 0, len(envKeys))
	for _, key := range envKeys {
		if v, ok := os.LookupEnv(key); ok {
			lines = append(lines, fmt.Sprintf("%-20s = %s", key, v))
		} else {
			lines = append(lines, fmt.Sprintf("%-20s (not set)", key))
		}
	}
	return lines
}
