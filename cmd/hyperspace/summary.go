package main

import (
	"fmt"
	"io"
	"math"
	"os"

	"github.com/fatih/color"

	"github.com/lixenwraith/hyperspace/game"
	"github.com/lixenwraith/hyperspace/record"
)

// applyColorMode maps the -color flag onto fatih/color's global switch
func applyColorMode(mode string) error {
	switch mode {
	case "auto", "":
	case "never":
		color.NoColor = true
	case "always":
		color.NoColor = false
	default:
		return fmt.Errorf("unknown color mode %q (auto, always, never)", mode)
	}
	return nil
}

// printSummary writes the exit report after the terminal is restored
func printSummary(w io.Writer, run game.RunState, rec record.Record, best bool) {
	title := color.New(color.FgCyan, color.Bold)
	label := color.New(color.FgHiBlack)
	value := color.New(color.FgWhite, color.Bold)

	title.Fprintln(w, "HYPERSPACE")

	if run.RunID != "" {
		label.Fprint(w, "  last run    ")
		value.Fprintf(w, "score %d  level %d  pickups %d  hits %d\n",
			int(math.Floor(run.Score)), run.Level, run.Collected, run.Hits)
	} else {
		label.Fprintln(w, "  no run played")
	}

	label.Fprint(w, "  best        ")
	value.Fprintf(w, "score %d  level %d\n", int(math.Floor(rec.HighScore)), rec.BestLevel)

	if best {
		color.New(color.FgYellow, color.Bold).Fprintln(w, "  NEW RECORD!")
	}
}

// fail reports a startup error and exits; the screen is not up yet
func fail(code int, format string, args ...any) {
	color.New(color.FgRed, color.Bold).Fprint(os.Stderr, "hyperspace: ")
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(code)
}
