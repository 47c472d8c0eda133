package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fatih/color"

	"github.com/lixenwraith/hyperspace/game"
	"github.com/lixenwraith/hyperspace/record"
)

func TestPrintSummary(t *testing.T) {
	prev := color.NoColor
	color.NoColor = true
	defer func() { color.NoColor = prev }()

	tests := []struct {
		name    string
		run     game.RunState
		best    bool
		want    []string
		notWant []string
	}{
		{
			name:    "no run",
			run:     game.RunState{},
			want:    []string{"no run played", "best        score 900  level 3"},
			notWant: []string{"NEW RECORD"},
		},
		{
			name: "record run",
			run:  game.RunState{RunID: "abc", Score: 1200.9, Level: 4, Collected: 5, Hits: 3},
			best: true,
			want: []string{"score 1200  level 4  pickups 5  hits 3", "NEW RECORD!"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			printSummary(&buf, tt.run, record.Record{HighScore: 900.5, BestLevel: 3}, tt.best)
			out := buf.String()
			for _, s := range tt.want {
				if !strings.Contains(out, s) {
					t.Errorf("Expected %q in summary, got:\n%s", s, out)
				}
			}
			for _, s := range tt.notWant {
				if strings.Contains(out, s) {
					t.Errorf("Unexpected %q in summary", s)
				}
			}
		})
	}
}

func TestApplyColorMode(t *testing.T) {
	prev := color.NoColor
	defer func() { color.NoColor = prev }()

	if err := applyColorMode("never"); err != nil || !color.NoColor {
		t.Errorf("Expected never to disable color, err=%v", err)
	}
	if err := applyColorMode("always"); err != nil || color.NoColor {
		t.Errorf("Expected always to enable color, err=%v", err)
	}
	if err := applyColorMode("rainbow"); err == nil {
		t.Errorf("Expected error for unknown mode")
	}
}
