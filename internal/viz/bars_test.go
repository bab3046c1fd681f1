package viz

import (
	"strings"
	"testing"

	"github.com/san-kum/sortviz/internal/animation"
	"github.com/san-kum/sortviz/internal/sorting"
)

func TestBarLayout(t *testing.T) {
	tests := []struct {
		n, width     int
		wantW, wantG int
	}{
		{5, 80, 6, 1},
		{20, 80, 3, 1},
		{50, 80, 1, 0},
		{99, 80, 1, 0},
		{0, 80, 0, 0},
	}
	for _, tt := range tests {
		w, g := barLayout(tt.n, tt.width)
		if w != tt.wantW || g != tt.wantG {
			t.Errorf("barLayout(%d,%d): expected %d/%d, got %d/%d", tt.n, tt.width, tt.wantW, tt.wantG, w, g)
		}
	}
}

func TestRenderBarsShape(t *testing.T) {
	f := sorting.Frame{
		Values: []int{1, 2, 4},
		Tags:   []sorting.Tag{sorting.Default, sorting.Swapped, sorting.Sorted},
	}
	out := RenderBars(f, ThemeClassic, 20, 4)
	lines := strings.Split(out, "\n")
	if len(lines) != 5 {
		t.Fatalf("expected 4 rows plus axis, got %d", len(lines))
	}
	if !strings.Contains(lines[3], "█") {
		t.Error("bottom row should contain full blocks")
	}
	if !strings.Contains(lines[0], "█") {
		t.Error("tallest bar should reach the top row")
	}
}

func TestRenderBarsEmpty(t *testing.T) {
	out := RenderBars(sorting.Frame{}, ThemeClassic, 40, 3)
	if !strings.Contains(out, "no sequence") {
		t.Error("expected placeholder text")
	}
}

func TestRenderProfile(t *testing.T) {
	if RenderProfile(sorting.Frame{Values: []int{3}}, 20, 3) != "" {
		t.Error("single value should not plot")
	}
	out := RenderProfile(sorting.Frame{Values: []int{3, 1, 2}}, 20, 3)
	if !strings.Contains(out, "value profile") {
		t.Error("expected caption")
	}
}

func TestThemes(t *testing.T) {
	for _, th := range Themes {
		for _, tag := range sorting.Tags {
			if !strings.HasPrefix(th.Hex(tag), "#") {
				t.Errorf("%s: no color for %v", th.Name, tag)
			}
		}
	}
	if GetTheme("nope").Name != "classic" {
		t.Error("unknown theme should fall back to classic")
	}
	if NextTheme(ThemeSunset).Name != "classic" {
		t.Error("NextTheme should wrap")
	}
	if len(ThemeNames()) != len(Themes) {
		t.Error("theme names mismatch")
	}
}

func TestDescribeError(t *testing.T) {
	_, err := sorting.ParseSize("x")
	if got := describeError(err); !strings.Contains(got, "whole number") {
		t.Errorf("unexpected message %q", got)
	}
	if got := describeError(sorting.ValidateValues([]int{3, 3})); !strings.Contains(got, "distinct") {
		t.Errorf("unexpected message %q", got)
	}
	if got := describeError(animation.ErrAnimating); !strings.Contains(got, "stop") {
		t.Errorf("unexpected message %q", got)
	}
}

func TestProgressBar(t *testing.T) {
	tests := []struct {
		fraction     float64
		filled, rest int
	}{
		{0, 0, 10},
		{0.5, 5, 5},
		{1, 10, 0},
		{2, 10, 0},
		{-1, 0, 10},
	}
	for _, tt := range tests {
		bar := ProgressBar(tt.fraction, 10, "#ffffff")
		if got := strings.Count(bar, "━"); got != tt.filled {
			t.Errorf("ProgressBar(%v): expected %d filled, got %d", tt.fraction, tt.filled, got)
		}
		if got := strings.Count(bar, "─"); got != tt.rest {
			t.Errorf("ProgressBar(%v): expected %d empty, got %d", tt.fraction, tt.rest, got)
		}
	}
}
