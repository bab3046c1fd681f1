// Package tui renders an animation to a plain terminal stream without taking
// over the screen, for the headless run command.
package tui

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/san-kum/sortviz/internal/sorting"
	"github.com/san-kum/sortviz/internal/viz"
)

const (
	clearScreen = "\033[2J\033[H"
	hideCursor  = "\033[?25l"
	showCursor  = "\033[?25h"
)

// LiveRenderer is an animation.Presenter that redraws the bar chart on every
// frame. In plain mode it prints one line per frame instead, which suits
// pipes and log files.
type LiveRenderer struct {
	out     io.Writer
	theme   viz.Theme
	width   int
	height  int
	plain   bool
	profile bool

	mu     sync.Mutex
	frames int
}

type Option func(*LiveRenderer)

func Plain() Option { return func(r *LiveRenderer) { r.plain = true } }

func WithProfile(on bool) Option { return func(r *LiveRenderer) { r.profile = on } }

func WithTheme(t viz.Theme) Option { return func(r *LiveRenderer) { r.theme = t } }

func NewLiveRenderer(out io.Writer, width, height int, opts ...Option) *LiveRenderer {
	r := &LiveRenderer{
		out:    out,
		theme:  viz.ThemeClassic,
		width:  width,
		height: height,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Begin hides the cursor. Pair with End.
func (r *LiveRenderer) Begin() {
	if !r.plain {
		fmt.Fprint(r.out, hideCursor)
	}
}

func (r *LiveRenderer) End() {
	if !r.plain {
		fmt.Fprint(r.out, showCursor)
	}
}

func (r *LiveRenderer) Present(f sorting.Frame) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.frames++

	if r.plain {
		fmt.Fprintln(r.out, r.line(f))
		return
	}

	var b strings.Builder
	b.WriteString(clearScreen)
	b.WriteString(viz.GradientText("SORTVIZ", r.theme.Title, r.theme.Accent))
	if f.Algorithm.Valid() {
		b.WriteString("  " + f.Algorithm.Title())
	}
	b.WriteString("\n\n")
	b.WriteString(viz.RenderBars(f, r.theme, r.width, r.height))
	b.WriteString("\n")
	if r.profile && f.Len() > 1 {
		b.WriteString(viz.RenderProfile(f, r.width-8, 4))
		b.WriteString("\n")
	}
	if f.Algorithm.Valid() {
		b.WriteString(viz.RenderLegend(f.Algorithm, r.theme))
		b.WriteString("\n")
	}
	b.WriteString(r.line(f))
	b.WriteString("\n")
	fmt.Fprint(r.out, b.String())
}

func (r *LiveRenderer) line(f sorting.Frame) string {
	state := "step"
	if f.Done {
		state = "done"
	}
	return fmt.Sprintf("%-4s %3d  cursor %3d  %v", state, f.Steps, f.Cursor, f.Values)
}

// Frames is the number of frames presented so far.
func (r *LiveRenderer) Frames() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.frames
}
