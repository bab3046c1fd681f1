package export

import (
	"fmt"
	"os"
	"strings"

	"github.com/san-kum/sortviz/internal/sorting"
)

// Palette maps a tag to a "#rrggbb" fill color.
type Palette func(sorting.Tag) string

// Options control the size of exported images.
type Options struct {
	BarWidth   int
	Gap        int
	Height     int
	Background string
	// Profile draws a polyline through the bar tops.
	Profile bool
}

func DefaultOptions() Options {
	return Options{BarWidth: 12, Gap: 2, Height: 240, Background: "#0a0a0a"}
}

func (o Options) normalized() Options {
	d := DefaultOptions()
	if o.BarWidth <= 0 {
		o.BarWidth = d.BarWidth
	}
	if o.Gap < 0 {
		o.Gap = 0
	}
	if o.Height <= 0 {
		o.Height = d.Height
	}
	if o.Background == "" {
		o.Background = d.Background
	}
	return o
}

// FrameToSVG renders a frame as a bar chart: bar height = value, fill = tag color.
func FrameToSVG(f sorting.Frame, palette Palette, opts Options) string {
	opts = opts.normalized()
	n := f.Len()
	width := n*(opts.BarWidth+opts.Gap) + opts.Gap
	if n == 0 {
		width = opts.BarWidth + 2*opts.Gap
	}
	height := opts.Height
	maxV := maxValue(f.Values)

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="%s"/>
<g class="bars">
`, width, height, width, height, opts.Background))

	for i, v := range f.Values {
		h := barHeight(v, maxV, height)
		x := opts.Gap + i*(opts.BarWidth+opts.Gap)
		sb.WriteString(fmt.Sprintf(`<rect x="%d" y="%d" width="%d" height="%d" fill="%s"><title>%d</title></rect>
`, x, height-h, opts.BarWidth, h, palette(f.Tags[i]), v))
	}
	sb.WriteString("</g>\n")

	if opts.Profile && n > 1 {
		sb.WriteString(`<path fill="none" stroke="#ffffff" stroke-opacity="0.5" stroke-width="1.5" d="M`)
		for i, v := range f.Values {
			x := opts.Gap + i*(opts.BarWidth+opts.Gap) + opts.BarWidth/2
			y := height - barHeight(v, maxV, height)
			if i == 0 {
				sb.WriteString(fmt.Sprintf("%d,%d", x, y))
			} else {
				sb.WriteString(fmt.Sprintf(" L%d,%d", x, y))
			}
		}
		sb.WriteString("\"/>\n")
	}

	sb.WriteString("</svg>\n")
	return sb.String()
}

// WriteSVG renders f and writes it to path.
func WriteSVG(path string, f sorting.Frame, palette Palette, opts Options) error {
	return os.WriteFile(path, []byte(FrameToSVG(f, palette, opts)), 0644)
}

func maxValue(values []int) int {
	m := sorting.MaxValue
	if len(values) > 0 {
		m = 1
		for _, v := range values {
			if v > m {
				m = v
			}
		}
	}
	return m
}

func barHeight(v, maxV, height int) int {
	if v <= 0 {
		return 0
	}
	h := v * (height - 1) / maxV
	if h < 1 {
		h = 1
	}
	return h
}
