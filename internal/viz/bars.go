package viz

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/sortviz/internal/sorting"
)

// eighth blocks, index = filled eighths of a cell
var blocks = []rune{' ', '▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

// legend lists the tags each algorithm produces, in the order they appear.
var legend = map[sorting.Algorithm][]sorting.Tag{
	sorting.BubbleSort:    {sorting.Swapped, sorting.InOrder, sorting.Settled},
	sorting.InsertionSort: {sorting.Inserted, sorting.Pending},
	sorting.SelectionSort: {sorting.Selected, sorting.Finalized},
	sorting.MergeSort:     {sorting.Merged, sorting.Pending},
	sorting.QuickSort:     {sorting.Sorted},
}

// barLayout picks a bar width and gap so n bars fit in width columns.
func barLayout(n, width int) (barW, gap int) {
	if n <= 0 {
		return 0, 0
	}
	gap = 1
	if n*2-1 > width {
		gap = 0
	}
	barW = (width - gap*(n-1)) / n
	if barW < 1 {
		barW = 1
	}
	if barW > 6 {
		barW = 6
	}
	return barW, gap
}

// RenderBars draws the frame as vertical bars, height rows tall, scaled to
// the largest value. Bar color is the tag color from theme.
func RenderBars(f sorting.Frame, theme Theme, width, height int) string {
	n := f.Len()
	if n == 0 {
		empty := lipgloss.NewStyle().Foreground(theme.Muted).Italic(true)
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, empty.Render("no sequence, create one to begin"))
	}
	if height < 1 {
		height = 1
	}
	barW, gap := barLayout(n, width)

	maxV := 1
	for _, v := range f.Values {
		if v > maxV {
			maxV = v
		}
	}

	styles := make(map[sorting.Tag]lipgloss.Style, len(sorting.Tags))
	for _, tag := range sorting.Tags {
		styles[tag] = lipgloss.NewStyle().Foreground(theme.TagColor(tag))
	}

	var b strings.Builder
	for row := 0; row < height; row++ {
		level := height - 1 - row
		for i, v := range f.Values {
			if i > 0 && gap > 0 {
				b.WriteString(strings.Repeat(" ", gap))
			}
			eighths := v * height * 8 / maxV
			cell := eighths - level*8
			if cell < 0 {
				cell = 0
			}
			if cell > 8 {
				cell = 8
			}
			b.WriteString(styles[f.Tags[i]].Render(strings.Repeat(string(blocks[cell]), barW)))
		}
		b.WriteByte('\n')
	}
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Muted).Render(strings.Repeat("─", n*barW+(n-1)*gap)))
	return b.String()
}

// RenderProfile plots the values left to right as a line chart.
func RenderProfile(f sorting.Frame, width, height int) string {
	if f.Len() < 2 {
		return ""
	}
	data := make([]float64, f.Len())
	for i, v := range f.Values {
		data[i] = float64(v)
	}
	return asciigraph.Plot(data,
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Precision(0),
		asciigraph.Caption("value profile"),
	)
}

// RenderLegend shows the swatches for the tags an algorithm uses.
func RenderLegend(a sorting.Algorithm, theme Theme) string {
	tags := append([]sorting.Tag{sorting.Default}, legend[a]...)
	parts := make([]string, 0, len(tags))
	for _, tag := range tags {
		sw := lipgloss.NewStyle().Foreground(theme.TagColor(tag)).Render("██")
		parts = append(parts, sw+" "+lipgloss.NewStyle().Foreground(theme.Muted).Render(tag.String()))
	}
	return strings.Join(parts, "   ")
}
