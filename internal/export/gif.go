package export

import (
	"image"
	"image/color"
	"image/gif"
	"io"
	"os"
	"sync"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/san-kum/sortviz/internal/sorting"
)

// GIFRecorder is a presenter that keeps every frame it is shown and encodes
// them as an animated GIF.
type GIFRecorder struct {
	mu      sync.Mutex
	palette Palette
	opts    Options
	// DelayCs is the per-frame delay in hundredths of a second.
	DelayCs int
	frames  []sorting.Frame
}

func NewGIFRecorder(palette Palette, opts Options, delayCs int) *GIFRecorder {
	if delayCs <= 0 {
		delayCs = 20
	}
	return &GIFRecorder{palette: palette, opts: opts.normalized(), DelayCs: delayCs}
}

func (r *GIFRecorder) Present(f sorting.Frame) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if f.Len() == 0 {
		return
	}
	r.frames = append(r.frames, f)
}

func (r *GIFRecorder) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.frames)
}

// Encode writes all recorded frames. Every image shares one palette built
// from the background and the tag colors.
func (r *GIFRecorder) Encode(w io.Writer) error {
	r.mu.Lock()
	frames := append([]sorting.Frame(nil), r.frames...)
	r.mu.Unlock()

	pal, index := r.buildPalette()
	anim := gif.GIF{LoopCount: 0}
	for _, f := range frames {
		anim.Image = append(anim.Image, r.rasterize(f, pal, index))
		anim.Delay = append(anim.Delay, r.DelayCs)
	}
	return gif.EncodeAll(w, &anim)
}

func (r *GIFRecorder) Save(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return r.Encode(f)
}

func (r *GIFRecorder) buildPalette() (color.Palette, map[sorting.Tag]uint8) {
	pal := color.Palette{hexColor(r.opts.Background)}
	index := make(map[sorting.Tag]uint8, len(sorting.Tags))
	for _, tag := range sorting.Tags {
		index[tag] = uint8(len(pal))
		pal = append(pal, hexColor(r.palette(tag)))
	}
	return pal, index
}

func (r *GIFRecorder) rasterize(f sorting.Frame, pal color.Palette, index map[sorting.Tag]uint8) *image.Paletted {
	o := r.opts
	w := f.Len()*(o.BarWidth+o.Gap) + o.Gap
	img := image.NewPaletted(image.Rect(0, 0, w, o.Height), pal)
	maxV := maxValue(f.Values)
	for i, v := range f.Values {
		h := barHeight(v, maxV, o.Height)
		x0 := o.Gap + i*(o.BarWidth+o.Gap)
		ci := index[f.Tags[i]]
		for y := o.Height - h; y < o.Height; y++ {
			for x := x0; x < x0+o.BarWidth; x++ {
				img.SetColorIndex(x, y, ci)
			}
		}
	}
	return img
}

func hexColor(hex string) color.Color {
	c, err := colorful.Hex(hex)
	if err != nil {
		return color.White
	}
	return c
}
