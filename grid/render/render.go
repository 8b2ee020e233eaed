// Package render holds the Cell Renderer side of a pass: the engine hands
// every resolved cell to a Renderer and never looks at what it produced.
package render

import (
	"github.com/hnimtadd/gridview/grid/cell"
	"github.com/hnimtadd/gridview/grid/geometry"
)

// Renderer paints one cell. Calls are fire-and-forget.
type Renderer interface {
	RenderCell(d cell.Descriptor)
}

// Framer is implemented by renderers that want to know where a pass starts
// and ends.
type Framer interface {
	BeginFrame(vp geometry.Viewport)
	EndFrame()
}

// Func adapts a function to Renderer.
type Func func(d cell.Descriptor)

func (f Func) RenderCell(d cell.Descriptor) { f(d) }

// Band is what a Recorder captured between one BeginFrame and the next.
type Band struct {
	Viewport geometry.Viewport
	Cells    []cell.Descriptor
}

// Recorder keeps every frame since the last Reset, one Band per frame, so a
// Table pass shows up as its body, header and footer bands. Tests and
// headless hosts use it.
type Recorder struct {
	Bands []Band
}

func (r *Recorder) BeginFrame(vp geometry.Viewport) {
	r.Bands = append(r.Bands, Band{Viewport: vp})
}

func (r *Recorder) EndFrame() {}

func (r *Recorder) RenderCell(d cell.Descriptor) {
	if len(r.Bands) == 0 {
		r.Bands = append(r.Bands, Band{})
	}
	last := &r.Bands[len(r.Bands)-1]
	last.Cells = append(last.Cells, d)
}

// Last returns the most recent band.
func (r *Recorder) Last() Band {
	if len(r.Bands) == 0 {
		return Band{}
	}
	return r.Bands[len(r.Bands)-1]
}

// Cells returns the cells of every recorded band in paint order.
func (r *Recorder) Cells() []cell.Descriptor {
	var out []cell.Descriptor
	for _, b := range r.Bands {
		out = append(out, b.Cells...)
	}
	return out
}

// Visible returns the recorded cells that are on screen.
func (r *Recorder) Visible() []cell.Descriptor {
	var out []cell.Descriptor
	for _, d := range r.Cells() {
		if d.Visible {
			out = append(out, d)
		}
	}
	return out
}

// Reset forgets every band.
func (r *Recorder) Reset() {
	r.Bands = r.Bands[:0]
}
