package render

import (
	"fmt"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/hnimtadd/gridview/grid/cell"
	"github.com/hnimtadd/gridview/grid/column"
	"github.com/hnimtadd/gridview/grid/geometry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSimScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	s := tcell.NewSimulationScreen("")
	require.NoError(t, s.Init())
	s.SetSize(w, h)
	t.Cleanup(s.Fini)
	return s
}

func line(s tcell.Screen, y, width int) string {
	out := make([]rune, 0, width)
	for x := 0; x < width; x++ {
		r, _, _, _ := s.GetContent(x, y)
		out = append(out, r)
	}
	return string(out)
}

func TestFit(t *testing.T) {
	assert.Equal(t, "ab   ", Fit("ab", 5, column.AlignLeft))
	assert.Equal(t, "   ab", Fit("ab", 5, column.AlignRight))
	assert.Equal(t, " ab  ", Fit("ab", 5, column.AlignCenter))
	assert.Equal(t, "abcd…", Fit("abcdefgh", 5, column.AlignLeft))
	assert.Equal(t, "", Fit("abc", 0, column.AlignLeft))
	// wide runes count as two cells
	assert.Equal(t, "日本 ", Fit("日本", 5, column.AlignLeft))
	// decomposed input is composed before measuring
	assert.Equal(t, "\u00e9 ", Fit("e\u0301", 2, column.AlignLeft))
}

func TestScreen_PaintsVisibleCells(t *testing.T) {
	s := newSimScreen(t, 12, 3)
	r := NewScreen(ScreenOptions{
		Screen:  s,
		Content: func(d cell.Descriptor) string { return fmt.Sprintf("r%dc%d", d.Row, d.Column) },
	})

	vp := geometry.Viewport{Width: 12, Height: 2, OffsetTop: 1}
	r.BeginFrame(vp)
	r.RenderCell(cell.Descriptor{Row: 4, Column: 1, X: 0, Y: 0, Width: 6, Height: 1, Visible: true})
	r.RenderCell(cell.Descriptor{Row: 4, Column: 2, X: 6, Y: 0, Width: 6, Height: 1, Visible: false})
	r.RenderCell(cell.Descriptor{Row: 5, Column: 1, X: 8, Y: 1, Width: 6, Height: 1, Visible: true})
	r.EndFrame()

	assert.Equal(t, "r4c1        ", line(s, 1, 12))
	// clipped at the right edge of the viewport
	assert.Equal(t, "        r5c1", line(s, 2, 12))
}

func TestScreen_ClipsRowsOutsideViewport(t *testing.T) {
	s := newSimScreen(t, 6, 2)
	r := NewScreen(ScreenOptions{Screen: s, Content: func(cell.Descriptor) string { return "xx" }})

	r.BeginFrame(geometry.Viewport{Width: 6, Height: 1})
	r.RenderCell(cell.Descriptor{X: 0, Y: -1, Width: 3, Height: 2, Visible: true})
	r.RenderCell(cell.Descriptor{X: 3, Y: 1, Width: 3, Height: 1, Visible: true})

	assert.Equal(t, "      ", line(s, 0, 6), "only the blank second line of the first cell is on screen")
	assert.NotContains(t, line(s, 1, 6), "xx", "below the viewport")
}

func TestScreen_HeaderStyle(t *testing.T) {
	s := newSimScreen(t, 4, 1)
	header := tcell.StyleDefault.Bold(true)
	r := NewScreen(ScreenOptions{Screen: s, HeaderStyle: header, Content: func(cell.Descriptor) string { return "H" }})

	r.BeginFrame(geometry.Viewport{Width: 4, Height: 1})
	r.RenderCell(cell.Descriptor{Row: cell.HeaderRow, Width: 4, Height: 1, Visible: true})

	ch, _, style, _ := s.GetContent(0, 0)
	assert.Equal(t, 'H', ch)
	assert.Equal(t, header, style)
}

type countingScreen struct {
	tcell.SimulationScreen
	shows int
}

func (c *countingScreen) Show() {
	c.shows++
	c.SimulationScreen.Show()
}

func TestScreen_SkipsUnchangedCells(t *testing.T) {
	s := newSimScreen(t, 8, 1)
	text := "a"
	r := NewScreen(ScreenOptions{Screen: s, Content: func(cell.Descriptor) string { return text }})
	vp := geometry.Viewport{Width: 8, Height: 1}
	d := cell.Descriptor{Column: 1, Width: 4, Height: 1, Visible: true}

	r.BeginFrame(vp)
	r.RenderCell(d)
	r.EndFrame()
	assert.Equal(t, "a       ", line(s, 0, 8))

	// paint the cell behind the renderer's back
	s.SetContent(0, 0, 'Z', nil, tcell.StyleDefault)
	r.BeginFrame(vp)
	r.RenderCell(d)
	r.EndFrame()
	assert.Equal(t, "Z       ", line(s, 0, 8), "identical cell is not repainted")

	text = "b"
	r.BeginFrame(vp)
	r.RenderCell(d)
	r.EndFrame()
	assert.Equal(t, "b       ", line(s, 0, 8), "changed text repaints")

	d.Width = 2
	s.SetContent(3, 0, 'Z', nil, tcell.StyleDefault)
	r.BeginFrame(vp)
	r.RenderCell(d)
	r.EndFrame()
	assert.Equal(t, "b       ", line(s, 0, 8), "changed descriptor blanks its old area")
}

func TestScreen_BlanksCellsThatLeft(t *testing.T) {
	s := newSimScreen(t, 8, 1)
	r := NewScreen(ScreenOptions{Screen: s, Content: func(d cell.Descriptor) string { return fmt.Sprint(d.Column) }})
	vp := geometry.Viewport{Width: 8, Height: 1}

	r.BeginFrame(vp)
	r.RenderCell(cell.Descriptor{Column: 1, Width: 4, Height: 1, Visible: true})
	r.RenderCell(cell.Descriptor{Column: 2, X: 4, Width: 4, Height: 1, Visible: true})
	r.EndFrame()
	assert.Equal(t, "1   2   ", line(s, 0, 8))

	r.BeginFrame(vp)
	r.RenderCell(cell.Descriptor{Column: 2, X: 4, Width: 4, Height: 1, Visible: true})
	r.EndFrame()
	assert.Equal(t, "    2   ", line(s, 0, 8))

	// the dropped cell is painted again once it comes back
	s.SetContent(4, 0, 'Z', nil, tcell.StyleDefault)
	r.BeginFrame(vp)
	r.RenderCell(cell.Descriptor{Column: 1, Width: 4, Height: 1, Visible: true})
	r.RenderCell(cell.Descriptor{Column: 2, X: 4, Width: 4, Height: 1, Visible: true})
	r.EndFrame()
	assert.Equal(t, "1   Z   ", line(s, 0, 8), "column 2 is still cached")
}

func TestScreen_ViewportChangeRepaints(t *testing.T) {
	s := newSimScreen(t, 8, 1)
	r := NewScreen(ScreenOptions{Screen: s, Content: func(cell.Descriptor) string { return "a" }})
	d := cell.Descriptor{Width: 4, Height: 1, Visible: true}

	r.BeginFrame(geometry.Viewport{Width: 8, Height: 1})
	r.RenderCell(d)
	r.EndFrame()

	s.SetContent(6, 0, 'Z', nil, tcell.StyleDefault)
	r.BeginFrame(geometry.Viewport{Width: 8, Height: 1, ScrollLeft: 2})
	r.RenderCell(d)
	r.EndFrame()
	assert.Equal(t, "a       ", line(s, 0, 8), "scrolling blanks the band")

	s.SetContent(0, 0, 'Z', nil, tcell.StyleDefault)
	r.Invalidate()
	r.BeginFrame(geometry.Viewport{Width: 8, Height: 1, ScrollLeft: 2})
	r.RenderCell(d)
	r.EndFrame()
	assert.Equal(t, "a       ", line(s, 0, 8), "invalidated cache repaints")
}

func TestScreen_ClipsToZone(t *testing.T) {
	s := newSimScreen(t, 12, 1)
	r := NewScreen(ScreenOptions{Screen: s, Content: func(cell.Descriptor) string { return "abcdefghij" }})

	r.BeginFrame(geometry.Viewport{Width: 12, Height: 1})
	r.RenderCell(cell.Descriptor{
		X: 2, Width: 10, Height: 1, Visible: true,
		Clip: geometry.Rect{Left: 4, Width: 4, Height: 1},
	})
	r.EndFrame()

	assert.Equal(t, "    cdef    ", line(s, 0, 12))
}

func TestScreen_ShowOnEndOnlyWhenChanged(t *testing.T) {
	s := &countingScreen{SimulationScreen: newSimScreen(t, 4, 1)}
	r := NewScreen(ScreenOptions{Screen: s, ShowOnEnd: true, Content: func(cell.Descriptor) string { return "a" }})
	vp := geometry.Viewport{Width: 4, Height: 1}
	d := cell.Descriptor{Width: 4, Height: 1, Visible: true}

	r.BeginFrame(vp)
	r.RenderCell(d)
	r.EndFrame()
	assert.Equal(t, 1, s.shows)

	r.BeginFrame(vp)
	r.RenderCell(d)
	r.EndFrame()
	assert.Equal(t, 1, s.shows, "nothing to flush")
}

func TestRecorder(t *testing.T) {
	var rec Recorder
	rec.BeginFrame(geometry.Viewport{Height: 3})
	rec.RenderCell(cell.Descriptor{Column: 1, Visible: true})
	rec.RenderCell(cell.Descriptor{Column: 2})
	rec.BeginFrame(geometry.Viewport{Height: 1})
	rec.RenderCell(cell.Descriptor{Row: cell.HeaderRow, Column: 1, Visible: true})

	require.Len(t, rec.Bands, 2)
	assert.Len(t, rec.Bands[0].Cells, 2)
	assert.Equal(t, 1, rec.Last().Viewport.Height)
	assert.Len(t, rec.Cells(), 3)
	assert.Len(t, rec.Visible(), 2)

	rec.Reset()
	assert.Empty(t, rec.Bands)
	assert.Empty(t, rec.Cells())

	var got []int
	Func(func(d cell.Descriptor) { got = append(got, d.Column) }).RenderCell(cell.Descriptor{Column: 3})
	assert.Equal(t, []int{3}, got)
}
