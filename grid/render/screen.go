package render

import (
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/hnimtadd/gridview/grid/cell"
	"github.com/hnimtadd/gridview/grid/column"
	"github.com/hnimtadd/gridview/grid/geometry"
	"github.com/hnimtadd/gridview/grid/utils"
	"github.com/mattn/go-runewidth"
	"golang.org/x/text/unicode/norm"
)

const ellipsis = "…"

// ContentFunc returns the text shown in a cell.
type ContentFunc func(d cell.Descriptor) string

type ScreenOptions struct {
	Screen      tcell.Screen
	Content     ContentFunc
	Style       tcell.Style
	HeaderStyle tcell.Style
	// ShowOnEnd flushes the screen at the end of every frame that changed
	// something on it.
	ShowOnEnd bool
}

// Screen paints cells as text onto a tcell screen, clipped to the viewport
// of the current frame and to each cell's zone.
//
// Screen remembers what it painted per viewport area. While a band's
// viewport is unchanged, cells whose descriptor hash and text match the last
// frame are not repainted, and cells that left the frame are blanked.
type Screen struct {
	screen      tcell.Screen
	content     ContentFunc
	style       tcell.Style
	headerStyle tcell.Style
	showOnEnd   bool

	bands   map[bandKey]*paintBand
	cur     *paintBand
	vp      geometry.Viewport
	changed bool
}

type bandKey struct {
	left, top, width, height int
}

func keyOf(vp geometry.Viewport) bandKey {
	return bandKey{vp.OffsetLeft, vp.OffsetTop, vp.Width, vp.Height}
}

func (k bandKey) overlaps(o bandKey) bool {
	return k.left < o.left+o.width && o.left < k.left+k.width &&
		k.top < o.top+o.height && o.top < k.top+k.height
}

type cellKey struct {
	zone        column.Zone
	row, column int
}

type paintedCell struct {
	key  cellKey
	hash uint64
	text string
	area geometry.Rect
}

// paintBand is the paint cache of one viewport area.
type paintBand struct {
	vp    geometry.Viewport
	cells []paintedCell
	index map[cellKey]int
	// seen marks the cached cells rendered by the current frame.
	seen *utils.BitSet
}

func NewScreen(opts ScreenOptions) *Screen {
	content := opts.Content
	if content == nil {
		content = func(cell.Descriptor) string { return "" }
	}
	return &Screen{
		screen:      opts.Screen,
		content:     content,
		style:       opts.Style,
		headerStyle: opts.HeaderStyle,
		showOnEnd:   opts.ShowOnEnd,
		bands:       make(map[bandKey]*paintBand),
	}
}

// BeginFrame starts painting vp. A viewport that moved or scrolled since
// its last frame is blanked and repainted in full.
func (s *Screen) BeginFrame(vp geometry.Viewport) {
	s.changed = false
	key := keyOf(vp)
	b := s.bands[key]
	if b == nil || b.vp != vp {
		for k := range s.bands {
			if k.overlaps(key) {
				delete(s.bands, k)
			}
		}
		b = &paintBand{vp: vp, index: make(map[cellKey]int), seen: utils.NewBitSet(0)}
		s.bands[key] = b
		s.vp = vp
		s.blank(geometry.Rect{Width: vp.Width, Height: vp.Height})
	}
	b.seen.Resize(len(b.cells))
	b.seen.Clear()
	s.cur = b
	s.vp = vp
}

// EndFrame blanks the cells that were not rendered by this frame.
func (s *Screen) EndFrame() {
	b := s.cur
	utils.Assert(b != nil, "EndFrame without BeginFrame")

	kept := b.cells[:0]
	for i, p := range b.cells {
		if b.seen.IsSet(i) {
			kept = append(kept, p)
			continue
		}
		s.blank(p.area)
	}
	clear(b.cells[len(kept):])
	b.cells = kept
	clear(b.index)
	for i, p := range b.cells {
		b.index[p.key] = i
	}
	s.cur = nil

	if s.showOnEnd && s.changed {
		s.screen.Show()
	}
}

// Invalidate forgets everything painted. Hosts call it after the screen was
// cleared or resized behind the painter's back.
func (s *Screen) Invalidate() {
	clear(s.bands)
}

// RenderCell paints the first line of the cell's text. Cells that are
// mounted but off screen paint nothing.
func (s *Screen) RenderCell(d cell.Descriptor) {
	b := s.cur
	utils.Assert(b != nil, "RenderCell without BeginFrame")
	if !d.Visible || d.Width <= 0 || d.Height <= 0 {
		return
	}

	text := Fit(s.content(d), d.Width, d.Align)
	key := cellKey{zone: d.Zone, row: d.Row, column: d.Column}
	hash := d.Hash()

	if i, ok := b.index[key]; ok {
		p := &b.cells[i]
		b.seen.Set(i)
		if p.hash == hash && p.text == text {
			return
		}
		s.blank(p.area)
		p.hash, p.text = hash, text
		p.area = s.paint(d, text)
		return
	}

	b.cells = append(b.cells, paintedCell{key: key, hash: hash, text: text, area: s.paint(d, text)})
	i := len(b.cells) - 1
	b.index[key] = i
	b.seen.Resize(len(b.cells))
	b.seen.Set(i)
}

// bounds is the paintable area of d, relative to the viewport.
func (s *Screen) bounds(d cell.Descriptor) geometry.Rect {
	area := intersect(
		geometry.Rect{Left: d.X, Top: d.Y, Width: d.Width, Height: d.Height},
		geometry.Rect{Width: s.vp.Width, Height: s.vp.Height},
	)
	if d.Clip != (geometry.Rect{}) {
		area = intersect(area, d.Clip)
	}
	return area
}

func (s *Screen) paint(d cell.Descriptor, text string) geometry.Rect {
	area := s.bounds(d)
	style := s.style
	if d.Row < 0 {
		style = s.headerStyle
	}
	blankLine := strings.Repeat(" ", d.Width)
	for y := area.Top; y < area.Top+area.Height; y++ {
		line := text
		if y > d.Y {
			line = blankLine
		}
		s.paintLine(d.X, y, line, style, area)
	}
	return area
}

func (s *Screen) paintLine(x, y int, text string, style tcell.Style, area geometry.Rect) {
	for _, r := range text {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		if x >= area.Left && x+w <= area.Left+area.Width {
			s.screen.SetContent(s.vp.OffsetLeft+x, s.vp.OffsetTop+y, r, nil, style)
			s.changed = true
		}
		x += w
	}
}

func (s *Screen) blank(area geometry.Rect) {
	for y := area.Top; y < area.Top+area.Height; y++ {
		for x := area.Left; x < area.Left+area.Width; x++ {
			s.screen.SetContent(s.vp.OffsetLeft+x, s.vp.OffsetTop+y, ' ', nil, s.style)
			s.changed = true
		}
	}
}

func intersect(a, b geometry.Rect) geometry.Rect {
	left := max(a.Left, b.Left)
	top := max(a.Top, b.Top)
	right := min(a.Left+a.Width, b.Left+b.Width)
	bottom := min(a.Top+a.Height, b.Top+b.Height)
	if right <= left || bottom <= top {
		return geometry.Rect{}
	}
	return geometry.Rect{Left: left, Top: top, Width: right - left, Height: bottom - top}
}

// Fit normalises text and pads or truncates it to exactly width terminal
// cells, honouring the alignment.
func Fit(text string, width int, align column.Align) string {
	if width <= 0 {
		return ""
	}
	text = norm.NFC.String(strings.ReplaceAll(text, "\n", " "))
	if runewidth.StringWidth(text) > width {
		text = runewidth.Truncate(text, width, ellipsis)
	}
	pad := width - runewidth.StringWidth(text)
	switch align {
	case column.AlignRight:
		return strings.Repeat(" ", pad) + text
	case column.AlignCenter:
		left := pad / 2
		return strings.Repeat(" ", left) + text + strings.Repeat(" ", pad-left)
	default:
		return text + strings.Repeat(" ", pad)
	}
}
