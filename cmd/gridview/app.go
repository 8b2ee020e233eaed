package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/gdamore/tcell/v2"
	gridview "github.com/hnimtadd/gridview"
	"github.com/hnimtadd/gridview/config"
	"github.com/hnimtadd/gridview/grid/cell"
	"github.com/hnimtadd/gridview/grid/column"
	"github.com/hnimtadd/gridview/grid/geometry"
	"github.com/hnimtadd/gridview/grid/render"
	"github.com/hnimtadd/gridview/logger"
)

// settled is posted by the settle timer once scroll input has stopped.
type settled struct{}

type app struct {
	screen  tcell.Screen
	painter *render.Screen
	table   *gridview.Table
	headers map[string]string

	vp        geometry.Viewport
	scrolling bool
	settle    time.Duration
	timer     *time.Timer

	logger logger.Logger
}

func newApp(screen tcell.Screen, cfg *config.Config, log logger.Logger) *app {
	layout := cfg.Layout()
	headers := make(map[string]string)
	for _, g := range layout.Groups() {
		for _, c := range g.Columns {
			headers[c.Key] = c.Header
		}
	}

	a := &app{
		screen:  screen,
		headers: headers,
		settle:  settleDelay(cfg),
		logger:  log.With("component", "app"),
	}
	a.painter = render.NewScreen(render.ScreenOptions{
		Screen:      screen,
		Content:     a.content,
		Style:       tcell.StyleDefault,
		HeaderStyle: tcell.StyleDefault.Bold(true).Reverse(true),
		ShowOnEnd:   true,
	})
	a.table = gridview.NewTable(gridview.TableOptions{
		Options: gridview.Options{
			Layout:            layout,
			Geometry:          geometry.Uniform{Height: cfg.Table.RowHeight},
			Renderer:          a.painter,
			RowKey:            strconv.Itoa,
			RowCount:          cfg.Table.Rows,
			VirtualizeColumns: cfg.Table.VirtualizeColumns,
			Logger:            log,
		},
		Overscan:     cfg.Table.Overscan,
		HeaderHeight: cfg.Table.HeaderHeight,
		FooterHeight: cfg.Table.FooterHeight,
	})
	a.resize()
	return a
}

// content produces the synthetic data of the demo table.
func (a *app) content(d cell.Descriptor) string {
	switch {
	case d.Row == cell.HeaderRow:
		return a.headers[d.Key]
	case d.Row == cell.FooterRow:
		return fmt.Sprintf("%d rows", a.table.RowCount())
	case d.Zone == column.ZoneFixedLeft:
		return strconv.Itoa(d.Row)
	case d.Zone == column.ZoneFixedRight:
		return strconv.Itoa(d.Row * (d.Column + 1))
	default:
		return fmt.Sprintf("r%d:%s", d.Row, d.Key)
	}
}

func (a *app) resize() {
	a.vp.Width, a.vp.Height = a.screen.Size()
	a.vp = a.table.Clamp(a.vp)
}

func (a *app) draw() {
	a.table.Draw(a.vp, a.scrolling, column.ReorderState{})
}

// scroll moves the viewport and keeps the table in scrolling mode until the
// settle timer fires.
func (a *app) scroll(dx, dy int) {
	vp := a.vp
	vp.ScrollLeft += dx
	vp.ScrollTop += dy
	vp = a.table.Clamp(vp)
	if vp == a.vp {
		return
	}
	a.vp = vp
	a.scrolling = true
	a.armSettle()
	a.draw()
}

func (a *app) armSettle() {
	if a.timer != nil {
		a.timer.Stop()
	}
	a.timer = time.AfterFunc(a.settle, func() {
		_ = a.screen.PostEvent(tcell.NewEventInterrupt(settled{}))
	})
}

func (a *app) page() int {
	return max(1, a.vp.Height-2)
}

// handleKey returns false when the user asked to quit.
func (a *app) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyUp:
		a.scroll(0, -1)
	case tcell.KeyDown:
		a.scroll(0, 1)
	case tcell.KeyLeft:
		a.scroll(-4, 0)
	case tcell.KeyRight:
		a.scroll(4, 0)
	case tcell.KeyPgUp:
		a.scroll(0, -a.page())
	case tcell.KeyPgDn:
		a.scroll(0, a.page())
	case tcell.KeyHome:
		a.scroll(-a.vp.ScrollLeft, -a.vp.ScrollTop)
	case tcell.KeyEnd:
		a.scroll(0, a.table.ContentHeight())
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q':
			return false
		case 'k':
			a.scroll(0, -1)
		case 'j':
			a.scroll(0, 1)
		case 'h':
			a.scroll(-4, 0)
		case 'l':
			a.scroll(4, 0)
		}
	}
	return true
}

func (a *app) handleMouse(ev *tcell.EventMouse) {
	buttons := ev.Buttons()
	switch {
	case buttons&tcell.WheelUp != 0:
		a.scroll(0, -3)
	case buttons&tcell.WheelDown != 0:
		a.scroll(0, 3)
	case buttons&tcell.WheelLeft != 0:
		a.scroll(-4, 0)
	case buttons&tcell.WheelRight != 0:
		a.scroll(4, 0)
	}
}

func (a *app) loop() error {
	a.draw()
	for {
		switch ev := a.screen.PollEvent().(type) {
		case nil:
			return nil
		case *tcell.EventResize:
			a.resize()
			a.painter.Invalidate()
			a.screen.Sync()
			a.draw()
		case *tcell.EventKey:
			if !a.handleKey(ev) {
				return nil
			}
		case *tcell.EventMouse:
			a.handleMouse(ev)
		case *tcell.EventInterrupt:
			if _, ok := ev.Data().(settled); ok && a.scrolling {
				a.scrolling = false
				a.logger.Debug("settled", "scroll_top", a.vp.ScrollTop, "scroll_left", a.vp.ScrollLeft)
				a.draw()
			}
		}
	}
}

func (a *app) close() {
	if a.timer != nil {
		a.timer.Stop()
	}
	a.table.Close()
}
