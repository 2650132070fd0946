/*
Package viewer implements an interactive terminal browser for a decoded hue
table. The left pane lists every hue by index and name, the right pane shows
the metadata of the selected hue, its 32-step gradient as a swatch strip and
the individual RGB values.
*/
package viewer

import (
	"fmt"

	"github.com/bodgit/uohues/hue"
	"github.com/gdamore/tcell/v2"
)

const (
	listWidth   = 28
	swatchCells = 2 // terminal cells per gradient step
)

type viewer struct {
	screen tcell.Screen
	hues   []hue.Hue

	cursor int
	scroll int

	width, height int
}

// listRows is the number of hues visible at once, leaving a line for the
// status bar.
func (v *viewer) listRows() int {
	if v.height < 2 {
		return 0
	}
	return v.height - 1
}

func (v *viewer) moveCursor(delta int) {
	if len(v.hues) == 0 {
		return
	}
	v.cursor += delta
	if v.cursor < 0 {
		v.cursor = 0
	}
	if v.cursor >= len(v.hues) {
		v.cursor = len(v.hues) - 1
	}
	v.scroll = clampScroll(v.cursor, v.scroll, v.listRows())
}

// clampScroll keeps cursor within the rows visible lines starting at scroll.
func clampScroll(cursor, scroll, rows int) int {
	if rows < 1 {
		return scroll
	}
	if cursor < scroll {
		return cursor
	}
	if cursor >= scroll+rows {
		return cursor - rows + 1
	}
	return scroll
}

func metaLine(h hue.Hue) string {
	name := h.Name
	if name == "" {
		name = "(no name)"
	}
	return fmt.Sprintf("Index: %d  Name: %s  Range: %d-%d", h.Index, name, h.Start, h.End)
}

func rgbCell(slot int, c [3]uint8) string {
	return fmt.Sprintf("%02d: (%3d, %3d, %3d)", slot, c[0], c[1], c[2])
}

func (v *viewer) text(x, y int, s string, style tcell.Style) {
	for _, r := range s {
		if x >= v.width {
			break
		}
		v.screen.SetContent(x, y, r, nil, style)
		x++
	}
}

func (v *viewer) drawList() {
	rows := v.listRows()
	for y := 0; y < rows; y++ {
		idx := v.scroll + y
		if idx >= len(v.hues) {
			break
		}

		style := tcell.StyleDefault
		if idx == v.cursor {
			style = style.Reverse(true)
		}

		label := v.hues[idx].String()
		for x := 0; x < listWidth; x++ {
			r := ' '
			if x < len(label) {
				r = rune(label[x])
			}
			v.screen.SetContent(x, y, r, nil, style)
		}
	}
}

func (v *viewer) drawDetail() {
	if v.cursor >= len(v.hues) {
		return
	}
	h := v.hues[v.cursor]
	x0 := listWidth + 2

	v.text(x0, 0, metaLine(h), tcell.StyleDefault)

	// Swatch strip, one background-colored block per gradient step
	for slot, c := range h.ColorsRGB {
		style := tcell.StyleDefault.Background(tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B)))
		for i := 0; i < swatchCells; i++ {
			x := x0 + slot*swatchCells + i
			if x < v.width {
				v.screen.SetContent(x, 2, ' ', nil, style)
			}
		}
	}

	// RGB values, four columns of eight rows
	for slot, c := range h.ColorsRGB {
		x := x0 + (slot/8)*22
		y := 4 + slot%8
		if y < v.height-1 {
			v.text(x, y, rgbCell(slot, [3]uint8{c.R, c.G, c.B}), tcell.StyleDefault)
		}
	}
}

func (v *viewer) drawStatus() {
	status := fmt.Sprintf("%d hues  j/k move  PgUp/PgDn page  g/G first/last  q quit", len(v.hues))
	v.text(0, v.height-1, status, tcell.StyleDefault.Reverse(true))
}

func (v *viewer) draw() {
	v.screen.Clear()
	v.drawList()
	v.drawDetail()
	v.drawStatus()
	v.screen.Show()
}

func (v *viewer) handleInput(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyUp:
			v.moveCursor(-1)
		case tcell.KeyDown:
			v.moveCursor(1)
		case tcell.KeyPgUp:
			v.moveCursor(-v.listRows())
		case tcell.KeyPgDn:
			v.moveCursor(v.listRows())
		case tcell.KeyHome:
			v.moveCursor(-len(v.hues))
		case tcell.KeyEnd:
			v.moveCursor(len(v.hues))
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'q':
				return false
			case 'k':
				v.moveCursor(-1)
			case 'j':
				v.moveCursor(1)
			case 'g':
				v.moveCursor(-len(v.hues))
			case 'G':
				v.moveCursor(len(v.hues))
			}
		}
	case *tcell.EventResize:
		v.width, v.height = v.screen.Size()
		v.moveCursor(0)
		v.screen.Sync()
	}
	return true
}

func (v *viewer) run() {
	v.draw()
	for {
		if !v.handleInput(v.screen.PollEvent()) {
			return
		}
		v.draw()
	}
}

// Run displays the hue table and blocks until the user quits. The hues are
// only read from, never modified.
func Run(hues []hue.Hue) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	v := &viewer{
		screen: screen,
		hues:   hues,
	}
	v.width, v.height = screen.Size()

	v.run()

	return nil
}
