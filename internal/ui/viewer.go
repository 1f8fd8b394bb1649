package ui

import (
	. "difgo/internal/config"
	"difgo/internal/diff"
	. "difgo/internal/highlighter"
	. "difgo/internal/logger"
	"difgo/internal/render"
	. "difgo/internal/utils"
	"fmt"
	"os"
	"strconv"

	"github.com/atotto/clipboard"
	. "github.com/gdamore/tcell"
	"github.com/gdamore/tcell/encoding"
)

type viewRow struct {
	kind   diff.Op
	lnum   string
	rnum   string
	marker string
	left   string
	right  string
}

type Viewer struct {
	COLUMNS int // terminal size columns
	ROWS    int // terminal size rows

	Y int // row offset for scrolling

	Script []diff.EditOp
	Stats  diff.Stats

	Mode  string // "unified" or "split"
	Theme string

	LeftName  string // file names, for the status line and syntax colors
	RightName string

	Screen Screen // Screen for drawing
	Config Config

	lang    string
	rows    []viewRow
	palette Palette
	status  string
}

func (v *Viewer) Start() {
	v.Init()
	v.DrawEverything()
	v.HandleEvents()
}

func (v *Viewer) Init() {
	encoding.Register()
	screen, err := NewScreen()
	if err != nil { fmt.Fprintf(os.Stderr, "%v\n", err); os.Exit(1) }
	v.Screen = screen

	err2 := v.Screen.Init()
	if err2 != nil { fmt.Fprintf(os.Stderr, "%v\n", err2); os.Exit(1) }

	v.Screen.Clear()
	v.COLUMNS, v.ROWS = v.Screen.Size()

	if v.Mode == "" { v.Mode = v.Config.Mode }
	if v.Theme == "" { v.Theme = v.Config.Theme }
	HighlighterGlobal.SetTheme(v.Theme)
	v.palette = HighlighterGlobal.Palette()

	v.lang = DetectLang(v.LeftName)
	v.Stats = diff.CollectStats(v.Script)
	v.BuildRows()
}

func (v *Viewer) HandleEvents() {
	for {
		ev := v.Screen.PollEvent()
		switch ev := ev.(type) {
		case *EventResize:
			v.COLUMNS, v.ROWS = v.Screen.Size()
			v.Screen.Sync()
			v.DrawEverything()

		case *EventKey:
			key := ev.Key()
			if key == KeyEscape || key == KeyCtrlQ || ev.Rune() == 'q' {
				v.Screen.Fini()
				return
			}
			if key == KeyDown { v.Scroll(1) }
			if key == KeyUp { v.Scroll(-1) }
			if key == KeyPgDn { v.Scroll(v.ROWS - 1) }
			if key == KeyPgUp { v.Scroll(-(v.ROWS - 1)) }
			if ev.Rune() == 'm' { v.ToggleMode() }
			if ev.Rune() == 't' { v.ToggleTheme() }
			if ev.Rune() == 'c' { v.CopyToClipboard() }
			v.DrawEverything()
		}
	}
}

func (v *Viewer) Scroll(delta int) {
	v.Y = Max(0, Min(v.Y+delta, Max(0, len(v.rows)-1)))
}

func (v *Viewer) ToggleMode() {
	if v.Mode == "unified" { v.Mode = "split" } else { v.Mode = "unified" }
	v.status = ""
	v.BuildRows()
}

// ToggleTheme flips between the dark and light styles.
func (v *Viewer) ToggleTheme() {
	if v.Theme == "difgo" { v.Theme = "difgo-light" } else { v.Theme = "difgo" }
	HighlighterGlobal.SetTheme(v.Theme)
	v.palette = HighlighterGlobal.Palette()
	v.status = ""
}

func (v *Viewer) CopyToClipboard() {
	text := render.Plain(render.Unified(v.Script, 0))
	err := clipboard.WriteAll(text)
	if err != nil { Log.Error("clipboard write failed:", err.Error()); return }
	v.status = "copied"
}

// BuildRows prepares one draw row per script entry, a change becomes a
// "-"/"+" pair in unified mode and a single "~" row in split mode.
func (v *Viewer) BuildRows() {
	v.rows = nil
	v.Y = 0
	leftNum, rightNum := 0, 0

	for _, op := range v.Script {
		switch op.Kind {
		case diff.OpEqual:
			leftNum++; rightNum++
			v.rows = append(v.rows, viewRow{op.Kind,
				strconv.Itoa(leftNum), strconv.Itoa(rightNum), " ", op.Left, op.Right})
		case diff.OpDelete:
			leftNum++
			v.rows = append(v.rows, viewRow{op.Kind,
				strconv.Itoa(leftNum), "", "-", op.Left, ""})
		case diff.OpInsert:
			rightNum++
			v.rows = append(v.rows, viewRow{op.Kind,
				"", strconv.Itoa(rightNum), "+", "", op.Right})
		case diff.OpChange:
			leftNum++; rightNum++
			if v.Mode == "unified" {
				v.rows = append(v.rows, viewRow{op.Kind,
					strconv.Itoa(leftNum), "", "-", op.Left, ""})
				v.rows = append(v.rows, viewRow{op.Kind,
					"", strconv.Itoa(rightNum), "+", "", op.Right})
			} else {
				v.rows = append(v.rows, viewRow{op.Kind,
					strconv.Itoa(leftNum), strconv.Itoa(rightNum), "~", op.Left, op.Right})
			}
		}
	}
}

func (v *Viewer) RowStyle(kind diff.Op) Style {
	base := StyleDefault.Background(Color(v.palette.Bg))
	switch kind {
	case diff.OpDelete: return base.Foreground(Color(v.palette.Removed))
	case diff.OpInsert: return base.Foreground(Color(v.palette.Added))
	case diff.OpChange: return base.Foreground(Color(v.palette.Changed))
	}
	return base.Foreground(Color(v.palette.Fg))
}

func (v *Viewer) DrawEverything() {
	v.Screen.Clear()

	bg := StyleDefault.Foreground(Color(v.palette.Fg)).Background(Color(v.palette.Bg))
	for row := 0; row < v.ROWS; row++ {
		for col := 0; col < v.COLUMNS; col++ {
			v.Screen.SetContent(col, row, ' ', nil, bg)
		}
	}

	numWidth := Max(len(strconv.Itoa(len(v.rows))), 3)

	for row := 0; row < v.ROWS-1; row++ {
		i := row + v.Y
		if i >= len(v.rows) { break }
		if v.Mode == "unified" {
			v.DrawUnifiedRow(row, v.rows[i], numWidth)
		} else {
			v.DrawSplitRow(row, v.rows[i], numWidth)
		}
	}

	v.DrawStatus()
	v.Screen.Show()
}

func (v *Viewer) DrawUnifiedRow(row int, r viewRow, numWidth int) {
	style := v.RowStyle(r.kind)
	numStyle := StyleDefault.Foreground(Color(v.palette.LineNum)).Background(Color(v.palette.Bg))

	num := r.lnum
	text := r.left
	if num == "" { num = r.rnum }
	if text == "" && r.kind != diff.OpDelete { text = r.right }

	col := v.DrawText(row, 0, PadLeft(num, numWidth), numStyle)
	col = v.DrawText(row, col, " "+r.marker+" ", style)

	if r.kind == diff.OpEqual && v.lang != "" {
		v.DrawColorized(row, col, text)
		return
	}
	v.DrawText(row, col, text, style)
}

func (v *Viewer) DrawSplitRow(row int, r viewRow, numWidth int) {
	style := v.RowStyle(r.kind)
	numStyle := StyleDefault.Foreground(Color(v.palette.LineNum)).Background(Color(v.palette.Bg))
	colWidth := Max(10, (v.COLUMNS-2*numWidth-7)/2)

	left := r.left
	if len([]rune(left)) > colWidth { left = string([]rune(left)[:colWidth]) }

	col := v.DrawText(row, 0, PadLeft(r.lnum, numWidth), numStyle)
	col = v.DrawText(row, col, " "+r.marker+" ", style)
	v.DrawText(row, col, left, style)

	sep := numWidth + 3 + colWidth
	col = v.DrawText(row, sep, " │ ", numStyle)
	col = v.DrawText(row, col, PadLeft(r.rnum, numWidth), numStyle)
	col = v.DrawText(row, col, " "+r.marker+" ", style)
	v.DrawText(row, col, r.right, style)
}

// DrawColorized paints one unchanged code line with syntax colors.
func (v *Viewer) DrawColorized(row int, col int, text string) {
	colors := HighlighterGlobal.Colorize(text, v.LeftName)
	i := 0
	for _, ch := range text {
		if col >= v.COLUMNS { break }
		style := StyleDefault.Foreground(Color(v.palette.Fg)).Background(Color(v.palette.Bg))
		if i < len(colors) && colors[i] != -1 {
			style = StyleDefault.Foreground(Color(colors[i])).Background(Color(v.palette.Bg))
		}
		v.Screen.SetContent(col, row, ch, nil, style)
		col++; i++
	}
}

func (v *Viewer) DrawStatus() {
	text := fmt.Sprintf(" +%d -%d ~%d  %s  %s  [m]ode [t]heme [c]opy [q]uit",
		v.Stats.Add, v.Stats.Delete, v.Stats.Change, v.Mode, v.Theme)
	if v.status != "" { text += "  " + v.status }

	style := StyleDefault.Foreground(Color(v.palette.Bg)).Background(Color(v.palette.LineNum))
	for col := 0; col < v.COLUMNS; col++ {
		v.Screen.SetContent(col, v.ROWS-1, ' ', nil, style)
	}
	v.DrawText(v.ROWS-1, 0, text, style)
}

func (v *Viewer) DrawText(row int, col int, text string, style Style) int {
	for _, ch := range text {
		if col >= v.COLUMNS { break }
		v.Screen.SetContent(col, row, ch, nil, style)
		col++
	}
	return col
}
