package render

import (
	"strconv"
	"strings"

	"difgo/internal/diff"
	. "difgo/internal/utils"

	"github.com/acarl005/stripansi"
)

// Colors (ANSI 256) for terminal output.
const (
	reset  = "\x1b[0m"
	green  = "\x1b[38;5;114m"
	red    = "\x1b[38;5;203m"
	yellow = "\x1b[38;5;221m"
	gray   = "\x1b[38;5;245m"
)

// Unified renders the script as one column in document order, a marker per
// kind: " " equal, "-" delete, "+" insert, a change becomes a "-"/"+" pair in
// the change color. context keeps that many equal lines around each change
// and folds the rest into a "···" row, context <= 0 shows everything.
func Unified(script []diff.EditOp, context int) string {
	var out []string
	visible := visibleEntries(script, context)
	skipping := false
	for k, op := range script {
		if !visible[k] {
			if !skipping { out = append(out, gray+"···"+reset); skipping = true }
			continue
		}
		skipping = false
		switch op.Kind {
		case diff.OpEqual:
			out = append(out, " "+op.Left)
		case diff.OpDelete:
			out = append(out, red+"-"+op.Left+reset)
		case diff.OpInsert:
			out = append(out, green+"+"+op.Right+reset)
		case diff.OpChange:
			out = append(out, yellow+"-"+op.Left+reset)
			out = append(out, yellow+"+"+op.Right+reset)
		}
	}
	return strings.Join(out, "\n")
}

// Split renders the script as two aligned columns, left side lines on the
// left, right side lines on the right, each with its own line numbers.
// An insert leaves the left cell blank, a delete the right cell.
func Split(script []diff.EditOp, width int, context int) string {
	leftTotal, rightTotal := 0, 0
	for _, op := range script {
		switch op.Kind {
		case diff.OpEqual, diff.OpChange: leftTotal++; rightTotal++
		case diff.OpDelete: leftTotal++
		case diff.OpInsert: rightTotal++
		}
	}
	numWidth := Max(len(strconv.Itoa(leftTotal)), len(strconv.Itoa(rightTotal)))
	colWidth := Max(10, (width-2*numWidth-7)/2)

	var out []string
	visible := visibleEntries(script, context)
	skipping := false
	leftNum, rightNum := 0, 0

	for k, op := range script {
		var lcell, rcell, lnum, rnum, marker, color string
		switch op.Kind {
		case diff.OpEqual:
			leftNum++; rightNum++
			lcell, rcell = op.Left, op.Right
			lnum, rnum = strconv.Itoa(leftNum), strconv.Itoa(rightNum)
			marker, color = " ", ""
		case diff.OpDelete:
			leftNum++
			lcell = op.Left
			lnum = strconv.Itoa(leftNum)
			marker, color = "-", red
		case diff.OpInsert:
			rightNum++
			rcell = op.Right
			rnum = strconv.Itoa(rightNum)
			marker, color = "+", green
		case diff.OpChange:
			leftNum++; rightNum++
			lcell, rcell = op.Left, op.Right
			lnum, rnum = strconv.Itoa(leftNum), strconv.Itoa(rightNum)
			marker, color = "~", yellow
		}

		if !visible[k] {
			if !skipping { out = append(out, gray+"···"+reset); skipping = true }
			continue
		}
		skipping = false

		row := color + PadLeft(lnum, numWidth) + " " + marker + " " + PadRight(clip(lcell, colWidth), colWidth)
		row += reset + gray + " │ " + reset
		row += color + PadLeft(rnum, numWidth) + " " + marker + " " + rcell
		if color != "" { row += reset }
		out = append(out, row)
	}
	return strings.Join(out, "\n")
}

// Plain strips the ANSI colors, for clipboard and pipes.
func Plain(s string) string {
	return stripansi.Strip(s)
}

func clip(s string, width int) string {
	runes := []rune(s)
	if len(runes) <= width { return s }
	if width <= 1 { return string(runes[:width]) }
	return string(runes[:width-1]) + "…"
}

func visibleEntries(script []diff.EditOp, context int) []bool {
	visible := make([]bool, len(script))
	if context <= 0 {
		for k := range visible { visible[k] = true }
		return visible
	}
	for k, op := range script {
		if op.Kind == diff.OpEqual { continue }
		from := Max(0, k-context)
		to := Min(len(script)-1, k+context)
		for i := from; i <= to; i++ { visible[i] = true }
	}
	return visible
}
