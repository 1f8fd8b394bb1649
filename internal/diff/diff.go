package diff

import (
	"strings"
)

type Op int

const (
	OpEqual Op = iota
	OpDelete
	OpInsert
	OpChange
)

func (o Op) String() string {
	switch o {
	case OpEqual:  return "equal"
	case OpDelete: return "delete"
	case OpInsert: return "insert"
	case OpChange: return "change"
	}
	return "unknown"
}

// EditOp is one entry of an edit script.
// Equal carries both sides (identical by construction), Delete only Left,
// Insert only Right, Change both sides (a merged delete/insert pair).
type EditOp struct {
	Kind  Op     `json:"kind"`
	Left  string `json:"left,omitempty"`
	Right string `json:"right,omitempty"`
}

// SplitLines splits strictly on '\n', no trimming.
// A trailing newline produces a trailing empty line, the empty text has no lines.
func SplitLines(text string) []string {
	if text == "" { return nil }
	return strings.Split(text, "\n")
}

// Diff computes the line edit script that turns left into right.
// Lines are compared by exact string equality. The script is minimal in the
// LCS sense, ties between delete and insert favor delete, and every adjacent
// delete/insert run is folded into change entries by mergeChanges.
// Total over any pair of texts, including empty ones.
func Diff(left string, right string) []EditOp {
	a := SplitLines(left)
	b := SplitLines(right)
	m, n := len(a), len(b)

	// lcs[i*w+j] is the LCS length of a[i:] and b[j:], flat row-major
	// to avoid allocating one slice per row.
	w := n + 1
	lcs := make([]int, (m+1)*w)
	for i := m - 1; i >= 0; i-- {
		for j := n - 1; j >= 0; j-- {
			if a[i] == b[j] {
				lcs[i*w+j] = lcs[(i+1)*w+j+1] + 1
			} else if lcs[(i+1)*w+j] >= lcs[i*w+j+1] {
				lcs[i*w+j] = lcs[(i+1)*w+j]
			} else {
				lcs[i*w+j] = lcs[i*w+j+1]
			}
		}
	}

	script := make([]EditOp, 0, m+n)
	i, j := 0, 0
	for i < m && j < n {
		if a[i] == b[j] {
			script = append(script, EditOp{Kind: OpEqual, Left: a[i], Right: b[j]})
			i++; j++
		} else if lcs[(i+1)*w+j] >= lcs[i*w+j+1] {
			// tie favors delete
			script = append(script, EditOp{Kind: OpDelete, Left: a[i]})
			i++
		} else {
			script = append(script, EditOp{Kind: OpInsert, Right: b[j]})
			j++
		}
	}
	for ; i < m; i++ { script = append(script, EditOp{Kind: OpDelete, Left: a[i]}) }
	for ; j < n; j++ { script = append(script, EditOp{Kind: OpInsert, Right: b[j]}) }

	return mergeChanges(script)
}

// mergeChanges folds each run of deletes followed by a run of inserts into
// change entries, first delete with first insert, second with second, and so
// on. Leftover deletes or inserts pass through unchanged, as does everything
// else. Pairing is strictly positional, it never matches by similarity and
// never pairs across an equal entry.
func mergeChanges(script []EditOp) []EditOp {
	merged := make([]EditOp, 0, len(script))
	for k := 0; k < len(script); {
		if script[k].Kind != OpDelete {
			merged = append(merged, script[k])
			k++
			continue
		}
		d := k
		for d < len(script) && script[d].Kind == OpDelete { d++ }
		e := d
		for e < len(script) && script[e].Kind == OpInsert { e++ }
		dels, ins := script[k:d], script[d:e]
		p := 0
		for ; p < len(dels) && p < len(ins); p++ {
			merged = append(merged, EditOp{Kind: OpChange, Left: dels[p].Left, Right: ins[p].Right})
		}
		merged = append(merged, dels[p:]...)
		merged = append(merged, ins[p:]...)
		k = e
	}
	return merged
}
