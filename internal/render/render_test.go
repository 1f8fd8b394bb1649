package render

import (
	"fmt"
	"strings"
	"testing"

	"difgo/internal/diff"
)

func TestUnified(t *testing.T) {
	script := diff.Diff("a\nb\nc", "a\nx\nc")
	text := Plain(Unified(script, 0))
	fmt.Println(text)

	expected := " a\n-b\n+x\n c"
	if text != expected {
		t.Errorf("Unified() = %q, want %q", text, expected)
	}
}

func TestUnifiedContext(t *testing.T) {
	script := diff.Diff("1\n2\n3\n4\n5\n6\n7", "1\n2\n3\nx\n5\n6\n7")
	text := Plain(Unified(script, 1))
	fmt.Println(text)

	if !strings.Contains(text, "···") {
		t.Error("expected folded context marker")
	}
	if strings.Contains(text, " 1") || strings.Contains(text, " 7") {
		t.Error("lines outside context must be folded")
	}
	if !strings.Contains(text, "-4") || !strings.Contains(text, "+x") {
		t.Errorf("change must be visible:\n%s", text)
	}
}

func TestSplitCells(t *testing.T) {
	script := diff.Diff("a\nb", "a\nc")
	text := Plain(Split(script, 80, 0))
	fmt.Println(text)

	lines := strings.Split(text, "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(lines))
	}
	if !strings.Contains(lines[0], "│") {
		t.Error("split rows must have a column separator")
	}
	if !strings.Contains(lines[1], "~") {
		t.Errorf("changed row must carry the change marker: %q", lines[1])
	}
	if !strings.Contains(lines[1], "b") || !strings.Contains(lines[1], "c") {
		t.Errorf("changed row must show both sides: %q", lines[1])
	}
}

func TestSplitBlankCells(t *testing.T) {
	script := []diff.EditOp{
		{Kind: diff.OpInsert, Right: "added"},
		{Kind: diff.OpDelete, Left: "removed"},
	}
	text := Plain(Split(script, 80, 0))
	lines := strings.Split(text, "\n")

	left := strings.Split(lines[0], "│")[0]
	if strings.Contains(left, "added") {
		t.Errorf("insert must leave the left cell blank: %q", left)
	}
	right := strings.Split(lines[1], "│")[1]
	if strings.Contains(right, "removed") {
		t.Errorf("delete must leave the right cell blank: %q", right)
	}
}

func TestPlainStripsColors(t *testing.T) {
	script := diff.Diff("a", "b")
	colored := Unified(script, 0)
	if !strings.Contains(colored, "\x1b[") {
		t.Error("expected ANSI colors in unified output")
	}
	if strings.Contains(Plain(colored), "\x1b[") {
		t.Error("Plain must strip ANSI colors")
	}
}
