package git

import (
	"fmt"
	"testing"

	"difgo/internal/diff"
)

func TestChangedLines(t *testing.T) {
	str1 := "Line 1\nLine 2\nLine 3\nLine 4\nLine 5"
	str2 := "Line 1\nLine 2 changed\nLine 4\nLine 5\nLine 6"

	added, removed := ChangedLines(diff.Diff(str1, str2))

	fmt.Println("Added line numbers:")
	added.Print()
	fmt.Println("Removed line numbers:")
	removed.Print()

	// line 2 changed, line 3 removed, line 5 added on the right
	if !added.Contains(2) { t.Error("line 2 must be marked added") }
	if !removed.Contains(2) { t.Error("line 2 must be marked removed") }
	if !removed.Contains(3) { t.Error("line 3 must be marked removed") }
	if !added.Contains(5) { t.Error("line 5 must be marked added") }
}

func TestChangedLinesSingle(t *testing.T) {
	added, removed := ChangedLines(diff.Diff("Line 1", "Line 2"))

	if !added.Contains(1) || !removed.Contains(1) {
		t.Error("a single changed line must be marked on both sides")
	}
}

func TestChangedLinesIdentical(t *testing.T) {
	added, removed := ChangedLines(diff.Diff("same\ntext", "same\ntext"))

	if len(added) != 0 || len(removed) != 0 {
		t.Errorf("identical texts must mark nothing, got %v %v", added, removed)
	}
}

func TestDiffHead(t *testing.T) {
	// only meaningful inside a git checkout, skip otherwise
	_, err := HeadFileContent("internal/git/git.go")
	if err != nil { t.Skip("not in a git repository:", err) }

	script, err := DiffHead("internal/git/git.go")
	if err != nil { t.Fatal(err) }
	fmt.Println("entries:", len(script))
}
