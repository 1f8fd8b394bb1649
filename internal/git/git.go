package git

import (
	"fmt"
	"os"
	"path/filepath"

	"difgo/internal/diff"
	. "difgo/internal/utils"

	gogit "github.com/go-git/go-git/v5"
)

// HeadFileContent returns the file as committed at HEAD of the repository
// in the current working directory.
func HeadFileContent(filePath string) (string, error) {
	cwd, err := os.Getwd()
	if err != nil { return "", fmt.Errorf("error getting current working directory: %w", err) }

	r, err := gogit.PlainOpen(filepath.Join(cwd))
	if err != nil { return "", fmt.Errorf("error opening git repository: %w", err) }

	ref, err := r.Head()
	if err != nil { return "", fmt.Errorf("error getting repository HEAD: %w", err) }

	commit, err := r.CommitObject(ref.Hash())
	if err != nil { return "", fmt.Errorf("error getting commit object: %w", err) }

	tree, err := commit.Tree()
	if err != nil { return "", fmt.Errorf("error getting commit tree: %w", err) }

	file, err := tree.File(filePath)
	if err != nil { return "", fmt.Errorf("error getting file from tree: %w", err) }

	content, err := file.Contents()
	if err != nil { return "", fmt.Errorf("error getting file contents: %w", err) }

	return content, nil
}

// DiffHead diffs the committed content of filePath against the worktree copy.
func DiffHead(filePath string) ([]diff.EditOp, error) {
	headContent, err := HeadFileContent(filePath)
	if err != nil { return nil, err }

	current, err := ReadFileToString(filePath)
	if err != nil { return nil, fmt.Errorf("error reading worktree file: %w", err) }

	return diff.Diff(headContent, current), nil
}

// ChangedLines maps a script to the line numbers touched on each side,
// for gutter marks. Added and changed lines count on the right, removed
// and changed on the left.
func ChangedLines(script []diff.EditOp) (added Set, removed Set) {
	added = make(Set)
	removed = make(Set)

	leftNum, rightNum := 0, 0
	for _, op := range script {
		switch op.Kind {
		case diff.OpEqual:
			leftNum++; rightNum++
		case diff.OpDelete:
			leftNum++
			removed.Add(leftNum)
		case diff.OpInsert:
			rightNum++
			added.Add(rightNum)
		case diff.OpChange:
			leftNum++; rightNum++
			removed.Add(leftNum)
			added.Add(rightNum)
		}
	}
	return added, removed
}
