package watch

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestPairWatcher(t *testing.T) {
	tempDir := t.TempDir()
	left := filepath.Join(tempDir, "left.txt")
	right := filepath.Join(tempDir, "right.txt")
	os.WriteFile(left, []byte("a\nb"), 0644)
	os.WriteFile(right, []byte("a\nc"), 0644)

	updateChan := make(chan string, 2)

	pw := NewPairWatcher(left, right)
	pw.StartWatch(func(path string) {
		fmt.Println("changed", path)
		updateChan <- path
	})
	defer pw.StopWatch()

	go func() {
		os.WriteFile(right, []byte("a\nd"), 0644)
	}()

	select {
	case <-time.After(time.Second * 2):
		t.Error("did not change")
	case path := <-updateChan:
		if path != right {
			t.Errorf("expected %s, got %s", right, path)
		}
	}
}

func TestPairWatcherIgnoresOthers(t *testing.T) {
	tempDir := t.TempDir()
	left := filepath.Join(tempDir, "left.txt")
	right := filepath.Join(tempDir, "right.txt")
	other := filepath.Join(tempDir, "other.txt")
	os.WriteFile(left, []byte("a"), 0644)
	os.WriteFile(right, []byte("b"), 0644)

	updateChan := make(chan string, 2)

	pw := NewPairWatcher(left, right)
	pw.StartWatch(func(path string) {
		updateChan <- path
	})
	defer pw.StopWatch()

	go func() {
		os.WriteFile(other, []byte("noise"), 0644)
	}()

	select {
	case <-time.After(500 * time.Millisecond):
		// nothing observed for an unrelated file
	case path := <-updateChan:
		t.Errorf("unexpected event for %s", path)
	}
}
