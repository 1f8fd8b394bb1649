package utils

import (
	"testing"
)

func TestPadLeft(t *testing.T) {
	got := PadLeft("7", 4)
	if got != "   7" {
		t.Errorf("PadLeft() = %q", got)
	}
}

func TestPadRight(t *testing.T) {
	got := PadRight("ab", 5)
	if got != "ab   " {
		t.Errorf("PadRight() = %q", got)
	}
}

func TestMaxString(t *testing.T) {
	got := MaxString([]string{"a", "abc", "ab"})
	if got != 3 {
		t.Errorf("MaxString() = %d, want 3", got)
	}
}

func TestSet(t *testing.T) {
	s := make(Set)
	s.Add(3); s.Add(1); s.Add(3)

	if !s.Contains(3) { t.Error("set must contain 3") }
	if s.Contains(2) { t.Error("set must not contain 2") }

	keys := s.GetKeys()
	if len(keys) != 2 || keys[0] != 1 || keys[1] != 3 {
		t.Errorf("GetKeys() = %v", keys)
	}
}

func TestCenterNumber(t *testing.T) {
	got := CenterNumber(7, 5)
	if len(got) != 5 {
		t.Errorf("CenterNumber() = %q, want width 5", got)
	}
}
