package highlighter

import (
	"fmt"
	"testing"
)

func TestDetectGoLang(t *testing.T) {
	language := DetectLang("highlighter_test.go")
	fmt.Println(language)
	if language != "go" {
		t.Error("language must be Go", language)
	}
}

func TestDetectPythonLang(t *testing.T) {
	language := DetectLang("test.py")
	fmt.Println(language)
	if language != "python" {
		t.Error("language must be Python", language)
	}
}

func TestPalette(t *testing.T) {
	h := Highlighter{}

	h.SetTheme("difgo")
	dark := h.Palette()

	h.SetTheme("difgo-light")
	light := h.Palette()

	if dark.Bg == light.Bg {
		t.Error("dark and light backgrounds must differ")
	}
	if dark.Added == dark.Removed {
		t.Error("added and removed colors must differ")
	}
}

func TestColorize(t *testing.T) {
	h := Highlighter{}
	h.SetTheme("difgo")

	colors := h.Colorize("func main() {}", "main.go")
	if len(colors) != len("func main() {}") {
		t.Errorf("expected one color per char, got %d", len(colors))
	}
}
