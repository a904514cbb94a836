package plot

import (
	"strings"
	"testing"
)

func TestFrame_NoBorder(t *testing.T) {
	content := "abc\ndef"
	if got := Frame(content, FrameOptions{Width: 3}); got != content {
		t.Errorf("borderless frame changed content: %q", got)
	}

	got := Frame(content, FrameOptions{Width: 9, Title: "t"})
	if !strings.HasPrefix(got, strings.Repeat(" ", 4)+"t\n") {
		t.Errorf("title line = %q", strings.SplitN(got, "\n", 2)[0])
	}
}

func TestFrame_Single(t *testing.T) {
	content := strings.Repeat("⠀", 10) + "\n" + strings.Repeat("⠀", 10)
	got := Frame(content, FrameOptions{
		Width: 10, Border: "single", Title: "T",
		MinX: 0, MaxX: 32, MinY: -1, MaxY: 99,
	})

	lines := strings.Split(got, "\n")
	// top border + 2 content rows + bottom border + x annotation
	if len(lines) != 5 {
		t.Fatalf("frame has %d lines, want 5", len(lines))
	}
	if !strings.Contains(lines[0], "┌") || !strings.Contains(lines[0], "T") {
		t.Errorf("top border = %q", lines[0])
	}
	if !strings.Contains(lines[1], "99") {
		t.Errorf("first row missing y max: %q", lines[1])
	}
	if !strings.Contains(lines[2], "-1") {
		t.Errorf("last row missing y min: %q", lines[2])
	}
	if !strings.Contains(lines[4], "0") || !strings.Contains(lines[4], "32") {
		t.Errorf("x annotation = %q", lines[4])
	}
}

func TestTitledRule_TooLong(t *testing.T) {
	got := titledRule("very long title", 5, '-')
	if got != "-----" {
		t.Errorf("oversized title rule = %q", got)
	}
}
