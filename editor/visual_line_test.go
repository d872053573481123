package editor

import (
	"fmt"
	"testing"
)

func TestBuildVisualLine_Cells(t *testing.T) {
	vl := buildVisualLine([]string{"a", "\t", "世", "b"}, 4)

	wantCells := []int{0, 1, 4, 6, 7}
	if fmt.Sprint(vl.cells) != fmt.Sprint(wantCells) {
		t.Fatalf("cells: got %v, want %v", vl.cells, wantCells)
	}
	if got := vl.texts[1]; got != "   " {
		t.Fatalf("tab text: got %q, want %q", got, "   ")
	}
	if got := vl.width(); got != 7 {
		t.Fatalf("width: got %d, want %d", got, 7)
	}
}

func TestBuildVisualLine_ControlCharsUseReplacement(t *testing.T) {
	vl := buildVisualLine([]string{"a", "\x01", "b"}, 4)

	if got := vl.texts[1]; got != "�" {
		t.Fatalf("control char text: got %q, want %q", got, "�")
	}
	if got := vl.cellWidth(1); got != 1 {
		t.Fatalf("control char width: got %d, want %d", got, 1)
	}
}

func TestVisualLine_ColForCell(t *testing.T) {
	vl := buildVisualLine([]string{"世", "界", "x"}, 4)

	cases := []struct {
		cell int
		want int
	}{
		{-1, 0},
		{0, 0},
		{1, 0},
		{2, 1},
		{3, 1},
		{4, 2},
		{5, 3},
		{99, 3},
	}
	for _, tc := range cases {
		if got := vl.colForCell(tc.cell); got != tc.want {
			t.Fatalf("colForCell(%d): got %d, want %d", tc.cell, got, tc.want)
		}
	}
}

func TestTabAdvance(t *testing.T) {
	cases := []struct {
		col, width, want int
	}{
		{0, 4, 4},
		{1, 4, 3},
		{3, 4, 1},
		{4, 4, 4},
		{2, 0, DefaultTabWidth - 2},
	}
	for _, tc := range cases {
		if got := tabAdvance(tc.col, tc.width); got != tc.want {
			t.Fatalf("tabAdvance(%d,%d): got %d, want %d", tc.col, tc.width, got, tc.want)
		}
	}
}
