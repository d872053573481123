package editor

import (
	"strings"

	"github.com/iw2rmb/notepad/internal/grapheme"
)

// visualLine is the display form of one buffer line: each grapheme with the
// text it renders as and the cell it starts at. Tabs expand to the next tab
// stop.
type visualLine struct {
	graphemes []string
	texts     []string
	// cells[i] is the start cell of grapheme i; cells[len(graphemes)] is
	// the total width.
	cells []int
}

func buildVisualLine(line []string, tabWidth int) visualLine {
	vl := visualLine{
		graphemes: line,
		texts:     make([]string, len(line)),
		cells:     make([]int, len(line)+1),
	}
	cell := 0
	for i, g := range line {
		vl.cells[i] = cell
		text, w := displayGrapheme(g, cell, tabWidth)
		vl.texts[i] = text
		cell += w
	}
	vl.cells[len(line)] = cell
	return vl
}

func displayGrapheme(g string, cell, tabWidth int) (string, int) {
	if g == "\t" {
		adv := tabAdvance(cell, tabWidth)
		return strings.Repeat(" ", adv), adv
	}
	w := grapheme.Width(g)
	if w < 1 || !isPrintable(g) {
		return "�", 1
	}
	return g, w
}

func isPrintable(g string) bool {
	for _, r := range g {
		if r < 0x20 || r == 0x7f {
			return false
		}
	}
	return true
}

func (vl visualLine) width() int { return vl.cells[len(vl.cells)-1] }

func (vl visualLine) cellWidth(col int) int { return vl.cells[col+1] - vl.cells[col] }

func (vl visualLine) cellForCol(col int) int {
	return vl.cells[clampInt(col, 0, len(vl.graphemes))]
}

// colForCell returns the column whose grapheme covers cell x. Clicks on the
// right half of a wide grapheme still land before it.
func (vl visualLine) colForCell(x int) int {
	if x <= 0 {
		return 0
	}
	for i := range vl.graphemes {
		if x < vl.cells[i+1] {
			return i
		}
	}
	return len(vl.graphemes)
}

func tabAdvance(visualCol, tabWidth int) int {
	if tabWidth <= 0 {
		tabWidth = DefaultTabWidth
	}
	adv := tabWidth - visualCol%tabWidth
	if adv < 1 {
		return 1
	}
	return adv
}

func clampInt(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
