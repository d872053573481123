package editor

import "github.com/iw2rmb/notepad/internal/grapheme"

// WrapMode controls how long logical lines are displayed.
//
// WrapNone renders one logical line per visual row and uses horizontal scrolling
// to keep the cursor visible. WrapWord and WrapGrapheme use soft wrapping.
type WrapMode int

const (
	WrapNone WrapMode = iota
	WrapWord
	WrapGrapheme
)

// ParseWrapMode maps "none", "word" and "grapheme" to a WrapMode. Unknown
// values select WrapWord.
func ParseWrapMode(s string) WrapMode {
	switch s {
	case "none":
		return WrapNone
	case "grapheme":
		return WrapGrapheme
	default:
		return WrapWord
	}
}

func (w WrapMode) String() string {
	switch w {
	case WrapNone:
		return "none"
	case WrapGrapheme:
		return "grapheme"
	default:
		return "word"
	}
}

// wrappedSegment is one visual row of a logical line: the grapheme columns
// [StartCol, EndCol) and their cell span within the line.
type wrappedSegment struct {
	StartCol int
	EndCol   int

	startCell int
	endCell   int
}

func (s wrappedSegment) Cells() int { return s.endCell - s.startCell }

func wrapSegments(vl visualLine, mode WrapMode, width int) []wrappedSegment {
	n := len(vl.graphemes)
	if width <= 0 || mode == WrapNone || vl.width() <= width {
		return []wrappedSegment{{StartCol: 0, EndCol: n, startCell: 0, endCell: vl.width()}}
	}

	segments := make([]wrappedSegment, 0, 1+vl.width()/width)
	for start := 0; start < n; {
		used := 0
		overflow := start
		for overflow < n {
			w := vl.cellWidth(overflow)
			if used > 0 && used+w > width {
				break
			}
			used += w
			overflow++
		}

		end := overflow
		if mode == WrapWord && overflow < n {
			if br, ok := findWordWrapBreak(vl.graphemes, start, overflow); ok {
				end = br
			}
		}
		if end <= start {
			end = minInt(start+1, n)
		}

		segments = append(segments, wrappedSegment{
			StartCol:  start,
			EndCol:    end,
			startCell: vl.cells[start],
			endCell:   vl.cells[end],
		})
		start = end
	}
	return segments
}

// findWordWrapBreak returns the column just after the last whitespace run in
// [start, overflow).
func findWordWrapBreak(graphemes []string, start, overflow int) (int, bool) {
	lastBreak := -1
	for i := start; i < overflow; {
		if !grapheme.IsSpace(graphemes[i]) {
			i++
			continue
		}
		j := i + 1
		for j < overflow && grapheme.IsSpace(graphemes[j]) {
			j++
		}
		lastBreak = j
		i = j
	}
	if lastBreak <= start {
		return 0, false
	}
	return lastBreak, true
}

// segmentForCol returns the index of the segment that displays col. A column
// on a boundary belongs to the segment it starts.
func segmentForCol(segments []wrappedSegment, col int) int {
	for i, seg := range segments {
		if col < seg.EndCol {
			return i
		}
	}
	return len(segments) - 1
}
