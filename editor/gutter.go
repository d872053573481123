package editor

import "fmt"

// gutterDigits returns the number of digits needed for lineCount.
func gutterDigits(lineCount int) int {
	if lineCount < 1 {
		lineCount = 1
	}
	return len(fmt.Sprintf("%d", lineCount))
}

// gutterWidth is the line-number column plus one separator cell, or 0 when
// line numbers are off.
func (m *Model) gutterWidth() int {
	if !m.cfg.ShowLineNums {
		return 0
	}
	return gutterDigits(m.buf.LineCount()) + 1
}

func (m *Model) renderGutter(row, segIdx, cursorRow int) string {
	digits := gutterDigits(m.buf.LineCount())
	style := m.cfg.Style.LineNum
	if m.focused && row == cursorRow && segIdx == 0 {
		style = m.cfg.Style.LineNumActive
	}
	num := fmt.Sprintf("%*s", digits, "")
	if segIdx == 0 {
		num = fmt.Sprintf("%*d", digits, row+1)
	}
	return style.Render(num) + m.cfg.Style.Gutter.Render(" ")
}
