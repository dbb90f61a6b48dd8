package layout

import "unicode/utf8"

// avgCharWidth is the fraction of the font size a character is assumed to
// occupy. Simple metrics only; real shaping is out of scope.
const avgCharWidth = 0.5

// textWidth estimates the advance width of a text run.
func textWidth(text string, fontSize float64) float64 {
	return float64(utf8.RuneCountInString(text)) * fontSize * avgCharWidth
}
