package screen

import "golang.org/x/text/width"

const ellipsis = "…"

// runeWidth は文字の表示幅を返す
func runeWidth(ch rune) int {
	p := width.LookupRune(ch)
	switch p.Kind() {
	case width.EastAsianFullwidth, width.EastAsianWide:
		return 2
	default:
		return 1
	}
}

// StringWidth は文字列の表示幅を返す
func StringWidth(s string) int {
	w := 0
	for _, ch := range s {
		w += runeWidth(ch)
	}
	return w
}

// FitTail は文字列の末尾が cols 幅に収まるよう先頭を切り詰める
// 切り詰めた場合は先頭に省略記号を付ける
func FitTail(s string, cols int) string {
	if cols <= 0 {
		return ""
	}
	if StringWidth(s) <= cols {
		return s
	}

	prefix := ellipsis
	if cols <= StringWidth(ellipsis) {
		prefix = ""
	}

	runes := []rune(s)
	budget := cols - StringWidth(prefix)
	start := len(runes)
	for start > 0 {
		w := runeWidth(runes[start-1])
		if w > budget {
			break
		}
		budget -= w
		start--
	}
	return prefix + string(runes[start:])
}
