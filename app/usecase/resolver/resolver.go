package resolver

import (
	"strings"

	"github.com/wasya-io/keycaster/app/entity/key"
	"github.com/wasya-io/keycaster/app/entity/modifier"
	"github.com/wasya-io/keycaster/app/entity/symbol"
)

// Options は解決時に参照する設定
type Options struct {
	ShowMouseAction bool
}

// Result は1件のイベントの解決結果
type Result struct {
	Text       string
	Suppressed bool // マウス操作の表示が無効で出力しない
	Unknown    bool // どのテーブルにもなくキー名をそのまま返した
}

// Resolve はイベントと修飾キーの状態から表示文字列を求める
// 最初に一致した規則が採用され、どの入力でも必ず結果を返す
func Resolve(evt key.KeyEvent, state modifier.State, opts Options) Result {
	switch key.Classify(evt) {
	case key.ClassPointer:
		return resolvePointer(evt, opts)
	case key.ClassModifier:
		mod, _ := key.ModifierOf(evt.KeyName)
		return Result{Text: mod.Glyph()}
	case key.ClassLetter:
		letter := strings.ToLower(key.Suffix(evt.KeyName))
		if state.Shift {
			return Result{Text: strings.ToUpper(letter)}
		}
		return Result{Text: letter}
	case key.ClassDigit:
		digit := key.Suffix(evt.KeyName)
		if state.Shift {
			if glyph, ok := symbol.Shifted(evt.KeyName); ok {
				return Result{Text: glyph}
			}
		}
		return Result{Text: digit}
	}

	if glyph, ok := symbol.Base(evt.KeyName); ok {
		if state.Shift {
			if shifted, ok := symbol.Shifted(evt.KeyName); ok {
				return Result{Text: shifted}
			}
		}
		return Result{Text: glyph}
	}

	// 未知のキーは捨てずにキー名のまま表示する
	return Result{Text: evt.KeyName, Unknown: true}
}

func resolvePointer(evt key.KeyEvent, opts Options) Result {
	if !opts.ShowMouseAction {
		return Result{Suppressed: true}
	}
	if glyph, ok := symbol.Mouse(evt.KeyName); ok {
		return Result{Text: glyph}
	}
	return Result{Text: evt.KeyName, Unknown: true}
}
