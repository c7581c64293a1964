// symbol パッケージはキー名と表示記号の静的な対応表を提供します。
// テーブルは起動後に変更されることはありません。
package symbol

// Base は基本テーブルから表示記号を引く
func Base(name string) (string, bool) {
	glyph, ok := base[name]
	return glyph, ok
}

// Shifted は Shift 押下時の表示記号を引く
func Shifted(name string) (string, bool) {
	glyph, ok := shifted[name]
	return glyph, ok
}

// Mouse はマウスボタンの表示記号を引く
func Mouse(name string) (string, bool) {
	glyph, ok := mouse[name]
	return glyph, ok
}
