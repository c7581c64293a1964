package key

const keyPrefix = "KEY_"

// Class はキーイベントの分類
type Class int

const (
	ClassOther Class = iota // 特殊キーまたは未知のキー
	ClassPointer
	ClassModifier
	ClassLetter
	ClassDigit
)

func (c Class) String() string {
	switch c {
	case ClassPointer:
		return "pointer"
	case ClassModifier:
		return "modifier"
	case ClassLetter:
		return "letter"
	case ClassDigit:
		return "digit"
	default:
		return "other"
	}
}

// Classify はイベントを分類する
// 修飾キーの判定は文字・数字より先に行う
func Classify(evt KeyEvent) Class {
	if evt.EventName == EventPointerButton {
		return ClassPointer
	}
	if _, ok := ModifierOf(evt.KeyName); ok {
		return ClassModifier
	}
	if IsLetter(evt.KeyName) {
		return ClassLetter
	}
	if IsDigit(evt.KeyName) {
		return ClassDigit
	}
	return ClassOther
}

// ModifierOf はキー名に対応する修飾キーを返す
func ModifierOf(name string) (Modifier, bool) {
	switch {
	case IsShiftKey(name):
		return ModShift, true
	case IsCommandKey(name):
		return ModCommand, true
	case IsAltKey(name):
		return ModAlt, true
	case IsCtrlKey(name):
		return ModCtrl, true
	}
	return ModNone, false
}

func IsShiftKey(name string) bool {
	return name == KeyLeftShift || name == KeyRightShift
}

func IsCommandKey(name string) bool {
	return name == KeyLeftMeta || name == KeyRightMeta
}

func IsAltKey(name string) bool {
	return name == KeyLeftAlt || name == KeyRightAlt
}

func IsCtrlKey(name string) bool {
	return name == KeyLeftCtrl || name == KeyRightCtrl
}

// IsLetter は "KEY_" の後に大文字英字がちょうど1文字続くかを判定する
func IsLetter(name string) bool {
	c, ok := suffixByte(name)
	return ok && c >= 'A' && c <= 'Z'
}

// IsDigit は "KEY_" の後に数字がちょうど1文字続くかを判定する
func IsDigit(name string) bool {
	c, ok := suffixByte(name)
	return ok && c >= '0' && c <= '9'
}

// Suffix はキー名から "KEY_" を取り除いた部分を返す
func Suffix(name string) string {
	if len(name) < len(keyPrefix) || name[:len(keyPrefix)] != keyPrefix {
		return name
	}
	return name[len(keyPrefix):]
}

func suffixByte(name string) (byte, bool) {
	if len(name) != len(keyPrefix)+1 || name[:len(keyPrefix)] != keyPrefix {
		return 0, false
	}
	return name[len(keyPrefix)], true
}
