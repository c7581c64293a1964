package key

// KeyEvent は入力キャプチャから届く1件の入力イベント
// KeyName 以外のフィールドは解釈せずにそのまま保持する
type KeyEvent struct {
	EventName EventName `json:"event_name"`
	EventType string    `json:"event_type"`
	KeyName   string    `json:"key_name"`
	KeyCode   int       `json:"key_code"`
	StateName string    `json:"state_name"`
	StateCode KeyState  `json:"state_code"`
}

// EventName はイベントの発生源を表す
type EventName string

const (
	EventKeyboardKey   EventName = "KEYBOARD_KEY"
	EventPointerButton EventName = "POINTER_BUTTON"
)

// KeyState はキーの押下状態を表す
type KeyState int

const (
	Released KeyState = 0
	Pressed  KeyState = 1
)

// Valid は既知の状態コードかどうかを返す
func (s KeyState) Valid() bool {
	return s == Released || s == Pressed
}

func (s KeyState) String() string {
	switch s {
	case Released:
		return "RELEASED"
	case Pressed:
		return "PRESSED"
	default:
		return "UNKNOWN"
	}
}

// 修飾キーの左右それぞれのキー名
const (
	KeyLeftShift  = "KEY_LEFTSHIFT"
	KeyRightShift = "KEY_RIGHTSHIFT"
	KeyLeftCtrl   = "KEY_LEFTCTRL"
	KeyRightCtrl  = "KEY_RIGHTCTRL"
	KeyLeftAlt    = "KEY_LEFTALT"
	KeyRightAlt   = "KEY_RIGHTALT"
	KeyLeftMeta   = "KEY_LEFTMETA"
	KeyRightMeta  = "KEY_RIGHTMETA"
)

// Modifier は追跡対象の4種類の修飾キー
type Modifier int

const (
	ModNone Modifier = iota
	ModShift
	ModCommand
	ModAlt
	ModCtrl
)

// Glyph は修飾キーの表示記号を返す
func (m Modifier) Glyph() string {
	switch m {
	case ModShift:
		return "⇧"
	case ModCommand:
		return "⌘"
	case ModAlt:
		return "⌥"
	case ModCtrl:
		return "⌃"
	default:
		return ""
	}
}

func (m Modifier) String() string {
	switch m {
	case ModShift:
		return "shift"
	case ModCommand:
		return "command"
	case ModAlt:
		return "alt"
	case ModCtrl:
		return "ctrl"
	default:
		return "none"
	}
}
