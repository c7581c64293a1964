package symbol

// base はキー名から表示記号への基本テーブル
var base = map[string]string{
	// 修飾キー
	"KEY_LEFTSHIFT":  "⇧",
	"KEY_RIGHTSHIFT": "⇧",
	"KEY_LEFTCTRL":   "⌃",
	"KEY_RIGHTCTRL":  "⌃",
	"KEY_LEFTALT":    "⌥",
	"KEY_RIGHTALT":   "⌥",
	"KEY_LEFTMETA":   "⌘",
	"KEY_RIGHTMETA":  "⌘",

	// カーソル移動
	"KEY_LEFT":     "←",
	"KEY_RIGHT":    "→",
	"KEY_UP":       "↑",
	"KEY_DOWN":     "↓",
	"KEY_PAGEUP":   "⇞",
	"KEY_PAGEDOWN": "⇟",
	"KEY_HOME":     "⇱",
	"KEY_END":      "⇲",

	// ファンクションキー
	"KEY_F1":  "F1",
	"KEY_F2":  "F2",
	"KEY_F3":  "F3",
	"KEY_F4":  "F4",
	"KEY_F5":  "F5",
	"KEY_F6":  "F6",
	"KEY_F7":  "F7",
	"KEY_F8":  "F8",
	"KEY_F9":  "F9",
	"KEY_F10": "F10",
	"KEY_F11": "F11",
	"KEY_F12": "F12",

	// 記号
	"KEY_LEFTBRACE":  "[",
	"KEY_RIGHTBRACE": "]",
	"KEY_BACKSLASH":  "\\",
	"KEY_SEMICOLON":  ";",
	"KEY_APOSTROPHE": "'",
	"KEY_COMMA":      ",",
	"KEY_DOT":        ".",
	"KEY_MINUS":      "-",
	"KEY_EQUAL":      "=",
	"KEY_GRAVE":      "`",
	"KEY_SLASH":      "/",

	// 編集キー
	"KEY_SPACE":     "␣",
	"KEY_ENTER":     "⏎",
	"KEY_TAB":       "⇥",
	"KEY_BACKSPACE": "⌫",
	"KEY_CAPSLOCK":  "⇪",
	"KEY_DELETE":    "⌦",
	"KEY_INSERT":    "⎀",
	"KEY_ESC":       "⎋",
	"KEY_SYSRQ":     "⎙",

	// テンキー
	"KEY_KP0":        "0",
	"KEY_KP1":        "1",
	"KEY_KP2":        "2",
	"KEY_KP3":        "3",
	"KEY_KP4":        "4",
	"KEY_KP5":        "5",
	"KEY_KP6":        "6",
	"KEY_KP7":        "7",
	"KEY_KP8":        "8",
	"KEY_KP9":        "9",
	"KEY_KPPLUS":     "+",
	"KEY_KPMINUS":    "-",
	"KEY_KPASTERISK": "*",
	"KEY_KPSLASH":    "/",
	"KEY_KPDOT":      ".",
	"KEY_KPEQUAL":    "=",
	"KEY_KPENTER":    "⌤",
	"KEY_NUMLOCK":    "⇭",

	// メディアキー
	"KEY_VOLUMEUP":       "🕪",
	"KEY_VOLUMEDOWN":     "🕨",
	"KEY_MUTE":           "🔇",
	"KEY_PLAYPAUSE":      "⏵",
	"KEY_PREVIOUSSONG":   "⏮",
	"KEY_NEXTSONG":       "⏭",
	"KEY_BRIGHTNESSDOWN": "☼⇂",
	"KEY_BRIGHTNESSUP":   "☼↾",
	"KEY_CALC":           "🖩",
	"KEY_FILE":           " ",
	"KEY_HOMEPAGE":       " ",
}

// shifted は Shift 押下中に記号が変わるキーの上書きテーブル
var shifted = map[string]string{
	"KEY_1": "!",
	"KEY_2": "@",
	"KEY_3": "#",
	"KEY_4": "$",
	"KEY_5": "%",
	"KEY_6": "^",
	"KEY_7": "&",
	"KEY_8": "*",
	"KEY_9": "(",
	"KEY_0": ")",

	"KEY_GRAVE":      "~",
	"KEY_MINUS":      "_",
	"KEY_EQUAL":      "+",
	"KEY_LEFTBRACE":  "{",
	"KEY_RIGHTBRACE": "}",
	"KEY_BACKSLASH":  "|",
	"KEY_SEMICOLON":  ":",
	"KEY_APOSTROPHE": "\"",
	"KEY_COMMA":      "<",
	"KEY_DOT":        ">",
	"KEY_SLASH":      "?",
}

// mouse はマウスボタンの表示記号
var mouse = map[string]string{
	"BTN_LEFT":   "🖰↰",
	"BTN_RIGHT":  "🖰↱",
	"BTN_MIDDLE": "🖰↕",
	"BTN_SIDE":   "🖰↶",
	"BTN_EXTRA":  "🖰↷",
}
