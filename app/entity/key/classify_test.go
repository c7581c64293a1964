package key

import "testing"

func TestIsLetter(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"KEY_A", true},
		{"KEY_Z", true},
		{"KEY_a", false},
		{"KEY_AB", false},
		{"KEY_", false},
		{"KEY_1", false},
		{"BTN_A", false},
		{"XKEY_A", false},
		{"KEY_F1", false},
	}
	for _, tt := range tests {
		if got := IsLetter(tt.name); got != tt.want {
			t.Errorf("IsLetter(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestIsDigit(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"KEY_0", true},
		{"KEY_9", true},
		{"KEY_10", false},
		{"KEY_A", false},
		{"KEY_KP1", false},
		{"1", false},
	}
	for _, tt := range tests {
		if got := IsDigit(tt.name); got != tt.want {
			t.Errorf("IsDigit(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestModifierPredicates(t *testing.T) {
	if !IsShiftKey(KeyLeftShift) || !IsShiftKey(KeyRightShift) {
		t.Error("shift variants not recognized")
	}
	if !IsCommandKey(KeyLeftMeta) || !IsCommandKey(KeyRightMeta) {
		t.Error("meta variants not recognized")
	}
	if !IsAltKey(KeyLeftAlt) || !IsAltKey(KeyRightAlt) {
		t.Error("alt variants not recognized")
	}
	if !IsCtrlKey(KeyLeftCtrl) || !IsCtrlKey(KeyRightCtrl) {
		t.Error("ctrl variants not recognized")
	}
	if IsShiftKey("KEY_A") || IsCtrlKey(KeyLeftShift) {
		t.Error("unexpected modifier match")
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		evt  KeyEvent
		want Class
	}{
		{KeyEvent{EventName: EventPointerButton, KeyName: "BTN_LEFT"}, ClassPointer},
		{KeyEvent{EventName: EventKeyboardKey, KeyName: KeyLeftShift}, ClassModifier},
		{KeyEvent{EventName: EventKeyboardKey, KeyName: "KEY_Q"}, ClassLetter},
		{KeyEvent{EventName: EventKeyboardKey, KeyName: "KEY_7"}, ClassDigit},
		{KeyEvent{EventName: EventKeyboardKey, KeyName: "KEY_ENTER"}, ClassOther},
		{KeyEvent{EventName: EventKeyboardKey, KeyName: "KEY_UNMAPPED_999"}, ClassOther},
	}
	for _, tt := range tests {
		if got := Classify(tt.evt); got != tt.want {
			t.Errorf("Classify(%s) = %v, want %v", tt.evt.KeyName, got, tt.want)
		}
	}
}

func TestModifierOfBothSides(t *testing.T) {
	tests := []struct {
		name string
		want Modifier
	}{
		{KeyLeftShift, ModShift},
		{KeyRightShift, ModShift},
		{KeyLeftMeta, ModCommand},
		{KeyRightMeta, ModCommand},
		{KeyLeftAlt, ModAlt},
		{KeyRightAlt, ModAlt},
		{KeyLeftCtrl, ModCtrl},
		{KeyRightCtrl, ModCtrl},
	}
	for _, tt := range tests {
		m, ok := ModifierOf(tt.name)
		if !ok || m != tt.want {
			t.Errorf("ModifierOf(%q) = %v, %v; want %v", tt.name, m, ok, tt.want)
		}
	}
	for _, name := range []string{"KEY_A", "KEY_SPACE", "BTN_LEFT", ""} {
		if m, ok := ModifierOf(name); ok || m != ModNone {
			t.Errorf("ModifierOf(%q) = %v, %v; want none", name, m, ok)
		}
	}
}

func TestModifierGlyph(t *testing.T) {
	glyphs := map[string]string{
		KeyLeftShift: "⇧",
		KeyRightMeta: "⌘",
		KeyLeftAlt:   "⌥",
		KeyRightCtrl: "⌃",
	}
	for name, want := range glyphs {
		m, ok := ModifierOf(name)
		if !ok {
			t.Fatalf("ModifierOf(%q) not found", name)
		}
		if m.Glyph() != want {
			t.Errorf("%s glyph = %q, want %q", name, m.Glyph(), want)
		}
	}
	if _, ok := ModifierOf("KEY_A"); ok {
		t.Error("KEY_A should not be a modifier")
	}
}

func TestSuffix(t *testing.T) {
	if got := Suffix("KEY_A"); got != "A" {
		t.Errorf("Suffix(KEY_A) = %q", got)
	}
	if got := Suffix("BTN_LEFT"); got != "BTN_LEFT" {
		t.Errorf("Suffix(BTN_LEFT) = %q", got)
	}
}
