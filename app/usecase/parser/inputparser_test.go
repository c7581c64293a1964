package parser

import (
	"errors"
	"testing"

	"github.com/wasya-io/keycaster/app/entity/key"
)

func TestJSONLineParser_Parse(t *testing.T) {
	parser := NewJSONLineParser()
	line := []byte(`{"event_name":"KEYBOARD_KEY","event_type":"KEY","key_name":"KEY_A","key_code":30,"state_name":"PRESSED","state_code":1}`)

	evt, err := parser.Parse(line)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := key.KeyEvent{
		EventName: key.EventKeyboardKey,
		EventType: "KEY",
		KeyName:   "KEY_A",
		KeyCode:   30,
		StateName: "PRESSED",
		StateCode: key.Pressed,
	}
	if evt != want {
		t.Errorf("unexpected event: %+v", evt)
	}
}

func TestJSONLineParser_ParsePointerRelease(t *testing.T) {
	parser := NewJSONLineParser()
	evt, err := parser.Parse([]byte(`{"event_name":"POINTER_BUTTON","key_name":"BTN_LEFT","state_code":0}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if evt.EventName != key.EventPointerButton || evt.KeyName != "BTN_LEFT" || evt.StateCode != key.Released {
		t.Errorf("unexpected event: %+v", evt)
	}
}

func TestJSONLineParser_ParseDuplicateKeyLastWins(t *testing.T) {
	parser := NewJSONLineParser()
	evt, err := parser.Parse([]byte(`{"event_name":"KEYBOARD_KEY","key_name":"KEY_A","key_name":"KEY_B","state_code":0,"state_code":1}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if evt.KeyName != "KEY_B" || evt.StateCode != key.Pressed {
		t.Errorf("unexpected event: %+v", evt)
	}

	// 最後の値が不正なら先の値が正しくても不正
	_, err = parser.Parse([]byte(`{"event_name":"KEYBOARD_KEY","key_name":"KEY_A","key_name":30,"state_code":1}`))
	var malformed *MalformedEventError
	if !errors.As(err, &malformed) {
		t.Errorf("expected MalformedEventError, got %v", err)
	}
}

func TestJSONLineParser_ParseBlank(t *testing.T) {
	parser := NewJSONLineParser()
	for _, line := range []string{"", "   ", "\r"} {
		if _, err := parser.Parse([]byte(line)); !errors.Is(err, ErrBlankLine) {
			t.Errorf("Parse(%q) error = %v, want ErrBlankLine", line, err)
		}
	}
}

func TestJSONLineParser_ParseMalformed(t *testing.T) {
	parser := NewJSONLineParser()
	tests := []struct {
		name string
		line string
	}{
		{"not json", `KEY_A pressed`},
		{"truncated", `{"event_name":"KEYBOARD_KEY"`},
		{"array", `["KEY_A"]`},
		{"missing key_name", `{"event_name":"KEYBOARD_KEY","state_code":1}`},
		{"numeric key_name", `{"event_name":"KEYBOARD_KEY","key_name":30,"state_code":1}`},
		{"unknown event_name", `{"event_name":"TOUCH","key_name":"KEY_A","state_code":1}`},
		{"autorepeat state", `{"event_name":"KEYBOARD_KEY","key_name":"KEY_A","state_code":2}`},
		{"string state", `{"event_name":"KEYBOARD_KEY","key_name":"KEY_A","state_code":"1"}`},
		{"fractional state", `{"event_name":"KEYBOARD_KEY","key_name":"KEY_A","state_code":0.5}`},
		{"string key_code", `{"event_name":"KEYBOARD_KEY","key_name":"KEY_A","key_code":"30","state_code":1}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parser.Parse([]byte(tt.line))
			var malformed *MalformedEventError
			if !errors.As(err, &malformed) {
				t.Fatalf("expected MalformedEventError, got %v", err)
			}
			if malformed.Line != tt.line {
				t.Errorf("Line = %q, want %q", malformed.Line, tt.line)
			}
		})
	}
}
