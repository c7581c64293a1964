package parser

import (
	"errors"
	"fmt"
	"strings"

	"github.com/tidwall/gjson"
	"github.com/wasya-io/keycaster/app/entity/key"
)

// ErrBlankLine は空行を受け取ったことを示す。呼び出し側は読み飛ばす
var ErrBlankLine = errors.New("blank line")

// MalformedEventError は1行を入力イベントとして解釈できなかったことを示す
type MalformedEventError struct {
	Line string
	Err  error
}

func (e *MalformedEventError) Error() string {
	return fmt.Sprintf("malformed event %q: %v", e.Line, e.Err)
}

func (e *MalformedEventError) Unwrap() error {
	return e.Err
}

type InputParser interface {
	Parse(line []byte) (key.KeyEvent, error)
}

// JSONLineParser は1行1オブジェクトのJSONを KeyEvent に変換する
type JSONLineParser struct{}

func NewJSONLineParser() *JSONLineParser {
	return &JSONLineParser{}
}

// Parse は1行を解析して KeyEvent を返す
func (p *JSONLineParser) Parse(line []byte) (key.KeyEvent, error) {
	if strings.TrimSpace(string(line)) == "" {
		return key.KeyEvent{}, ErrBlankLine
	}

	malformed := func(err error) (key.KeyEvent, error) {
		return key.KeyEvent{}, &MalformedEventError{Line: string(line), Err: err}
	}

	if !gjson.ValidBytes(line) {
		return malformed(errors.New("invalid json"))
	}
	root := gjson.ParseBytes(line)
	if !root.IsObject() {
		return malformed(errors.New("not an object"))
	}

	eventName, err := stringField(root, "event_name")
	if err != nil {
		return malformed(err)
	}
	name := key.EventName(eventName)
	if name != key.EventKeyboardKey && name != key.EventPointerButton {
		return malformed(fmt.Errorf("unknown event_name %q", eventName))
	}

	keyName, err := stringField(root, "key_name")
	if err != nil {
		return malformed(err)
	}

	stateCode, err := intField(root, "state_code")
	if err != nil {
		return malformed(err)
	}
	state := key.KeyState(stateCode)
	if !state.Valid() {
		return malformed(fmt.Errorf("unknown state_code %d", stateCode))
	}

	// 以下は解釈しないので、欠けていても受け付ける
	keyCode := lastField(root, "key_code")
	if keyCode.Exists() && keyCode.Type != gjson.Number {
		return malformed(errors.New("key_code is not a number"))
	}

	return key.KeyEvent{
		EventName: name,
		EventType: lastField(root, "event_type").String(),
		KeyName:   keyName,
		KeyCode:   int(keyCode.Int()),
		StateName: lastField(root, "state_name").String(),
		StateCode: state,
	}, nil
}

// lastField はキーが重複していれば最後の値を返す
func lastField(root gjson.Result, field string) gjson.Result {
	var last gjson.Result
	root.ForEach(func(k, v gjson.Result) bool {
		if k.Str == field {
			last = v
		}
		return true
	})
	return last
}

func stringField(root gjson.Result, field string) (string, error) {
	v := lastField(root, field)
	if !v.Exists() {
		return "", fmt.Errorf("missing %s", field)
	}
	if v.Type != gjson.String {
		return "", fmt.Errorf("%s is not a string", field)
	}
	return v.Str, nil
}

func intField(root gjson.Result, field string) (int64, error) {
	v := lastField(root, field)
	if !v.Exists() {
		return 0, fmt.Errorf("missing %s", field)
	}
	if v.Type != gjson.Number {
		return 0, fmt.Errorf("%s is not a number", field)
	}
	if v.Num != float64(int64(v.Num)) {
		return 0, fmt.Errorf("%s is not an integer", field)
	}
	return int64(v.Num), nil
}
