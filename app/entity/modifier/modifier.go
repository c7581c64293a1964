package modifier

import (
	"github.com/wasya-io/keycaster/app/entity/key"
	"github.com/wasya-io/keycaster/app/entity/observable"
)

// State は4つの修飾キーの押下状態
// 左右の区別はせず、どちらかの離上で共有フラグが倒れる
type State struct {
	Shift   bool
	Command bool
	Alt     bool
	Ctrl    bool
}

// Tracker は押下・離上イベントから修飾キーの状態を追跡する
type Tracker struct {
	shift   *observable.Value[bool]
	command *observable.Value[bool]
	alt     *observable.Value[bool]
	ctrl    *observable.Value[bool]
}

func NewTracker() *Tracker {
	return &Tracker{
		shift:   observable.New(false),
		command: observable.New(false),
		alt:     observable.New(false),
		ctrl:    observable.New(false),
	}
}

// OnPress は修飾キーの押下でフラグを立て、その表示記号を返す
// 修飾キー以外は何もしない
func (t *Tracker) OnPress(evt key.KeyEvent) (string, bool) {
	mod, ok := key.ModifierOf(evt.KeyName)
	if !ok {
		return "", false
	}
	t.flag(mod).Set(true)
	return mod.Glyph(), true
}

// OnRelease は修飾キーの離上でフラグを倒す
// 押されていないキーの離上も正常に扱う
func (t *Tracker) OnRelease(evt key.KeyEvent) bool {
	mod, ok := key.ModifierOf(evt.KeyName)
	if !ok {
		return false
	}
	t.flag(mod).Set(false)
	return true
}

// Snapshot は現在の状態のコピーを返す
func (t *Tracker) Snapshot() State {
	return State{
		Shift:   t.shift.Get(),
		Command: t.command.Get(),
		Alt:     t.alt.Get(),
		Ctrl:    t.ctrl.Get(),
	}
}

// Observe は指定した修飾キーの購読用の値を返す
func (t *Tracker) Observe(mod key.Modifier) observable.Reader[bool] {
	return t.flag(mod)
}

func (t *Tracker) flag(mod key.Modifier) *observable.Value[bool] {
	switch mod {
	case key.ModShift:
		return t.shift
	case key.ModCommand:
		return t.command
	case key.ModAlt:
		return t.alt
	case key.ModCtrl:
		return t.ctrl
	}
	// 未知の修飾キーは常に false の値を返す
	return observable.New(false)
}
