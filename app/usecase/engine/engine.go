// engine パッケージはキーイベントを解釈して表示用の状態を組み立てます。
//
// Engine はイベントループ上からのみ呼び出される前提で、内部にロックを持ちません。
// 描画側は Shift などが返す値を購読して状態の変化を受け取ります。
package engine

import (
	"fmt"
	"time"

	"github.com/wasya-io/keycaster/app/entity/core"
	"github.com/wasya-io/keycaster/app/entity/key"
	"github.com/wasya-io/keycaster/app/entity/modifier"
	"github.com/wasya-io/keycaster/app/entity/observable"
	"github.com/wasya-io/keycaster/app/entity/output"
	"github.com/wasya-io/keycaster/app/usecase/resolver"
)

// Config はエンジン生成時に一度だけ渡される設定
type Config struct {
	ShowMouseAction bool
	ClearTimeout    time.Duration // 0以下で自動消去しない
}

// Snapshot は描画用の状態のコピー
type Snapshot struct {
	Modifiers modifier.State
	Text      string
}

// Engine はイベントを修飾キー追跡、記号解決、出力バッファへ順に流す
type Engine struct {
	config  Config
	tracker *modifier.Tracker
	buffer  *output.Buffer
	logger  core.Logger
}

// New は新しい Engine を作成する
func New(config Config, scheduler output.Scheduler, logger core.Logger) *Engine {
	return &Engine{
		config:  config,
		tracker: modifier.NewTracker(),
		buffer:  output.NewBuffer(config.ClearTimeout, scheduler, logger),
		logger:  logger,
	}
}

// ConsumeKeyEvent は1件のイベントを処理する
func (e *Engine) ConsumeKeyEvent(evt key.KeyEvent) {
	switch evt.StateCode {
	case key.Pressed:
		e.handlePressed(evt)
	case key.Released:
		e.tracker.OnRelease(evt)
	}
}

func (e *Engine) handlePressed(evt key.KeyEvent) {
	e.tracker.OnPress(evt)

	result := resolver.Resolve(evt, e.tracker.Snapshot(), resolver.Options{
		ShowMouseAction: e.config.ShowMouseAction,
	})
	if result.Suppressed {
		return
	}
	if result.Unknown {
		e.logger.Log("debug", fmt.Sprintf("Unknown key event: %+v", evt))
	}

	e.buffer.Append(result.Text)
}

// Reset はトレースを消去する
// 修飾キーの状態はそのまま残す
func (e *Engine) Reset() {
	e.buffer.Clear()
}

// Snapshot は現在の状態を返す
func (e *Engine) Snapshot() Snapshot {
	return Snapshot{
		Modifiers: e.tracker.Snapshot(),
		Text:      e.buffer.Observe(),
	}
}

func (e *Engine) Shift() observable.Reader[bool] {
	return e.tracker.Observe(key.ModShift)
}

func (e *Engine) Command() observable.Reader[bool] {
	return e.tracker.Observe(key.ModCommand)
}

func (e *Engine) Alt() observable.Reader[bool] {
	return e.tracker.Observe(key.ModAlt)
}

func (e *Engine) Ctrl() observable.Reader[bool] {
	return e.tracker.Observe(key.ModCtrl)
}

// Text はトレース文字列の購読用の値を返す
func (e *Engine) Text() observable.Reader[string] {
	return e.buffer.Value()
}
