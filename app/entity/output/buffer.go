// output パッケージは解決済みの記号を溜め込み、一定時間入力がなければ
// 自動で消去するデバウンス付きバッファを提供します。
package output

import (
	"errors"
	"fmt"
	"time"

	"github.com/wasya-io/keycaster/app/entity/core"
	"github.com/wasya-io/keycaster/app/entity/observable"
)

//go:generate mockgen -source=buffer.go -destination=mock_scheduler.go -package=output

// ErrSchedulerClosed は停止済みのスケジューラに予約しようとした場合のエラー
var ErrSchedulerClosed = errors.New("scheduler closed")

// Timer は予約済みのタイマー
type Timer interface {
	Stop() bool
}

// Scheduler は一度だけ発火するタイマーを予約する
// f はイベントループ上で呼び出されなければならない
type Scheduler interface {
	AfterFunc(d time.Duration, f func()) (Timer, error)
}

// Buffer はデバウンス付きの出力バッファ
// 予約中のタイマーは常に0個か1個
type Buffer struct {
	text       *observable.Value[string]
	timeout    time.Duration
	scheduler  Scheduler
	logger     core.Logger
	timer      Timer
	generation uint64
}

// NewBuffer は新しいバッファを作成する
// timeout が0以下の場合は自動消去しない
func NewBuffer(timeout time.Duration, scheduler Scheduler, logger core.Logger) *Buffer {
	return &Buffer{
		text:      observable.New(""),
		timeout:   timeout,
		scheduler: scheduler,
		logger:    logger,
	}
}

// Append は文字列を末尾に追加し、消去タイマーを張り直す
func (b *Buffer) Append(text string) {
	if text != "" {
		b.text.Set(b.text.Get() + text)
	}

	if b.timeout > 0 {
		b.rearm()
	}
}

// Clear は内容を空にする
// 発火中のタイマーには干渉しない
func (b *Buffer) Clear() {
	b.text.Set("")
}

// Observe は現在の内容を返す
func (b *Buffer) Observe() string {
	return b.text.Get()
}

// Value は描画側が購読するための値を返す
func (b *Buffer) Value() observable.Reader[string] {
	return b.text
}

// Pending は消去タイマーが予約中かどうかを返す
func (b *Buffer) Pending() bool {
	return b.timer != nil
}

// rearm は既存のタイマーを止めてから新しいタイマーを予約する
func (b *Buffer) rearm() {
	if b.timer != nil {
		b.timer.Stop()
		b.timer = nil
	}

	// 止めきれずにキューに入った古い発火は世代番号で無視する
	b.generation++
	generation := b.generation

	timer, err := b.scheduler.AfterFunc(b.timeout, func() {
		b.fire(generation)
	})
	if err != nil {
		b.logger.Log("warning", fmt.Sprintf("Failed to schedule clear timer: %v", err))
		return
	}
	b.timer = timer
}

func (b *Buffer) fire(generation uint64) {
	if generation != b.generation {
		return
	}
	b.timer = nil
	b.Clear()
}
