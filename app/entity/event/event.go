// event パッケージはイベントループ上で処理されるイベントを定義します。
package event

import "github.com/wasya-io/keycaster/app/entity/key"

// EventType はイベントの種類を表す型です。
type EventType string

// 定義済みイベントタイプ
const (
	TypeKey      EventType = "key"      // 入力イベント
	TypeTimer    EventType = "timer"    // 予約したコールバックの実行
	TypeToggle   EventType = "toggle"   // 一時停止の切り替え
	TypeQuit     EventType = "quit"     // 終了イベント
	TypeResponse EventType = "response" // 応答イベント
)

// Event はイベントループで処理されるイベントを表します。
type Event struct {
	Type    EventType   // イベントの種類
	Payload interface{} // イベントデータ
}

// KeyEvent は入力イベントのペイロードです。
type KeyEvent struct {
	Key key.KeyEvent
}

// TimerEvent はループ上で実行するコールバックを運びます。
type TimerEvent struct {
	Fire func()
}

// ToggleEvent は一時停止切り替えのペイロードです。
type ToggleEvent struct {
	Source string // 要求元（"ipc", "signal" など）
}

// QuitEvent は終了イベントのペイロードです。
type QuitEvent struct {
	Reason string
}

// ResponseEvent は応答イベントのペイロードを表します。
type ResponseEvent struct {
	Success bool   // 成功したかどうか
	Message string // メッセージ
	Error   error  // エラー情報
}

// NewEvent は新しいイベントを作成します。
func NewEvent(eventType EventType, payload interface{}) Event {
	return Event{
		Type:    eventType,
		Payload: payload,
	}
}

// NewKeyEvent は新しい入力イベントを作成します。
func NewKeyEvent(evt key.KeyEvent) Event {
	return NewEvent(TypeKey, KeyEvent{Key: evt})
}

// NewTimerEvent は新しいタイマーイベントを作成します。
func NewTimerEvent(fire func()) Event {
	return NewEvent(TypeTimer, TimerEvent{Fire: fire})
}

// NewToggleEvent は新しい一時停止切り替えイベントを作成します。
func NewToggleEvent(source string) Event {
	return NewEvent(TypeToggle, ToggleEvent{Source: source})
}

// NewQuitEvent は新しい終了イベントを作成します。
func NewQuitEvent(reason string) Event {
	return NewEvent(TypeQuit, QuitEvent{Reason: reason})
}

// NewResponseEvent は新しい応答イベントを作成します。
func NewResponseEvent(success bool, message string, err error) Event {
	return NewEvent(TypeResponse, ResponseEvent{
		Success: success,
		Message: message,
		Error:   err,
	})
}
