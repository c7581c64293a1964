package logger

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// LogEntry はログのエントリを表す構造体
type LogEntry struct {
	Timestamp string `json:"timestamp"`
	Message   string `json:"message"`
	Type      string `json:"type"`
}

// Logger はロギング機能を提供する構造体
// 入力の読み取りとイベントループの両方から呼ばれるためロックで保護する
type Logger struct {
	mutex     sync.Mutex
	debugMode bool
	entries   []LogEntry
	filePath  string
	maxBuffer int
	startTime time.Time
}

// New は新しいLoggerインスタンスを作成する
// ログは dir 配下に JSON Lines 形式で追記される
func New(debugMode bool, dir string) *Logger {
	startTime := time.Now()
	return &Logger{
		debugMode: debugMode,
		entries:   make([]LogEntry, 0),
		filePath:  filepath.Join(dir, fmt.Sprintf("keycaster-%s.log", startTime.Format("20060102-150405"))),
		maxBuffer: 100,
		startTime: startTime,
	}
}

// Log はメッセージをログに記録する
func (l *Logger) Log(messageType string, message string) {
	l.mutex.Lock()
	defer l.mutex.Unlock()

	if !l.debugMode {
		return
	}

	entry := LogEntry{
		Timestamp: time.Now().Format(time.RFC3339Nano),
		Message:   message,
		Type:      messageType,
	}
	l.entries = append(l.entries, entry)

	// バッファが一定量に達したらフラッシュ
	if len(l.entries) >= l.maxBuffer {
		l.flushLocked()
	}
}

// Flush は現在のログエントリをファイルに書き出す
func (l *Logger) Flush() {
	l.mutex.Lock()
	defer l.mutex.Unlock()
	l.flushLocked()
}

func (l *Logger) flushLocked() {
	if len(l.entries) == 0 {
		return
	}

	file, err := os.OpenFile(l.filePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		// 書き込めない場合でも処理は止めない
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		l.entries = l.entries[:0]
		return
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetEscapeHTML(false)
	for _, entry := range l.entries {
		if err := encoder.Encode(entry); err != nil {
			break
		}
	}

	// ログをクリア
	l.entries = l.entries[:0]
}

// Path はログファイルのパスを返す
func (l *Logger) Path() string {
	return l.filePath
}
