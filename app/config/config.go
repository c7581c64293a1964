package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/wasya-io/keycaster/app/boundary/ipc"
)

const (
	defaultClearTimeoutMs = 500
	defaultWatcherCommand = "showmethekey-cli"
	defaultLogDir         = "."
)

// Config はアプリケーションの設定を保持する構造体
type Config struct {
	ShowMouseAction bool
	ClearTimeout    time.Duration // 0以下でトレースを自動消去しない
	DebugMode       bool
	LogDir          string
	WatcherCommand  string
	SocketPath      string
}

// LoadConfig は.envファイルから設定を読み込む
func LoadConfig() *Config {
	// .envファイルを読み込む
	godotenv.Load()

	config := &Config{
		ShowMouseAction: true,
		ClearTimeout:    defaultClearTimeoutMs * time.Millisecond,
		DebugMode:       false,
		LogDir:          defaultLogDir,
		WatcherCommand:  defaultWatcherCommand,
		SocketPath:      ipc.DefaultSocketPath(),
	}

	// SHOW_MOUSE_ACTION環境変数から設定を読み込む
	if show := os.Getenv("SHOW_MOUSE_ACTION"); show != "" {
		config.ShowMouseAction = show != "0" && show != "false"
	}

	// CLEAR_TIMEOUT_MSの環境変数を読み込む
	if timeout := os.Getenv("CLEAR_TIMEOUT_MS"); timeout != "" {
		if ms, err := strconv.Atoi(timeout); err == nil {
			// 負の値は 0 と同じく自動消去なし
			if ms < 0 {
				ms = 0
			}
			config.ClearTimeout = time.Duration(ms) * time.Millisecond
		}
	}

	// DEBUG環境変数から設定を読み込む
	if debug := os.Getenv("DEBUG"); debug != "" {
		config.DebugMode = debug == "true"
	}

	if dir := os.Getenv("LOG_DIR"); dir != "" {
		config.LogDir = dir
	}

	if command := os.Getenv("WATCHER_COMMAND"); command != "" {
		config.WatcherCommand = command
	}

	if path := os.Getenv("SOCKET_PATH"); path != "" {
		config.SocketPath = path
	}

	return config
}
