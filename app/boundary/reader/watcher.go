package reader

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"strings"
	"sync"

	"github.com/wasya-io/keycaster/app/entity/core"
)

// ErrEmptyCommand はウォッチャーのコマンドが空であることを示す
var ErrEmptyCommand = errors.New("watcher command is empty")

// WatcherReader は入力キャプチャのプロセスを起動し、その標準出力を1行ずつ読み取る
// 標準エラーはログに流す
type WatcherReader struct {
	cmd    *exec.Cmd
	lines  *StandardLineReader
	logger core.Logger
	wg     sync.WaitGroup
	once   sync.Once
	err    error
}

// StartWatcher はコマンドを起動する
// command は空白区切りで引数を含められる
func StartWatcher(ctx context.Context, command string, logger core.Logger) (*WatcherReader, error) {
	fields := strings.Fields(command)
	if len(fields) == 0 {
		return nil, ErrEmptyCommand
	}

	cmd := exec.CommandContext(ctx, fields[0], fields[1:]...)
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, fmt.Errorf("failed to open watcher stdout: %w", err)
	}
	stderr, err := cmd.StderrPipe()
	if err != nil {
		return nil, fmt.Errorf("failed to open watcher stderr: %w", err)
	}
	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("failed to start watcher %q: %w", fields[0], err)
	}

	w := &WatcherReader{
		cmd:    cmd,
		lines:  NewStandardLineReader(stdout),
		logger: logger,
	}
	logger.Log("system", fmt.Sprintf("watcher started: %s (pid %d)", command, cmd.Process.Pid))

	w.wg.Add(1)
	go w.drainStderr(stderr)

	return w, nil
}

func (w *WatcherReader) drainStderr(stderr io.Reader) {
	defer w.wg.Done()
	scanner := bufio.NewScanner(stderr)
	for scanner.Scan() {
		w.logger.Log("warning", "watcher: "+scanner.Text())
	}
}

func (w *WatcherReader) ReadLine() ([]byte, error) {
	return w.lines.ReadLine()
}

// Close はプロセスを停止して終了を待つ
func (w *WatcherReader) Close() error {
	w.once.Do(func() {
		if w.cmd.ProcessState == nil && w.cmd.Process != nil {
			_ = w.cmd.Process.Kill()
		}
		w.wg.Wait()
		err := w.cmd.Wait()
		var exitErr *exec.ExitError
		if err != nil && !errors.As(err, &exitErr) {
			w.err = fmt.Errorf("watcher wait: %w", err)
		}
		w.logger.Log("system", "watcher stopped")
	})
	return w.err
}
