package caster

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime/debug"
	"sync"

	"github.com/wasya-io/keycaster/app/boundary/ipc"
	"github.com/wasya-io/keycaster/app/boundary/provider/input"
	"github.com/wasya-io/keycaster/app/config"
	"github.com/wasya-io/keycaster/app/entity/core"
	"github.com/wasya-io/keycaster/app/entity/core/term"
	"github.com/wasya-io/keycaster/app/entity/event"
	"github.com/wasya-io/keycaster/app/entity/screen"
	"github.com/wasya-io/keycaster/app/usecase/controller"
	"golang.org/x/sys/unix"
)

// Caster はアプリケーションの状態を管理する構造体
type Caster struct {
	screen        *screen.Screen
	controller    *controller.Controller
	config        *config.Config
	termState     *term.TerminalState
	cleanupOnce   sync.Once
	cleanupChan   chan struct{}
	logger        core.Logger
	inputProvider input.Provider
	eventBus      *event.Bus
	ipcServer     *ipc.Server
}

// New は新しいCasterインスタンスを作成する
// ipcServer が nil の場合は一時停止の切り替えを受け付けない
func New(
	testMode bool,
	conf *config.Config,
	logger core.Logger,
	inputProvider input.Provider,
	screen *screen.Screen,
	controller *controller.Controller,
	eventBus *event.Bus,
	ipcServer *ipc.Server,
) (*Caster, error) {
	c := &Caster{
		screen:        screen,
		controller:    controller,
		config:        conf,
		cleanupChan:   make(chan struct{}),
		logger:        logger,
		inputProvider: inputProvider,
		eventBus:      eventBus,
		ipcServer:     ipcServer,
	}

	if !testMode {
		// 端末のエコーを止める
		termState, err := term.DisableEcho(os.Stdin)
		if err != nil {
			return nil, err
		}
		c.termState = termState
		// シグナルハンドラの設定
		go c.setupSignalHandler()
	}

	return c, nil
}

// setupSignalHandler はシグナルをイベントループへのイベントに変換する
func (c *Caster) setupSignalHandler() {
	defer func() {
		if r := recover(); r != nil {
			// パニック時の端末状態復元を保証
			c.Cleanup()
			fmt.Fprintf(os.Stderr, "keycaster panic: %v\n", r)
			debug.PrintStack()
			os.Exit(1)
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, unix.SIGINT, unix.SIGTERM, unix.SIGUSR1)
	defer signal.Stop(sigChan)

	for {
		select {
		case sig := <-sigChan:
			if sig == unix.SIGUSR1 {
				if err := c.controller.PublishToggle("signal"); err != nil {
					c.logger.Log("warning", fmt.Sprintf("Toggle by signal failed: %v", err))
				}
				continue
			}
			c.controller.PublishQuitEvent(sig.String())
		case <-c.cleanupChan:
			return
		}
	}
}

// Cleanup は終了時の後処理を行う
func (c *Caster) Cleanup() {
	c.cleanupOnce.Do(func() {
		if c.ipcServer != nil {
			if err := c.ipcServer.Close(); err != nil {
				c.logger.Log("warning", fmt.Sprintf("Failed to close socket: %v", err))
			}
		}

		// イベントバスのシャットダウン
		if c.eventBus != nil {
			c.eventBus.Shutdown()
		}

		if err := c.screen.Stop(); err != nil {
			c.logger.Log("warning", fmt.Sprintf("Failed to clear screen: %v", err))
		}

		// 読み取り中の入力を閉じて入力側のゴルーチンを止める
		if err := c.inputProvider.Close(); err != nil {
			c.logger.Log("warning", fmt.Sprintf("Failed to close input: %v", err))
		}

		// 端末の状態を復元
		if c.termState != nil {
			c.termState.Restore()
			c.termState = nil
		}

		c.logger.Log("system", "keycaster shut down")
		// 最後にログをフラッシュする
		c.logger.Flush()

		// クリーンアップ処理の完了を通知
		close(c.cleanupChan)
	})
}

// Run は入力を読み、終了イベントが来るまで描画を続ける
func (c *Caster) Run(ctx context.Context) error {
	defer c.Cleanup()

	c.logger.Log("system", "keycaster starting")

	if c.ipcServer != nil {
		if err := c.ipcServer.Listen(); err != nil {
			return err
		}
		c.ipcServer.Handle(ipc.RequestToggle, func() error {
			return c.controller.PublishToggle("ipc")
		})
		go func() {
			if err := c.ipcServer.Serve(ctx); err != nil {
				c.logger.Log("error", fmt.Sprintf("IPC server stopped: %v", err))
			}
		}()
	}

	// 初期表示
	if err := c.screen.Start(); err != nil {
		return err
	}

	// 入力の読み取りはループとは別のゴルーチンで行う
	go c.controller.Run()

	select {
	case <-c.controller.Quit:
		return c.controller.Err()
	case <-ctx.Done():
		// 入力側が終了を検知できるよう Quit を閉じてから後処理に入る
		c.controller.PublishQuitEvent("context done")
		select {
		case <-c.controller.Quit:
		case <-c.eventBus.Done():
		}
		return nil
	}
}
