package controller

import (
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/wasya-io/keycaster/app/boundary/provider/input"
	"github.com/wasya-io/keycaster/app/entity/core"
	"github.com/wasya-io/keycaster/app/entity/event"
	"github.com/wasya-io/keycaster/app/entity/observable"
	"github.com/wasya-io/keycaster/app/usecase/engine"
	"github.com/wasya-io/keycaster/app/usecase/parser"
)

// ErrToggleFailed はイベントループが切り替えを処理できなかったことを示す
var ErrToggleFailed = errors.New("toggle was not handled")

type Controller struct {
	engine        *engine.Engine
	inputProvider input.Provider
	logger        core.Logger
	eventBus      *event.Bus
	paused        *observable.Value[bool]
	toggleMutex   sync.Mutex
	quitOnce      sync.Once
	inputErr      error
	Quit          chan struct{}
}

func NewController(
	engine *engine.Engine,
	inputProvider input.Provider,
	logger core.Logger,
	eventBus *event.Bus,
) *Controller {
	c := &Controller{
		engine:        engine,
		inputProvider: inputProvider,
		logger:        logger,
		eventBus:      eventBus,
		paused:        observable.New(false),
		Quit:          make(chan struct{}),
	}

	// イベントハンドラーの登録
	c.registerEventHandlers()

	return c
}

// registerEventHandlers はイベントハンドラーを登録します
func (c *Controller) registerEventHandlers() {
	// 入力イベントのハンドラー
	keyHandler := event.NewSingleTypeHandler(event.TypeKey, func(e event.Event) (bool, error) {
		keyEvent, ok := e.Payload.(event.KeyEvent)
		if !ok {
			return false, nil
		}
		// 一時停止中は修飾キーの状態も更新しない
		if c.paused.Get() {
			return true, nil
		}
		c.engine.ConsumeKeyEvent(keyEvent.Key)
		return true, nil
	})

	// 予約されたコールバックのハンドラー
	timerHandler := event.NewSingleTypeHandler(event.TypeTimer, func(e event.Event) (bool, error) {
		timerEvent, ok := e.Payload.(event.TimerEvent)
		if !ok || timerEvent.Fire == nil {
			return false, nil
		}
		timerEvent.Fire()
		return true, nil
	})

	// 一時停止切り替えのハンドラー
	toggleHandler := event.NewSingleTypeHandler(event.TypeToggle, func(e event.Event) (bool, error) {
		toggleEvent, ok := e.Payload.(event.ToggleEvent)
		if !ok {
			return false, nil
		}
		paused := !c.paused.Get()
		if paused {
			c.engine.Reset()
		}
		c.paused.Set(paused)
		c.logger.Log("event", fmt.Sprintf("Paused=%v (from %s)", paused, toggleEvent.Source))
		return true, nil
	})

	// 終了イベントのハンドラー
	quitHandler := event.NewSingleTypeHandler(event.TypeQuit, func(e event.Event) (bool, error) {
		quitEvent, ok := e.Payload.(event.QuitEvent)
		if !ok {
			return false, nil
		}
		c.logger.Log("system", fmt.Sprintf("Quit event received: %s", quitEvent.Reason))
		c.quitOnce.Do(func() {
			close(c.Quit)
		})
		return true, nil
	})

	c.eventBus.Subscribe(keyHandler)
	c.eventBus.Subscribe(timerHandler)
	c.eventBus.Subscribe(toggleHandler)
	c.eventBus.Subscribe(quitHandler)

	c.eventBus.SetErrorHandler(func(eventType event.EventType, err error) {
		c.logger.Log("error", fmt.Sprintf("%s handler failed: %v", eventType, err))
	})
}

// Paused は一時停止状態の購読用の値を返します
func (c *Controller) Paused() observable.Reader[bool] {
	return c.paused
}

// PublishToggle は一時停止の切り替えを発行し、ループで処理されるまで待ちます
func (c *Controller) PublishToggle(source string) error {
	// 応答チャネルはイベントタイプごとに1つなので直列化する
	c.toggleMutex.Lock()
	defer c.toggleMutex.Unlock()

	response, err := c.eventBus.PublishAndWaitResponse(event.NewToggleEvent(source))
	if err != nil {
		return err
	}
	result, ok := response.Payload.(event.ResponseEvent)
	if !ok {
		return ErrToggleFailed
	}
	if result.Error != nil {
		return result.Error
	}
	if !result.Success {
		return ErrToggleFailed
	}
	return nil
}

// Err は入力の読み取りで終了した場合のエラーを返します
// Quit が閉じられた後に呼び出します
func (c *Controller) Err() error {
	return c.inputErr
}

// PublishQuitEvent は終了イベントを発行します
func (c *Controller) PublishQuitEvent(reason string) {
	c.logger.Log("event", fmt.Sprintf("Publishing quit event: %s", reason))
	c.eventBus.Publish(event.NewQuitEvent(reason))
}

// Process は入力を1件読み取り、イベントループに渡します
// 入力の終端では io.EOF を返します
func (c *Controller) Process() error {
	evt, err := c.inputProvider.Next()
	if err != nil {
		var malformed *parser.MalformedEventError
		if errors.As(err, &malformed) {
			// 不正な行は読み飛ばして続ける
			c.logger.Log("error", err.Error())
			return nil
		}
		return err
	}

	c.eventBus.Publish(event.NewKeyEvent(evt))
	return nil
}

// Run は入力が尽きるか Quit が閉じられるまで入力を読み続けます
// 入力が尽きた場合も終了イベントを発行します
func (c *Controller) Run() error {
	for {
		select {
		case <-c.Quit:
			return nil
		default:
		}

		err := c.Process()
		if err == nil {
			continue
		}
		if errors.Is(err, io.EOF) {
			c.PublishQuitEvent("input closed")
			return nil
		}

		select {
		case <-c.Quit:
			// 終了処理で入力を閉じた場合の読み取りエラーは無視する
			return nil
		default:
		}
		c.logger.Log("error", fmt.Sprintf("Input error: %v", err))
		c.inputErr = err
		c.PublishQuitEvent("input error")
		return err
	}
}
