//go:build linux

// evdev パッケージは Linux の入力デバイスを直接読み取る Provider を提供します。
// 入力キャプチャのプロセスを使わずに、/dev/input/event* から KeyEvent を組み立てます。
package evdev

import (
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/holoplot/go-evdev"
	"github.com/wasya-io/keycaster/app/entity/core"
	"github.com/wasya-io/keycaster/app/entity/key"
)

// ErrNoDevice はキー入力を持つデバイスが見つからないことを示す
var ErrNoDevice = errors.New("no readable key input device")

// 自動リピートは押下と離上の対に含めない
const valueAutoRepeat = 2

type device interface {
	ReadOne() (*evdev.InputEvent, error)
	Close() error
}

type Provider struct {
	devices []device
	events  chan key.KeyEvent
	logger  core.Logger
	done    chan struct{}
	once    sync.Once
	wg      sync.WaitGroup
}

// Open はキー入力を持つ全デバイスを開く
// 権限のないデバイスは読み飛ばす
func Open(logger core.Logger) (*Provider, error) {
	paths, err := evdev.ListDevicePaths()
	if err != nil {
		return nil, fmt.Errorf("failed to list input devices: %w", err)
	}

	var devices []device
	for _, p := range paths {
		dev, err := evdev.Open(p.Path)
		if err != nil {
			logger.Log("debug", fmt.Sprintf("skip %s: %v", p.Path, err))
			continue
		}
		if !hasKeys(dev.CapableTypes()) {
			dev.Close()
			continue
		}
		logger.Log("system", fmt.Sprintf("reading %s (%s)", p.Path, p.Name))
		devices = append(devices, dev)
	}
	if len(devices) == 0 {
		return nil, ErrNoDevice
	}

	return newProvider(devices, logger), nil
}

func newProvider(devices []device, logger core.Logger) *Provider {
	p := &Provider{
		devices: devices,
		events:  make(chan key.KeyEvent, 64),
		logger:  logger,
		done:    make(chan struct{}),
	}
	for _, dev := range devices {
		p.wg.Add(1)
		go p.pump(dev)
	}
	go func() {
		p.wg.Wait()
		close(p.events)
	}()
	return p
}

func hasKeys(types []evdev.EvType) bool {
	for _, t := range types {
		if t == evdev.EV_KEY {
			return true
		}
	}
	return false
}

func (p *Provider) pump(dev device) {
	defer p.wg.Done()
	for {
		ev, err := dev.ReadOne()
		if err != nil {
			select {
			case <-p.done:
			default:
				p.logger.Log("warning", fmt.Sprintf("device read failed: %v", err))
			}
			return
		}
		evt, ok := Convert(ev)
		if !ok {
			continue
		}
		select {
		case p.events <- evt:
		case <-p.done:
			return
		}
	}
}

// Next は次のキーイベントを返す
// 全デバイスが読めなくなると io.EOF を返す
func (p *Provider) Next() (key.KeyEvent, error) {
	evt, ok := <-p.events
	if !ok {
		return key.KeyEvent{}, io.EOF
	}
	return evt, nil
}

func (p *Provider) Close() error {
	var errs []error
	p.once.Do(func() {
		close(p.done)
		for _, dev := range p.devices {
			if err := dev.Close(); err != nil {
				errs = append(errs, err)
			}
		}
	})
	return errors.Join(errs...)
}

// Convert は evdev のイベントを KeyEvent に変換する
// EV_KEY の押下と離上以外は false を返す
func Convert(ev *evdev.InputEvent) (key.KeyEvent, bool) {
	if ev == nil || ev.Type != evdev.EV_KEY || ev.Value == valueAutoRepeat {
		return key.KeyEvent{}, false
	}
	state := key.KeyState(ev.Value)
	if !state.Valid() {
		return key.KeyEvent{}, false
	}

	evt := key.KeyEvent{
		EventName: key.EventKeyboardKey,
		EventType: "KEY",
		KeyName:   codeName(ev),
		KeyCode:   int(ev.Code),
		StateName: state.String(),
		StateCode: state,
	}
	if isButton(ev.Code) {
		evt.EventName = key.EventPointerButton
		evt.EventType = "BUTTON"
	}
	return evt, true
}

func isButton(code evdev.EvCode) bool {
	return code >= evdev.BTN_MISC && code < evdev.KEY_OK
}

// 同じコードに複数の名前があるボタンは表示用の名前に揃える
var buttonNames = map[evdev.EvCode]string{
	evdev.BTN_LEFT:   "BTN_LEFT",
	evdev.BTN_RIGHT:  "BTN_RIGHT",
	evdev.BTN_MIDDLE: "BTN_MIDDLE",
	evdev.BTN_SIDE:   "BTN_SIDE",
	evdev.BTN_EXTRA:  "BTN_EXTRA",
}

func codeName(ev *evdev.InputEvent) string {
	if name, ok := buttonNames[ev.Code]; ok {
		return name
	}
	return ev.CodeName()
}
