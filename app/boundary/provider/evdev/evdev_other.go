//go:build !linux

package evdev

import (
	"errors"

	"github.com/wasya-io/keycaster/app/entity/core"
	"github.com/wasya-io/keycaster/app/entity/key"
)

// ErrNoDevice はこのプラットフォームで入力デバイスを直接読めないことを示す
var ErrNoDevice = errors.New("input devices are only readable on linux")

type Provider struct{}

func Open(logger core.Logger) (*Provider, error) {
	return nil, ErrNoDevice
}

func (p *Provider) Next() (key.KeyEvent, error) {
	return key.KeyEvent{}, ErrNoDevice
}

func (p *Provider) Close() error {
	return nil
}
