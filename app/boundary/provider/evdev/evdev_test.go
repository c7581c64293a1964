//go:build linux

package evdev

import (
	"errors"
	"io"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/holoplot/go-evdev"
	"github.com/wasya-io/keycaster/app/entity/core"
	"github.com/wasya-io/keycaster/app/entity/key"
)

func TestConvert(t *testing.T) {
	tests := []struct {
		name  string
		event evdev.InputEvent
		want  key.KeyEvent
		ok    bool
	}{
		{
			name:  "key press",
			event: evdev.InputEvent{Type: evdev.EV_KEY, Code: evdev.KEY_A, Value: 1},
			want: key.KeyEvent{
				EventName: key.EventKeyboardKey, EventType: "KEY", KeyName: "KEY_A",
				KeyCode: int(evdev.KEY_A), StateName: "PRESSED", StateCode: key.Pressed,
			},
			ok: true,
		},
		{
			name:  "button release",
			event: evdev.InputEvent{Type: evdev.EV_KEY, Code: evdev.BTN_LEFT, Value: 0},
			want: key.KeyEvent{
				EventName: key.EventPointerButton, EventType: "BUTTON", KeyName: "BTN_LEFT",
				KeyCode: int(evdev.BTN_LEFT), StateName: "RELEASED", StateCode: key.Released,
			},
			ok: true,
		},
		{
			name:  "autorepeat",
			event: evdev.InputEvent{Type: evdev.EV_KEY, Code: evdev.KEY_A, Value: 2},
		},
		{
			name:  "relative motion",
			event: evdev.InputEvent{Type: evdev.EV_REL, Code: evdev.REL_X, Value: 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ev := tt.event
			got, ok := Convert(&ev)
			if ok != tt.ok {
				t.Fatalf("ok = %v, want %v", ok, tt.ok)
			}
			if ok && got != tt.want {
				t.Errorf("Convert() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

type fakeDevice struct {
	events []*evdev.InputEvent
	closed bool
}

func (d *fakeDevice) ReadOne() (*evdev.InputEvent, error) {
	if len(d.events) == 0 {
		return nil, io.EOF
	}
	ev := d.events[0]
	d.events = d.events[1:]
	return ev, nil
}

func (d *fakeDevice) Close() error {
	d.closed = true
	return nil
}

func TestProviderNext(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	logger := core.NewMockLogger(ctrl)
	logger.EXPECT().Log("warning", gomock.Any()).AnyTimes()

	dev := &fakeDevice{events: []*evdev.InputEvent{
		{Type: evdev.EV_SYN},
		{Type: evdev.EV_KEY, Code: evdev.KEY_B, Value: 1},
		{Type: evdev.EV_KEY, Code: evdev.KEY_B, Value: 2},
		{Type: evdev.EV_KEY, Code: evdev.KEY_B, Value: 0},
	}}
	p := newProvider([]device{dev}, logger)

	evt, err := p.Next()
	if err != nil || evt.KeyName != "KEY_B" || evt.StateCode != key.Pressed {
		t.Fatalf("unexpected first event: %+v, %v", evt, err)
	}
	evt, err = p.Next()
	if err != nil || evt.StateCode != key.Released {
		t.Fatalf("unexpected second event: %+v, %v", evt, err)
	}
	if _, err := p.Next(); !errors.Is(err, io.EOF) {
		t.Errorf("expected io.EOF, got %v", err)
	}

	if err := p.Close(); err != nil {
		t.Errorf("unexpected close error: %v", err)
	}
	if !dev.closed {
		t.Error("device was not closed")
	}
}
