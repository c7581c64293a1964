package controller

import (
	"time"

	"github.com/wasya-io/keycaster/app/entity/event"
	"github.com/wasya-io/keycaster/app/entity/output"
)

// LoopScheduler はタイマーの発火をイベントループに載せて実行する
type LoopScheduler struct {
	eventBus *event.Bus
}

func NewLoopScheduler(eventBus *event.Bus) *LoopScheduler {
	return &LoopScheduler{eventBus: eventBus}
}

func (s *LoopScheduler) AfterFunc(d time.Duration, f func()) (output.Timer, error) {
	if s.eventBus.Closed() {
		return nil, output.ErrSchedulerClosed
	}
	return time.AfterFunc(d, func() {
		s.eventBus.Publish(event.NewTimerEvent(f))
	}), nil
}
