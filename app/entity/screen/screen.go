// screen パッケージは修飾キーの表示とトレースを端末の1行に描画します。
package screen

import (
	"fmt"
	"sync"

	"github.com/wasya-io/keycaster/app/boundary/writer"
	"github.com/wasya-io/keycaster/app/entity/core"
	"github.com/wasya-io/keycaster/app/entity/key"
	"github.com/wasya-io/keycaster/app/entity/observable"
)

const (
	// エスケープシーケンス
	escape            = "\x1b"  // ESC
	clearLineSequence = "[2K"   // 行クリア
	reverseSequence   = "[7m"   // 反転表示
	dimSequence       = "[2m"   // 淡色表示
	resetSequence     = "[0m"   // 属性リセット
	hideCursor        = "[?25l" // カーソル非表示
	showCursor        = "[?25h" // カーソル表示
)

// Source は描画対象の状態
type Source interface {
	Shift() observable.Reader[bool]
	Command() observable.Reader[bool]
	Alt() observable.Reader[bool]
	Ctrl() observable.Reader[bool]
	Text() observable.Reader[string]
}

type indicator struct {
	mod   key.Modifier
	value observable.Reader[bool]
}

type Screen struct {
	mutex       sync.Mutex
	builder     *Builder
	writer      writer.ScreenWriter
	logger      core.Logger
	indicators  []indicator
	text        observable.Reader[string]
	paused      observable.Reader[bool]
	cols        func() int
	unsubscribe []func()
}

// NewScreen は描画面を作成する
// cols は描画のたびに呼ばれ、端末の桁数を返す
func NewScreen(
	writer writer.ScreenWriter,
	source Source,
	paused observable.Reader[bool],
	cols func() int,
	logger core.Logger,
) *Screen {
	return &Screen{
		builder: NewBuilder(),
		writer:  writer,
		logger:  logger,
		indicators: []indicator{
			{key.ModShift, source.Shift()},
			{key.ModCtrl, source.Ctrl()},
			{key.ModAlt, source.Alt()},
			{key.ModCommand, source.Command()},
		},
		text:   source.Text(),
		paused: paused,
		cols:   cols,
	}
}

// Start は状態の購読を始め、初回の描画を行う
func (s *Screen) Start() error {
	redraw := func() {
		if err := s.Redraw(); err != nil {
			s.logger.Log("error", fmt.Sprintf("redraw failed: %v", err))
		}
	}

	for _, ind := range s.indicators {
		s.unsubscribe = append(s.unsubscribe, ind.value.Subscribe(func(bool) { redraw() }))
	}
	s.unsubscribe = append(s.unsubscribe,
		s.text.Subscribe(func(string) { redraw() }),
		s.paused.Subscribe(func(bool) { redraw() }),
	)

	if err := s.writer.Write(escape + hideCursor); err != nil {
		return err
	}
	return s.Redraw()
}

// Stop は購読を解除し、行を消してカーソルを戻す
func (s *Screen) Stop() error {
	for _, fn := range s.unsubscribe {
		fn()
	}
	s.unsubscribe = nil

	s.mutex.Lock()
	defer s.mutex.Unlock()
	return s.writer.Write("\r" + escape + clearLineSequence + escape + showCursor)
}

// Redraw は現在の状態で行を描き直す
func (s *Screen) Redraw() error {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	return s.writer.Write(s.render())
}

// Render は描画される文字列を返す
func (s *Screen) Render() string {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	return s.render()
}

func (s *Screen) render() string {
	s.builder.Clear()
	s.builder.Write("\r" + escape + clearLineSequence)

	// 一時停止中は何も表示しない
	if s.paused.Get() {
		return s.builder.Build()
	}

	used := 0
	for _, ind := range s.indicators {
		glyph := ind.mod.Glyph()
		if ind.value.Get() {
			s.builder.Write(escape + reverseSequence + glyph + escape + resetSequence)
		} else {
			s.builder.Write(escape + dimSequence + glyph + escape + resetSequence)
		}
		s.builder.Write(" ")
		used += StringWidth(glyph) + 1
	}

	// 最終桁に書くと折り返す端末があるため1桁残す
	s.builder.Write(FitTail(s.text.Get(), s.cols()-used-1))
	return s.builder.Build()
}
