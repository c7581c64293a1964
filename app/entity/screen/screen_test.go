package screen

import (
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/wasya-io/keycaster/app/boundary/writer"
	"github.com/wasya-io/keycaster/app/entity/core"
	"github.com/wasya-io/keycaster/app/entity/observable"
)

type fakeSource struct {
	shift, command, alt, ctrl *observable.Value[bool]
	text                      *observable.Value[string]
}

func newFakeSource() *fakeSource {
	return &fakeSource{
		shift:   observable.New(false),
		command: observable.New(false),
		alt:     observable.New(false),
		ctrl:    observable.New(false),
		text:    observable.New(""),
	}
}

func (f *fakeSource) Shift() observable.Reader[bool]   { return f.shift }
func (f *fakeSource) Command() observable.Reader[bool] { return f.command }
func (f *fakeSource) Alt() observable.Reader[bool]     { return f.alt }
func (f *fakeSource) Ctrl() observable.Reader[bool]    { return f.ctrl }
func (f *fakeSource) Text() observable.Reader[string]  { return f.text }

func fixedCols(n int) func() int {
	return func() int { return n }
}

func TestScreen_Render(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	src := newFakeSource()
	paused := observable.New(false)
	s := NewScreen(writer.NewMockScreenWriter(ctrl), src, paused, fixedCols(80), core.NewMockLogger(ctrl))

	src.shift.Set(true)
	src.text.Set("⇧A")

	got := s.Render()
	if !strings.HasPrefix(got, "\r\x1b[2K") {
		t.Errorf("line is not cleared first: %q", got)
	}
	if !strings.Contains(got, "\x1b[7m⇧\x1b[0m") {
		t.Errorf("active shift is not reversed: %q", got)
	}
	if !strings.Contains(got, "\x1b[2m⌘\x1b[0m") {
		t.Errorf("inactive command is not dimmed: %q", got)
	}
	if !strings.HasSuffix(got, "⇧A") {
		t.Errorf("trace missing: %q", got)
	}
}

func TestScreen_RenderPaused(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	src := newFakeSource()
	src.text.Set("abc")
	paused := observable.New(true)
	s := NewScreen(writer.NewMockScreenWriter(ctrl), src, paused, fixedCols(80), core.NewMockLogger(ctrl))

	if got := s.Render(); got != "\r\x1b[2K" {
		t.Errorf("paused screen should only clear the line: %q", got)
	}
}

func TestScreen_StartRedrawsOnChange(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	src := newFakeSource()
	paused := observable.New(false)
	w := writer.NewMockScreenWriter(ctrl)
	s := NewScreen(w, src, paused, fixedCols(80), core.NewMockLogger(ctrl))

	gomock.InOrder(
		w.EXPECT().Write("\x1b[?25l").Return(nil),
		w.EXPECT().Write(gomock.Any()).Return(nil), // 初回描画
		w.EXPECT().Write(gomock.Any()).Return(nil), // テキスト変更
		w.EXPECT().Write(gomock.Any()).Return(nil), // 一時停止
		w.EXPECT().Write("\r\x1b[2K\x1b[?25h").Return(nil),
	)

	if err := s.Start(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	src.text.Set("a")
	paused.Set(true)
	if err := s.Stop(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// 停止後の変更では描画しない
	src.text.Set("b")
}

func TestFitTail(t *testing.T) {
	tests := []struct {
		name string
		in   string
		cols int
		want string
	}{
		{"fits", "abc", 5, "abc"},
		{"exact", "abc", 3, "abc"},
		{"truncated", "abcdef", 4, "…def"},
		{"wide runes", "あいう", 5, "…いう"},
		{"wide rune does not split", "あいう", 4, "…う"},
		{"one column", "abc", 1, "c"},
		{"no room", "abc", 0, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FitTail(tt.in, tt.cols); got != tt.want {
				t.Errorf("FitTail(%q, %d) = %q, want %q", tt.in, tt.cols, got, tt.want)
			}
		})
	}
}
