package term

import (
	"os"

	"golang.org/x/sys/unix"
)

// 端末の桁数が取れない場合の既定値
const defaultCols = 80

// TerminalState は端末の元の状態を保持する構造体
type TerminalState struct {
	fd          int
	origTermios *unix.Termios
}

// DisableEcho は端末のエコーと行バッファリングを止める
// 描画中の行に打鍵が混ざらないようにするため
// 端末でない場合は何もしない状態を返す
func DisableEcho(f *os.File) (*TerminalState, error) {
	fd := int(f.Fd())
	state := &TerminalState{fd: fd}

	termios, err := unix.IoctlGetTermios(fd, unix.TCGETS)
	if err != nil {
		// 端末ではない
		return state, nil
	}
	orig := *termios
	state.origTermios = &orig

	termios.Lflag &^= unix.ECHO | unix.ECHONL | unix.ICANON
	termios.Cc[unix.VMIN] = 1
	termios.Cc[unix.VTIME] = 0

	if err := unix.IoctlSetTermios(fd, unix.TCSETS, termios); err != nil {
		return nil, err
	}
	return state, nil
}

// Restore は端末の設定を元の状態に戻す
func (term *TerminalState) Restore() error {
	if term == nil || term.origTermios == nil {
		return nil
	}
	if err := unix.IoctlSetTermios(term.fd, unix.TCSETS, term.origTermios); err != nil {
		return err
	}
	term.origTermios = nil
	return nil
}

// GetWinSize はウィンドウサイズを返す
func GetWinSize(f *os.File) (screenRows, screenCols int, err error) {
	ws, err := unix.IoctlGetWinsize(int(f.Fd()), unix.TIOCGWINSZ)
	if err != nil {
		return 0, 0, err
	}
	return int(ws.Row), int(ws.Col), nil
}

// Cols は端末の桁数を返す
// 取得できない場合や0の場合は既定値を返す
func Cols(f *os.File) int {
	_, cols, err := GetWinSize(f)
	if err != nil || cols <= 0 {
		return defaultCols
	}
	return cols
}
