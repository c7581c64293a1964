package writer

//go:generate mockgen -source=writer.go -destination=mock_writer.go -package=writer

import (
	"io"
	"os"
)

type ScreenWriter interface {
	Write(s string) error
}

type StandardScreenWriter struct {
	out io.Writer
}

func NewStandardScreenWriter() *StandardScreenWriter {
	return &StandardScreenWriter{out: os.Stdout}
}

// NewScreenWriter は任意の出力先に書き込む ScreenWriter を返す
func NewScreenWriter(out io.Writer) *StandardScreenWriter {
	return &StandardScreenWriter{out: out}
}

func (w *StandardScreenWriter) Write(s string) error {
	_, err := io.WriteString(w.out, s)
	return err
}
