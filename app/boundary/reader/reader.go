package reader

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
)

type LineReader interface {
	ReadLine() ([]byte, error)
	Close() error
}

// StandardLineReader は io.Reader から改行区切りで1行ずつ読み取る
type StandardLineReader struct {
	reader *bufio.Reader
	closer io.Closer
}

func NewStandardLineReader(r io.Reader) *StandardLineReader {
	lr := &StandardLineReader{reader: bufio.NewReader(r)}
	if c, ok := r.(io.Closer); ok {
		lr.closer = c
	}
	return lr
}

// NewStdinLineReader は標準入力から読み取る
// 標準入力は閉じない
func NewStdinLineReader() *StandardLineReader {
	return &StandardLineReader{reader: bufio.NewReader(os.Stdin)}
}

// ReadLine は末尾の改行を除いた1行を返す
// 最終行に改行がない場合もその行を返し、次の呼び出しで io.EOF を返す
func (lr *StandardLineReader) ReadLine() ([]byte, error) {
	line, err := lr.reader.ReadBytes('\n')
	if err != nil {
		if err == io.EOF && len(line) > 0 {
			return bytes.TrimRight(line, "\r\n"), nil
		}
		if err == io.EOF {
			return nil, io.EOF
		}
		return nil, fmt.Errorf("read error: %w", err)
	}
	return bytes.TrimRight(line, "\r\n"), nil
}

func (lr *StandardLineReader) Close() error {
	if lr.closer == nil {
		return nil
	}
	return lr.closer.Close()
}
