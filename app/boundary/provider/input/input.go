package input

//go:generate mockgen -source=input.go -destination=mock_provider.go -package=input

import (
	"errors"
	"fmt"

	"github.com/wasya-io/keycaster/app/boundary/reader"
	"github.com/wasya-io/keycaster/app/entity/key"
	"github.com/wasya-io/keycaster/app/usecase/parser"
)

// Provider は入力イベントを1件ずつ供給する
// 入力の終端では io.EOF を返す
// 解釈できない入力は parser.MalformedEventError として返し、次の呼び出しで続きを読む
type Provider interface {
	Next() (key.KeyEvent, error)
	Close() error
}

type StandardInputProvider struct {
	reader reader.LineReader
	parser parser.InputParser
}

func NewStandardInputProvider(reader reader.LineReader, parser parser.InputParser) *StandardInputProvider {
	return &StandardInputProvider{
		reader: reader,
		parser: parser,
	}
}

func (p *StandardInputProvider) Next() (key.KeyEvent, error) {
	for {
		line, err := p.reader.ReadLine()
		if err != nil {
			return key.KeyEvent{}, err
		}
		evt, err := p.parser.Parse(line)
		if errors.Is(err, parser.ErrBlankLine) {
			continue
		}
		if err != nil {
			return key.KeyEvent{}, fmt.Errorf("input error: %w", err)
		}
		return evt, nil
	}
}

func (p *StandardInputProvider) Close() error {
	return p.reader.Close()
}
