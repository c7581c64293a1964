package screen

import (
	"strings"
)

type Builder struct {
	buffer strings.Builder
}

func NewBuilder() *Builder {
	return &Builder{
		buffer: strings.Builder{},
	}
}

func (b *Builder) Clear() {
	b.buffer.Reset()
}

func (b *Builder) Write(s string) {
	b.buffer.WriteString(s)
}

func (b *Builder) Build() string {
	return b.buffer.String()
}
