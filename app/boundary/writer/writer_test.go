package writer

import (
	"bytes"
	"testing"
)

func TestStandardScreenWriter_Write(t *testing.T) {
	var buf bytes.Buffer
	w := NewScreenWriter(&buf)

	if err := w.Write("\r⇧ a"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if buf.String() != "\r⇧ a" {
		t.Errorf("unexpected output: %q", buf.String())
	}
}
