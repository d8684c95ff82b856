package gocrczerolog

import (
	"bytes"
	"strings"
	"testing"

	"github.com/gocrc/gocrc"
	"github.com/rs/zerolog"
)

func TestGocrcZeroLog(t *testing.T) {
	b := &bytes.Buffer{}
	zl := zerolog.New(b)
	l := NewZerologLogger(zl)

	e, err := gocrc.New(gocrc.WithName("crc-32-iso-hdlc"), gocrc.WithLogger(l), gocrc.WithLogLevel(gocrc.LogLevelDebug))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	e.Update([]byte("123456789"))

	out := b.String()
	if !strings.Contains(out, `"logger":"gocrc"`) {
		t.Fatalf("log output missing logger field: %s", out)
	}
	if !strings.Contains(out, `"width":32`) {
		t.Fatalf("log output missing width field: %s", out)
	}
}
