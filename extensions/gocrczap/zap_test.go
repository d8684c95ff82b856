package gocrczap

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/gocrc/gocrc"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func newCustomLogger(pipeTo io.Writer) zapcore.Core {
	cfg := zap.NewProductionEncoderConfig()
	return zapcore.NewCore(
		zapcore.NewJSONEncoder(cfg),
		zapcore.AddSync(pipeTo),
		zapcore.DebugLevel,
	)
}

func TestGocrcZapLog(t *testing.T) {
	b := &bytes.Buffer{}
	zapLogger := zap.New(newCustomLogger(b))
	l := NewZapLogger(zapLogger, Options{LogLevel: zapcore.DebugLevel})

	e, err := gocrc.New(gocrc.WithName("crc-32-iso-hdlc"), gocrc.WithLogger(l), gocrc.WithLogLevel(gocrc.LogLevelDebug))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	e.Update([]byte("123456789"))
	_ = zapLogger.Sync()

	out := b.String()
	if !strings.Contains(out, `"logger":"gocrc"`) {
		t.Fatalf("log output missing logger name: %s", out)
	}
	if !strings.Contains(out, `"width":32`) {
		t.Fatalf("log output missing width field: %s", out)
	}
}
