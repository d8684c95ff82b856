package gocrc

import (
	"bytes"
	"fmt"
	"log"
	"strconv"
	"strings"
	"sync"
)

// LogLevel is the minimum severity a logger will emit.
type LogLevel int

const (
	LogLevelDebug = LogLevel(5)
	LogLevelInfo  = LogLevel(4)
	LogLevelWarn  = LogLevel(3)
	LogLevelError = LogLevel(2)
	LogLevelNone  = LogLevel(0)
)

func (recv LogLevel) String() string {
	switch recv {
	case LogLevelDebug:
		return "debug"
	case LogLevelInfo:
		return "info"
	case LogLevelWarn:
		return "warn"
	case LogLevelError:
		return "error"
	case LogLevelNone:
		return "none"
	default:
		temp := [2]string{"invalid level ", strconv.Itoa(int(recv))}
		return strings.Join(temp[:], "")
	}
}

// LogField is a single structured key/value pair attached to a log line.
type LogField struct {
	Name  string
	Value interface{}
}

func NewLogField(name string, value interface{}) LogField {
	return LogField{Name: name, Value: value}
}

// AdvancedLogger is the structured logging interface an Engine logs
// through. New emits one Debug entry per Engine, carrying its catalogue
// name, width and method; catalogue lookups and table-cache builds are not
// logged.
// Extension packages (gocrczerolog, gocrczap) implement it on top of a
// real structured-logging library.
type AdvancedLogger interface {
	Error(msg string, fields ...LogField)
	Warning(msg string, fields ...LogField)
	Info(msg string, fields ...LogField)
	Debug(msg string, fields ...LogField)
}

type nopLogger struct{}

func (nopLogger) Error(_ string, _ ...LogField)   {}
func (nopLogger) Warning(_ string, _ ...LogField) {}
func (nopLogger) Info(_ string, _ ...LogField)    {}
func (nopLogger) Debug(_ string, _ ...LogField)   {}

// testLogger captures log output for assertions in tests.
type testLogger struct {
	capture bytes.Buffer
	mu      sync.Mutex
	level   LogLevel
}

func (l *testLogger) log(level LogLevel, msg string, fields ...LogField) {
	if level > l.level {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprint(&l.capture, msg)
	for _, f := range fields {
		fmt.Fprintf(&l.capture, " %s=%v", f.Name, f.Value)
	}
	l.capture.WriteByte('\n')
}

func (l *testLogger) Error(msg string, fields ...LogField)   { l.log(LogLevelError, msg, fields...) }
func (l *testLogger) Warning(msg string, fields ...LogField) { l.log(LogLevelWarn, msg, fields...) }
func (l *testLogger) Info(msg string, fields ...LogField)    { l.log(LogLevelInfo, msg, fields...) }
func (l *testLogger) Debug(msg string, fields ...LogField)   { l.log(LogLevelDebug, msg, fields...) }

func (l *testLogger) String() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.capture.String()
}

// defaultLogger backs onto the standard library logger, at LogLevelWarn.
type defaultLogger struct{}

func (defaultLogger) Error(msg string, fields ...LogField) {
	log.Print(formatLegacy(msg, fields))
}
func (defaultLogger) Warning(msg string, fields ...LogField) {
	log.Print(formatLegacy(msg, fields))
}
func (defaultLogger) Info(_ string, _ ...LogField)  {}
func (defaultLogger) Debug(_ string, _ ...LogField) {}

func formatLegacy(msg string, fields []LogField) string {
	if len(fields) == 0 {
		return msg
	}
	var b strings.Builder
	b.WriteString(msg)
	for _, f := range fields {
		fmt.Fprintf(&b, " %s=%v", f.Name, f.Value)
	}
	return b.String()
}

// internalLogger filters AdvancedLogger calls by a minimum level before
// they reach the configured backend.
type internalLogger struct {
	level  LogLevel
	target AdvancedLogger
}

func newInternalLogger(target AdvancedLogger, level LogLevel) internalLogger {
	if target == nil {
		target = nopLogger{}
	}
	return internalLogger{level: level, target: target}
}

func (l internalLogger) Error(msg string, fields ...LogField) {
	if LogLevelError <= l.level {
		l.target.Error(msg, fields...)
	}
}

func (l internalLogger) Warning(msg string, fields ...LogField) {
	if LogLevelWarn <= l.level {
		l.target.Warning(msg, fields...)
	}
}

func (l internalLogger) Info(msg string, fields ...LogField) {
	if LogLevelInfo <= l.level {
		l.target.Info(msg, fields...)
	}
}

func (l internalLogger) Debug(msg string, fields ...LogField) {
	if LogLevelDebug <= l.level {
		l.target.Debug(msg, fields...)
	}
}
