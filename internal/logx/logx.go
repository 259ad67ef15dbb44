// Package logx is a small line-oriented log sink. Instances are owned by
// whoever constructs them; there is no package-level logger.
package logx

import (
	"fmt"
	"io"
	"sync"
	"time"
)

// DefaultErrorCap is the number of error reports accepted per Logger lifetime.
// Reports past the cap are swallowed so a persistent failure cannot flood the
// sink.
const DefaultErrorCap = 10

type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

type Logger struct {
	mu       sync.Mutex
	w        io.Writer
	minLevel Level
	errCap   int
	errCount int
	now      func() time.Time
}

func New(w io.Writer) *Logger {
	return &Logger{w: w, minLevel: LevelInfo, errCap: DefaultErrorCap, now: time.Now}
}

func (l *Logger) SetMinLevel(level Level) {
	l.mu.Lock()
	l.minLevel = level
	l.mu.Unlock()
}

func (l *Logger) Debugf(format string, args ...any) { l.emit(LevelDebug, format, args...) }
func (l *Logger) Infof(format string, args ...any)  { l.emit(LevelInfo, format, args...) }
func (l *Logger) Warnf(format string, args ...any)  { l.emit(LevelWarn, format, args...) }

// Errorf reports an error line. Once the cap is reached a final notice is
// written and further error reports become no-ops; the counter still advances
// so ErrorCount reflects how much was suppressed.
func (l *Logger) Errorf(format string, args ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.errCount++
	if l.errCount > l.errCap {
		return
	}
	l.write(LevelError, format, args...)
	if l.errCount == l.errCap {
		l.write(LevelWarn, "error cap reached (%d); further errors suppressed", l.errCap)
	}
}

// ErrorCount returns the number of errors reported so far, including
// suppressed ones.
func (l *Logger) ErrorCount() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.errCount
}

func (l *Logger) emit(level Level, format string, args ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if level < l.minLevel {
		return
	}
	l.write(level, format, args...)
}

func (l *Logger) write(level Level, format string, args ...any) {
	if l.w == nil {
		return
	}
	ts := l.now().Format("2006-01-02T15:04:05")
	fmt.Fprintf(l.w, "%s [%s] %s\n", ts, level, fmt.Sprintf(format, args...))
}
