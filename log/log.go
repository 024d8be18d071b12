// Package log is the logging facade of the module. It wraps a logrus logger
// with a compact line format and a level filter.
package log

import (
	"bytes"
	"fmt"
	"io"
	"maps"
	"os"
	"slices"
	"sync"
	"sync/atomic"

	"github.com/sirupsen/logrus"
)

var (
	logger = newLogger(os.Stdout)
	level  atomic.Int32

	unhandledMu sync.RWMutex
	unhandled   func(error)
)

func init() {
	level.Store(int32(INFO))
}

type lineFormatter struct{}

func (f *lineFormatter) Format(entry *logrus.Entry) ([]byte, error) {
	var b *bytes.Buffer
	if entry.Buffer != nil {
		b = entry.Buffer
	} else {
		b = &bytes.Buffer{}
	}

	b.WriteString(entry.Time.Format("2006/01/02 15:04:05"))
	b.WriteString(fmt.Sprintf(" |%.4s| ", entry.Level))
	b.WriteString(entry.Message)

	for _, k := range slices.Sorted(maps.Keys(entry.Data)) {
		b.WriteString(fmt.Sprintf(" %s=%v", k, entry.Data[k]))
	}

	b.WriteByte('\n')
	return b.Bytes(), nil
}

func newLogger(w io.Writer) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(w)
	l.SetLevel(logrus.DebugLevel)
	l.SetFormatter(&lineFormatter{})
	return l
}

func Debugln(format string, v ...any) {
	print(DEBUG, logrus.NewEntry(logger), format, v...)
}

func Infoln(format string, v ...any) {
	print(INFO, logrus.NewEntry(logger), format, v...)
}

func Warnln(format string, v ...any) {
	print(WARNING, logrus.NewEntry(logger), format, v...)
}

func Errorln(format string, v ...any) {
	print(ERROR, logrus.NewEntry(logger), format, v...)
}

// Entry returns a field-carrying logger that honours the package level.
func Entry(fields logrus.Fields) *Logger {
	return &Logger{entry: logger.WithFields(fields)}
}

// Logger is a structured logger bound to a set of fields.
type Logger struct {
	entry *logrus.Entry
}

// With returns a copy of l carrying the extra field.
func (l *Logger) With(key string, value any) *Logger {
	if l == nil {
		return Entry(logrus.Fields{key: value})
	}
	return &Logger{entry: l.entry.WithField(key, value)}
}

func (l *Logger) Debugln(format string, v ...any) {
	if l == nil {
		return
	}
	print(DEBUG, l.entry, format, v...)
}

func (l *Logger) Errorln(format string, v ...any) {
	if l == nil {
		return
	}
	print(ERROR, l.entry, format, v...)
}

func Level() LogLevel {
	return LogLevel(level.Load())
}

func SetLevel(newLevel LogLevel) {
	level.Store(int32(newLevel))
}

// SetOutput redirects every log line to w.
func SetOutput(w io.Writer) {
	logger.SetOutput(w)
}

// SetUnhandledHandler replaces the function that receives errors no observer
// handled. A nil handler restores the default, which logs them.
func SetUnhandledHandler(handler func(error)) {
	unhandledMu.Lock()
	defer unhandledMu.Unlock()
	unhandled = handler
}

// Unhandled reports an error notification that reached an observer without an
// error handler.
func Unhandled(err error) {
	unhandledMu.RLock()
	handler := unhandled
	unhandledMu.RUnlock()

	if handler != nil {
		handler(err)
		return
	}

	Errorln("unhandled error notification: %v", err)
}

func print(l LogLevel, entry *logrus.Entry, format string, v ...any) {
	if l < Level() {
		return
	}

	payload := fmt.Sprintf(format, v...)

	switch l {
	case INFO:
		entry.Infoln(payload)
	case WARNING:
		entry.Warnln(payload)
	case ERROR:
		entry.Errorln(payload)
	case DEBUG:
		entry.Debugln(payload)
	}
}
