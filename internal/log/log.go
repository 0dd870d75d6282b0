// Package log writes leveled lines through the standard logger.
package log

import (
	"fmt"
	"io"
	"log"
	"strings"
)

// Level orders messages by importance. A logger drops everything below its level.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
	LevelNone
)

var levelNames = [...]string{"DEBUG", "INFO", "WARN", "ERROR", "NONE"}

func (l Level) String() string {
	if l >= 0 && int(l) < len(levelNames) {
		return levelNames[l]
	}
	return fmt.Sprintf("Level(%d)", int(l))
}

// ParseLevel reads a level name such as "debug" or "WARN".
func ParseLevel(s string) (Level, error) {
	s = strings.TrimSpace(s)
	for i, name := range levelNames {
		if strings.EqualFold(s, name) {
			return Level(i), nil
		}
	}
	return LevelInfo, fmt.Errorf("unknown log level %q", s)
}

// Logger tags every line with its level.
type Logger struct {
	std *log.Logger
	min Level
}

// New logs to out with timestamps, dropping lines below min.
func New(out io.Writer, min Level) *Logger {
	return &Logger{std: log.New(out, "", log.LstdFlags), min: min}
}

// Enabled reports whether lines at level would be written.
func (l *Logger) Enabled(level Level) bool {
	return level >= l.min && level < LevelNone
}

func (l *Logger) logf(level Level, format string, v ...any) {
	if !l.Enabled(level) {
		return
	}
	l.std.Printf(level.String()+": "+format, v...)
}

func (l *Logger) Debugf(format string, v ...any) { l.logf(LevelDebug, format, v...) }
func (l *Logger) Infof(format string, v ...any)  { l.logf(LevelInfo, format, v...) }
func (l *Logger) Warnf(format string, v ...any)  { l.logf(LevelWarn, format, v...) }
func (l *Logger) Errorf(format string, v ...any) { l.logf(LevelError, format, v...) }
