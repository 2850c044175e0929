package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
)

type Logger struct {
	infoLogger  *log.Logger
	warnLogger  *log.Logger
	errorLogger *log.Logger
	debugLogger *log.Logger
	debug       bool
	file        *os.File
}

const flags = log.Ldate | log.Ltime

// New creates a logger writing to w. Debug lines are dropped unless debug
// is set.
func New(w io.Writer, debug bool) *Logger {
	return &Logger{
		infoLogger:  log.New(w, "INFO:  ", flags),
		warnLogger:  log.New(w, "WARN:  ", flags),
		errorLogger: log.New(w, "ERROR: ", flags),
		debugLogger: log.New(w, "DEBUG: ", flags),
		debug:       debug,
	}
}

// NewFile appends to the log file at path, creating its directory when
// needed. Extra writers receive the same lines.
func NewFile(path string, debug bool, extra ...io.Writer) (*Logger, error) {
	logDir := filepath.Dir(path)
	if err := os.MkdirAll(logDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %v", err)
	}

	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %v", err)
	}

	writers := append([]io.Writer{file}, extra...)
	l := New(io.MultiWriter(writers...), debug)
	l.file = file
	return l, nil
}

func Discard() *Logger {
	return New(io.Discard, false)
}

func (l *Logger) Close() error {
	if l.file != nil {
		return l.file.Close()
	}
	return nil
}

func (l *Logger) Info(v ...any) {
	l.infoLogger.Println(v...)
}

func (l *Logger) Infof(format string, v ...any) {
	l.infoLogger.Printf(format, v...)
}

func (l *Logger) Warn(v ...any) {
	l.warnLogger.Println(v...)
}

func (l *Logger) Warnf(format string, v ...any) {
	l.warnLogger.Printf(format, v...)
}

func (l *Logger) Error(v ...any) {
	l.errorLogger.Println(v...)
}

func (l *Logger) Errorf(format string, v ...any) {
	l.errorLogger.Printf(format, v...)
}

func (l *Logger) Debug(v ...any) {
	if l.debug {
		l.debugLogger.Println(v...)
	}
}

func (l *Logger) Debugf(format string, v ...any) {
	if l.debug {
		l.debugLogger.Printf(format, v...)
	}
}
