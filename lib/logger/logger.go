package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"sync"
)

type Level int

const (
	DEBUG Level = iota
	INFO
	WARN
	ERROR
	FATAL
)

var levelFlags = []string{"DEBUG", "INFO", "WARN", "ERROR", "FATAL"}

var (
	mu       sync.Mutex
	logger   = log.New(os.Stdout, "", log.LstdFlags)
	minLevel = INFO
)

// ParseLevel 将名称转换为日志级别，无法识别时返回 INFO
func ParseLevel(name string) (Level, bool) {
	for i, flag := range levelFlags {
		if strings.EqualFold(flag, name) {
			return Level(i), true
		}
	}
	return INFO, false
}

func (l Level) String() string {
	if l < DEBUG || l > FATAL {
		return fmt.Sprintf("Level(%d)", int(l))
	}
	return levelFlags[l]
}

func SetLevel(l Level) {
	mu.Lock()
	defer mu.Unlock()
	minLevel = l
}

func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	logger.SetOutput(w)
}

func output(l Level, msg string) {
	mu.Lock()
	defer mu.Unlock()
	if l < minLevel {
		return
	}
	logger.SetPrefix("[" + levelFlags[l] + "] ")
	_ = logger.Output(3, msg)
}

func Debug(v ...any) {
	output(DEBUG, fmt.Sprintln(v...))
}

func Debugf(format string, v ...any) {
	output(DEBUG, fmt.Sprintf(format, v...))
}

func Info(v ...any) {
	output(INFO, fmt.Sprintln(v...))
}

func Infof(format string, v ...any) {
	output(INFO, fmt.Sprintf(format, v...))
}

func Warn(v ...any) {
	output(WARN, fmt.Sprintln(v...))
}

func Warnf(format string, v ...any) {
	output(WARN, fmt.Sprintf(format, v...))
}

func Error(v ...any) {
	output(ERROR, fmt.Sprintln(v...))
}

func Errorf(format string, v ...any) {
	output(ERROR, fmt.Sprintf(format, v...))
}

func Fatal(v ...any) {
	output(FATAL, fmt.Sprintln(v...))
	os.Exit(1)
}
