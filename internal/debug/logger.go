package debug

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"time"
)

type Level string

const (
	LevelDebug Level = "DEBUG"
	LevelInfo  Level = "INFO"
	LevelWarn  Level = "WARN"
	LevelError Level = "ERROR"
	LevelFatal Level = "FATAL"
)

type LogEntry struct {
	Time    string                 `json:"time"`
	Level   Level                  `json:"level"`
	Message string                 `json:"message"`
	File    string                 `json:"file"`
	Line    int                    `json:"line"`
	Fields  map[string]interface{} `json:"fields,omitempty"`
}

// Logger writes leveled entries with caller information to a debug log
// file under the user config dir. Disabled entirely when
// QUICKRUN_ENV=production; every call is then a no-op.
type Logger struct {
	mu      sync.Mutex
	file    *os.File
	enabled bool
	logPath string
}

var instance *Logger
var once sync.Once

func Init() *Logger {
	once.Do(func() {
		enabled := os.Getenv("QUICKRUN_ENV") != "production"

		logDir := configDir()
		os.MkdirAll(logDir, 0755)
		logPath := filepath.Join(logDir, "debug.log")

		var logFile *os.File
		if enabled {
			logFile, _ = os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
			if logFile != nil {
				fmt.Fprintf(logFile, "QuickRun debug session — %s (pid %d)\n\n",
					time.Now().Format("2006-01-02 15:04:05"), os.Getpid())
			}
		}

		instance = &Logger{
			enabled: enabled,
			file:    logFile,
			logPath: logPath,
		}
	})
	return instance
}

func Get() *Logger {
	if instance == nil {
		return Init()
	}
	return instance
}

func configDir() string {
	base, err := os.UserConfigDir()
	if err != nil {
		base = "."
	}
	return filepath.Join(base, "QuickRun")
}

func (l *Logger) Enabled() bool {
	return l.enabled
}

func (l *Logger) LogPath() string {
	return l.logPath
}

func (l *Logger) Close() {
	if l.file != nil {
		l.file.Close()
	}
}

func (l *Logger) log(level Level, msg string, fields map[string]interface{}, skip int) {
	if !l.enabled {
		return
	}

	_, file, line, ok := runtime.Caller(skip)
	if ok {
		parts := strings.Split(filepath.ToSlash(file), "/")
		if len(parts) > 3 {
			file = strings.Join(parts[len(parts)-3:], "/")
		}
	}

	entry := LogEntry{
		Time:    time.Now().Format("15:04:05.000"),
		Level:   level,
		Message: msg,
		File:    file,
		Line:    line,
		Fields:  fields,
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if l.file == nil {
		return
	}

	text := fmt.Sprintf("[%s] %-5s %s  (%s:%d)", entry.Time, entry.Level, entry.Message, entry.File, entry.Line)
	if len(fields) > 0 {
		fieldsJSON, _ := json.Marshal(fields)
		text += "  " + string(fieldsJSON)
	}
	l.file.WriteString(text + "\n")
	l.file.Sync() // flush immediately so crashes leave a complete trail
}

func (l *Logger) Debug(msg string, fields ...map[string]interface{}) {
	l.log(LevelDebug, msg, mergeFields(fields), 2)
}

func (l *Logger) Info(msg string, fields ...map[string]interface{}) {
	l.log(LevelInfo, msg, mergeFields(fields), 2)
}

func (l *Logger) Warn(msg string, fields ...map[string]interface{}) {
	l.log(LevelWarn, msg, mergeFields(fields), 2)
}

func (l *Logger) Error(msg string, fields ...map[string]interface{}) {
	l.log(LevelError, msg, mergeFields(fields), 2)
}

func (l *Logger) Fatal(msg string, fields ...map[string]interface{}) {
	l.log(LevelFatal, msg, mergeFields(fields), 2)
}

// RecoverPanic should be deferred at the top of main() and long-lived
// goroutines.
func (l *Logger) RecoverPanic(context string) {
	if r := recover(); r != nil {
		buf := make([]byte, 4096)
		n := runtime.Stack(buf, false)
		stackTrace := string(buf[:n])

		l.log(LevelFatal, fmt.Sprintf("PANIC in %s: %v", context, r), map[string]interface{}{
			"panic": fmt.Sprintf("%v", r),
			"stack": stackTrace,
		}, 3)
	}
}

func mergeFields(fields []map[string]interface{}) map[string]interface{} {
	if len(fields) == 0 {
		return nil
	}
	return fields[0]
}
