package utilities

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"sync"

	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	infoLog  *log.Logger
	warnLog  *log.Logger
	errorLog *log.Logger
	debugLog *log.Logger
	logMutex sync.Mutex
	logOnce  sync.Once
)

// SetupLogging initializes the leveled loggers, writing to stdout and a
// size-rotated file under logDir.
func SetupLogging(logDir string) {
	logOnce.Do(func() {
		if err := os.MkdirAll(logDir, 0755); err != nil {
			log.Fatalf("Failed to create log directory: %v", err)
		}

		rotating := &lumberjack.Logger{
			Filename:   filepath.Join(logDir, "skillpath.log"),
			MaxSize:    25, // MB
			MaxBackups: 5,
			MaxAge:     28, // days
			Compress:   true,
		}

		outWriter := io.MultiWriter(os.Stdout, rotating)
		errWriter := io.MultiWriter(os.Stderr, rotating)

		infoLog = log.New(outWriter, "INFO: ", log.Ldate|log.Ltime)
		warnLog = log.New(outWriter, "WARNING: ", log.Ldate|log.Ltime)
		errorLog = log.New(errWriter, "ERROR: ", log.Ldate|log.Ltime)
		debugLog = log.New(outWriter, "DEBUG: ", log.Ldate|log.Ltime)

		// Override Go's default log
		log.SetOutput(outWriter)
	})
}

func getCallerInfo() string {
	pc, _, _, ok := runtime.Caller(3)
	if !ok {
		return "unknown"
	}
	return runtime.FuncForPC(pc).Name()
}

func logAt(logger *log.Logger, format string, v ...interface{}) {
	if logger == nil {
		// Logging not initialized (tests); use the default logger.
		log.Printf(format, v...)
		return
	}
	logMutex.Lock()
	defer logMutex.Unlock()

	message := fmt.Sprintf(format, v...)
	logger.Printf("[%s] %s", getCallerInfo(), message)
}

func Info(format string, v ...interface{}) {
	logAt(infoLog, format, v...)
}

func Warn(format string, v ...interface{}) {
	logAt(warnLog, format, v...)
}

func Error(format string, v ...interface{}) {
	logAt(errorLog, format, v...)
}

func Debug(format string, v ...interface{}) {
	logAt(debugLog, format, v...)
}
