package logger

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	InfoLogger  = logrus.New()
	ErrorLogger = logrus.New()
)

// InitLoggers wires both loggers to stdout plus rotating files under logs/.
// Safe to call more than once; the last call wins.
func InitLoggers() {
	infoRotator := &lumberjack.Logger{
		Filename:   "logs/app.log",
		MaxSize:    20, // MB
		MaxBackups: 5,
		MaxAge:     28, // days
		Compress:   true,
	}
	errorRotator := &lumberjack.Logger{
		Filename:   "logs/error.log",
		MaxSize:    20,
		MaxBackups: 5,
		MaxAge:     28,
		Compress:   true,
	}

	InfoLogger.SetOutput(io.MultiWriter(os.Stdout, infoRotator))
	InfoLogger.SetLevel(logrus.InfoLevel)
	InfoLogger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	ErrorLogger.SetOutput(io.MultiWriter(os.Stderr, errorRotator))
	ErrorLogger.SetLevel(logrus.ErrorLevel)
	ErrorLogger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
}
