package logger

import (
	"bytes"
	"log"

	"github.com/gin-gonic/gin"
)

type forwardLevel int

const (
	forwardInfo forwardLevel = iota
	forwardWarn
	forwardError
)

// logForwarder implements io.Writer and feeds whole lines into our logger.
type logForwarder struct {
	l     Interface
	level forwardLevel
}

func (f logForwarder) Write(p []byte) (n int, err error) {
	line := string(bytes.TrimRight(p, "\r\n"))

	switch f.level {
	case forwardInfo:
		f.l.Info(line)
	case forwardWarn:
		f.l.Warn(line)
	case forwardError:
		f.l.Error(line)
	}

	return len(p), nil
}

// SetupStdLog routes the standard library log output through our JSON logger.
func SetupStdLog(l Interface) {
	log.SetFlags(0)
	log.SetOutput(logForwarder{l: l, level: forwardWarn})
}

// SetupGin routes Gin's logs through our JSON logger.
func SetupGin(l Interface) {
	gin.DefaultWriter = logForwarder{l: l, level: forwardInfo}
	gin.DefaultErrorWriter = logForwarder{l: l, level: forwardError}
}
