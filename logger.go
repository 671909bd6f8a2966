package skypricebot

import (
	"fmt"
	"log"
	"os"
)

type Logger struct {
	InfoLog  *PrintLogger
	ErrorLog *PrintLogger
}

// PrintLogger writes the message and hands it back, so the same string can be
// embedded into an error value.
type PrintLogger struct {
	logger *log.Logger
}

func (p *PrintLogger) Sprint(args ...interface{}) string {
	message := fmt.Sprint(args...)
	p.logger.Println(message)
	return message
}

func (p *PrintLogger) Sprintf(format string, args ...interface{}) string {
	message := fmt.Sprintf(format, args...)
	p.logger.Println(message)
	return message
}

func NewLogger(name string) *Logger {
	return &Logger{
		InfoLog:  &PrintLogger{logger: log.New(os.Stdout, name+" INFO >>> ", log.LstdFlags)},
		ErrorLog: &PrintLogger{logger: log.New(os.Stderr, name+" ERROR >>> ", log.LstdFlags)},
	}
}
