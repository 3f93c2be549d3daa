package logger

import (
	"io"
	"log"
	"os"
)

// Logger is a per-service leveled logger. Each service constructs its own at
// startup and passes it to handlers and services, so tests can swap the sink.
type Logger struct {
	HTTP    *log.Logger
	Info    *log.Logger
	Warning *log.Logger
	Debug   *log.Logger
	Error   *log.Logger
}

func New(service string) *Logger {
	return NewWithWriter(service, os.Stdout)
}

func NewWithWriter(service string, w io.Writer) *Logger {
	return &Logger{
		HTTP:    log.New(w, "[HTTP]\t"+service+"\t", log.Ldate|log.Ltime),
		Info:    log.New(w, "[INFO]\t"+service+"\t", log.Ldate|log.Ltime),
		Warning: log.New(w, "[WARNING]\t"+service+"\t", log.Ldate|log.Ltime|log.Lshortfile),
		Debug:   log.New(w, "[DEBUG]\t"+service+"\t", log.Ldate|log.Ltime|log.Lshortfile),
		Error:   log.New(w, "[ERROR]\t"+service+"\t", log.Ldate|log.Ltime|log.Lshortfile),
	}
}
