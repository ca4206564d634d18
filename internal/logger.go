package internal

import (
	"os"
	"time"

	"hotelpay/entity"
	"hotelpay/services"

	"github.com/rs/zerolog"
)

// Logger is the per-module log handler. Records at Info level and above are
// mirrored to the payment_log collection when a database is attached, so
// relay-side events can be correlated with gateway-side transaction logs.
type Logger struct {
	module string
	log    zerolog.Logger
	db     services.Database
}

// NewLogger creates a log handler for the named module. With debug enabled
// it writes human-readable console output and passes Debug records through;
// otherwise it writes JSON and drops Debug.
func NewLogger(module string, debug bool, db services.Database) services.LogHandler {
	level := zerolog.InfoLevel
	var out zerolog.Logger
	if debug {
		level = zerolog.DebugLevel
		writer := zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: "2006-01-02 15:04:05"}
		out = zerolog.New(writer)
	} else {
		out = zerolog.New(os.Stdout)
	}
	return &Logger{
		module: module,
		log:    out.Level(level).With().Timestamp().Str("module", module).Logger(),
		db:     db,
	}
}

func (l *Logger) Debug(message string) {
	l.log.Debug().Msg(message)
}

func (l *Logger) Info(message string) {
	l.log.Info().Msg(message)
	l.mirror("info", message, nil)
}

func (l *Logger) Warn(message string) {
	l.log.Warn().Msg(message)
	l.mirror("warn", message, nil)
}

func (l *Logger) Error(message string, err error) {
	l.log.Error().Err(err).Msg(message)
	l.mirror("error", message, err)
}

func (l *Logger) mirror(level, message string, err error) {
	if l.db == nil {
		return
	}
	record := &entity.LogMessage{
		Time:   time.Now(),
		Module: l.module,
		Level:  level,
		Text:   message,
	}
	if err != nil {
		record.ErrorMsg = err.Error()
	}
	// best effort; a failed mirror write must not affect request handling
	_ = l.db.WriteLogMessage(record)
}
