package db

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// GormLogger forwards GORM diagnostics to zerolog. Queries are only
// logged in debug mode.
type GormLogger struct {
	log   zerolog.Logger
	debug bool
	level logger.LogLevel
}

func NewGormLogger(log zerolog.Logger, debug bool) *GormLogger {
	return &GormLogger{log: log.With().Str("component", "database").Logger(), debug: debug, level: logger.Info}
}

func (l *GormLogger) LogMode(level logger.LogLevel) logger.Interface {
	clone := *l
	clone.level = level
	return &clone
}

func (l *GormLogger) Info(_ context.Context, msg string, args ...interface{}) {
	if l.level >= logger.Info {
		l.log.Info().Msg("database info: " + fmt.Sprintf(msg, args...))
	}
}

func (l *GormLogger) Warn(_ context.Context, msg string, args ...interface{}) {
	if l.level >= logger.Warn {
		l.log.Warn().Msg("database warning: " + fmt.Sprintf(msg, args...))
	}
}

func (l *GormLogger) Error(_ context.Context, msg string, args ...interface{}) {
	if l.level >= logger.Error {
		l.log.Error().Msg("database error: " + fmt.Sprintf(msg, args...))
	}
}

func (l *GormLogger) Trace(_ context.Context, begin time.Time, fc func() (string, int64), err error) {
	if l.level <= logger.Silent {
		return
	}
	elapsed := time.Since(begin)

	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		query, _ := fc()
		l.log.Error().Err(err).Str("query", query).Dur("duration", elapsed).Msg("database error")
		if IsConnectionClosed(err) {
			l.log.Warn().Msg("database connection closed, the next query will reconnect")
		}
		return
	}

	if l.debug {
		query, rows := fc()
		l.log.Debug().Str("query", query).Int64("rows", rows).Dur("duration", elapsed).Msg("query")
	}
}

// IsConnectionClosed reports whether err means the connection went away.
func IsConnectionClosed(err error) bool {
	return err != nil && strings.Contains(strings.ToLower(err.Error()), "closed")
}
