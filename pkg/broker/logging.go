package broker

import (
	"fmt"
	"log/slog"
)

// debugLogger receives the writer's routine chatter.
type debugLogger struct {
	l *slog.Logger
}

func (l *debugLogger) Printf(format string, v ...any) {
	l.l.Debug(fmt.Sprintf(format, v...))
}

type errorLogger struct {
	l *slog.Logger
}

func (l *errorLogger) Printf(format string, v ...any) {
	l.l.Error(fmt.Sprintf(format, v...))
}
