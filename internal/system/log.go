package system

import "log/slog"

var logger = slog.New(slog.DiscardHandler)

// SetLogger sets where fallback decisions are traced. nil restores the
// silent default.
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(slog.DiscardHandler)
	}
	logger = l
}

func fallback(field string, err error, value any) {
	logger.Debug("using fallback", slog.String("field", field), slog.Any("value", value), slog.Any("err", err))
}
