package common

import "errors"

var (
	ErrRecordNotFound = errors.New("record not found")
)

// Logger is the logging capability handed to services. *slog.Logger
// satisfies it.
type Logger interface {
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}
