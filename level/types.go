package level

import (
	"errors"
	"io"
	"log"
)

// ErrConfig wraps configuration read and decode failures.
var ErrConfig = errors.New("level: invalid configuration")

// Option configures Generate and Run.
type Option func(*options)

type options struct {
	logger *log.Logger
	level  int
}

func defaultOptions() options {
	return options{logger: log.Default(), level: 1}
}

// WithLogger routes warnings to l. A nil logger discards them.
func WithLogger(l *log.Logger) Option {
	return func(o *options) {
		if l == nil {
			l = log.New(io.Discard, "", 0)
		}
		o.logger = l
	}
}

// WithLevel sets the level index recorded in the snapshot. Levels start
// at 1.
func WithLevel(n int) Option {
	return func(o *options) {
		o.level = max(n, 1)
	}
}
