package logger

import "errors"

// MultiLogger writes each message to every backend in order.
type MultiLogger []Logger

// Combine merges backends into one Logger. Nil and nop backends are dropped
// and nested MultiLoggers are flattened; zero backends give a NopLogger and a
// single backend is returned unwrapped.
func Combine(loggers ...Logger) Logger {
	var out MultiLogger
	for _, l := range loggers {
		switch v := l.(type) {
		case nil, *NopLogger:
		case MultiLogger:
			out = append(out, v...)
		default:
			out = append(out, l)
		}
	}
	switch len(out) {
	case 0:
		return NewNopLogger()
	case 1:
		return out[0]
	}
	return out
}

func (m MultiLogger) Info(format string, args ...interface{}) {
	for _, l := range m {
		l.Info(format, args...)
	}
}

func (m MultiLogger) Warning(format string, args ...interface{}) {
	for _, l := range m {
		l.Warning(format, args...)
	}
}

func (m MultiLogger) Error(format string, args ...interface{}) {
	for _, l := range m {
		l.Error(format, args...)
	}
}

// Close closes every backend, even after a failure, and joins the errors.
func (m MultiLogger) Close() error {
	var errs []error
	for _, l := range m {
		if err := l.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

var _ Logger = MultiLogger(nil)
