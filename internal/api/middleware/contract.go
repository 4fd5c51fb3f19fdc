package middleware

import "time"

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Metrics приемник HTTP метрик
type Metrics interface {
	ObserveHTTP(method, route, status string, elapsed time.Duration)
}
