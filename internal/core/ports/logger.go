package ports

// Logger defines the interface for logging.
//
//go:generate mockgen -source=logger.go -destination=mocks/mock_logger.go -package=mocks
type Logger interface {
	// Info logs an informational message.
	Info(msg string)
	// Warn logs a warning. Degraded but non-fatal conditions, such as a failed cache write, go here.
	Warn(msg string)
	// Error logs an error with its full cause chain.
	Error(err error)
}
