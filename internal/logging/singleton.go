package logging

import "sync"

var (
	mu       sync.Mutex
	instance *Logger
)

// InitLogger initializes the process-wide logger.
// It should be called once at startup, before any GetLogger call.
func InitLogger(config *Config) error {
	if err := config.Validate(); err != nil {
		return err
	}

	logger, err := NewLogger(config)
	if err != nil {
		return err
	}

	mu.Lock()
	defer mu.Unlock()
	instance = logger
	return nil
}

// GetLogger returns the singleton logger instance. When InitLogger was
// never called (tests, early startup) it falls back to a stdout logger.
func GetLogger() *Logger {
	mu.Lock()
	defer mu.Unlock()

	if instance == nil {
		instance, _ = NewLogger(&Config{MaxSize: 1})
	}
	return instance
}
