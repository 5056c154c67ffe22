package network

import "time"

// Config holds scoreboard configuration
type Config struct {
	// Path of the local record file; empty disables the board
	Path string

	// SubmitTimeout bounds one background submission
	SubmitTimeout time.Duration

	// ResultQueueSize buffers completed submissions until the frontend polls them
	ResultQueueSize int

	// TopCount is the number of rows shown on the game over screen
	TopCount int
}

// DefaultConfig returns defaults for a board stored at path
func DefaultConfig(path string) *Config {
	return &Config{
		Path:            path,
		SubmitTimeout:   3 * time.Second,
		ResultQueueSize: 8,
		TopCount:        5,
	}
}
