package main

// Exit codes
const (
	ExitSuccess = 0 // Normal exit, including automatic mode
	ExitError   = 1 // Startup failure (invalid config file, logger setup)
)
