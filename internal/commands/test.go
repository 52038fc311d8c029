package commands

// Test is the liveness check command.
func Test() Response {
	return Success("Test", "Hello world!")
}
