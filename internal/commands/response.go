// Package commands implements the bot's command handlers on top of the
// circuit front end, the emulator, and the lexicon store.
package commands

// Response is the outcome of one command, rendered to the user by the
// front end (title plus body, colored by success).
type Response struct {
	Success bool
	Title   string
	Text    string
}

// Success creates a successful response.
func Success(title, text string) Response {
	return Response{Success: true, Title: title, Text: text}
}

// Failure creates a failed response.
func Failure(title, text string) Response {
	return Response{Success: false, Title: title, Text: text}
}

// InvalidCommand is the response for malformed command invocations.
func InvalidCommand() Response {
	return Failure("Internal error", "The command is invalid.")
}

// Unimplemented is the response for unknown commands.
func Unimplemented() Response {
	return Failure("Internal error", "The command is not implemented.")
}
