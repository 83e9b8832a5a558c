package shell

// HandlerResult represents the outcome of a command handler execution
// without coupling the handler to observability.
type HandlerResult struct {
	// Rejected is true when a lending rule refused the command. The handler also returns the core error.
	Rejected bool

	// JournaledEvents is the number of events the command appended to the journal,
	// including the failure event of a rejected command.
	JournaledEvents int
}

// NewSuccessResult creates a HandlerResult for a command the library accepted.
func NewSuccessResult(journaledEvents int) HandlerResult {
	return HandlerResult{JournaledEvents: journaledEvents}
}

// NewRejectedResult creates a HandlerResult for a command a lending rule refused.
func NewRejectedResult(journaledEvents int) HandlerResult {
	return HandlerResult{Rejected: true, JournaledEvents: journaledEvents}
}
