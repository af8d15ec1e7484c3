package domain

// RunResult is the uniform envelope every clip run resolves to. Expected
// domain failures are data, not errors: the engine never lets a known
// failure escape as anything but {Error:true, Message}.
type RunResult struct {
	Error   bool   `json:"error"`
	Message string `json:"message"`
}

// Failure builds an error envelope.
func Failure(message string) RunResult {
	return RunResult{Error: true, Message: message}
}

// Success builds a success envelope.
func Success(message string) RunResult {
	return RunResult{Error: false, Message: message}
}
