package basis

import "fmt"

//This error predates the "wrapping" error system of Go (i.e. the "%w" directive and the errors package). We should avoid
//using the Decorate method and/or make it use the "%w" directive internally.

// Error is the interface for errors that all packages in this library implement. The Decorate method allows to add and retrieve info from the
// error, without changing it's type or wrapping it around something else.
type Error interface {
	Error() string
	Decorate(string) []string //This is the new thing for errors. It allows you to add information when you pass it up. Each call also returns the "decoration" slice of strins resulting from the current call. If passed an empty string, it should just return the current value, not add the empty string to the slice.
	//The decorate slice should contain a list of functions in the calling stack, plus, for each function any relevant information, or nothing. If information is to be added to an element of the slice, it should be in this format: "FunctionName: Extra info"
}

// CodecError is the interface for errors raised while parsing or writing a
// specific on-disk format. Block returns the element/name identifier of the
// offending entry, or an empty string if none was recovered before failing.
type CodecError interface {
	Error
	Block() string
	Format() string
}

// ValidationError is returned when a record is structurally well-formed but
// its declared counts and its actual data disagree (say, a triangular
// projector-coefficient slice of the wrong length).
type ValidationError struct {
	message string
	block   string
	deco    []string
}

func (err *ValidationError) Error() string {
	if err.block == "" {
		return fmt.Sprintf("gobasis: invalid record: %s", err.message)
	}
	return fmt.Sprintf("gobasis: invalid record %s: %s", err.block, err.message)
}

// Decorate adds new information to the error
func (err *ValidationError) Decorate(deco string) []string {
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

// Block returns the element/name identifier of the record that failed validation.
func (err *ValidationError) Block() string { return err.block }

func newValidationError(block, format string, a ...interface{}) *ValidationError {
	return &ValidationError{message: fmt.Sprintf(format, a...), block: block}
}
