package cp2k

import (
	"fmt"

	basis "github.com/rmera/gobasis"
)

//errDecorate asserts that the error implements basis.Error and decorates it
//with the caller's name before returning it. Calling it on any other error
//is a bug and will panic.
func errDecorate(err error, caller string) error {
	err2 := err.(basis.Error)
	err2.Decorate(caller)
	return err2
}

// Error is the structure for CP2K format errors. It fulfills basis.Error
// and basis.CodecError.
type Error struct {
	message string
	block   string //element/name of the offending block, when known
	line    int    //physical line in the input, 0 if not applicable
	deco    []string
}

func (err Error) Error() string {
	where := ""
	if err.block != "" {
		where = fmt.Sprintf(" in block %q", err.block)
	}
	if err.line > 0 {
		where += fmt.Sprintf(" (line %d)", err.line)
	}
	return fmt.Sprintf("cp2k format error%s: %s", where, err.message)
}

// Decorate adds new information to the error
func (err Error) Decorate(deco string) []string {
	//Even though this method does not use a pointer as a receiver, and tries to alter the receiver,
	//it should work, since err.deco is a slice, and hence a pointer itself.
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

// Block returns the element/name identifier of the block associated to the error
func (err Error) Block() string { return err.block }

// Format returns the format of the file (always "cp2k") associated to the error
func (err Error) Format() string { return "cp2k" }

const (
	WrongHeader   = "malformed block header"
	WrongNumber   = "malformed number"
	WrongCounts   = "declared and actual counts disagree"
	UnknownFormat = "unknown format"
	PrematureEOF  = "premature end of block"
	Unsupported   = "unsupported block variant"
)
