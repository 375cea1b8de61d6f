package gamess

import (
	"fmt"

	basis "github.com/rmera/gobasis"
)

//errDecorate asserts that the error implements basis.Error and decorates it
//with the caller's name before returning it.
func errDecorate(err error, caller string) error {
	err2 := err.(basis.Error)
	err2.Decorate(caller)
	return err2
}

// Error is the structure for GAMESS format errors. It fulfills basis.Error
// and basis.CodecError.
type Error struct {
	message string
	block   string
	line    int
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
	return fmt.Sprintf("gamess format error%s: %s", where, err.message)
}

// Decorate adds new information to the error
func (err Error) Decorate(deco string) []string {
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

// Block returns the element/name identifier of the block associated to the error
func (err Error) Block() string { return err.block }

// Format returns the format of the file (always "gamess") associated to the error
func (err Error) Format() string { return "gamess" }

const (
	WrongHeader   = "malformed header"
	WrongNumber   = "malformed number"
	WrongCounts   = "declared and actual counts disagree"
	UnknownFormat = "unknown format"
	PrematureEOF  = "premature end of input"
)
