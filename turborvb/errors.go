package turborvb

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

// Error is the structure for TurboRVB writer errors. It fulfills
// basis.Error and basis.CodecError.
type Error struct {
	message string
	block   string
	deco    []string
}

func (err Error) Error() string {
	if err.block == "" {
		return fmt.Sprintf("turborvb format error: %s", err.message)
	}
	return fmt.Sprintf("turborvb format error in block %q: %s", err.block, err.message)
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

// Format returns the format of the file (always "turborvb") associated to the error
func (err Error) Format() string { return "turborvb" }

const (
	NoCutoff = "radial scan found no cutoff radius and no fallback was given"
)
