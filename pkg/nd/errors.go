package nd

import "github.com/pkg/errors"

var (
	// ErrUninitializedMachine is returned when operating on a nil or zero Machine, or on a zero Bool
	ErrUninitializedMachine = errors.New("machine is not initialized: create it with NewMachine first")
	// ErrNoSolutionAvailable is returned by Value when the machine holds no current assignment
	ErrNoSolutionAvailable = errors.New("no solution available: solve the machine after its last change")
	// ErrStaleHandle is returned when a handle created before a Reset is used
	ErrStaleHandle = errors.New("handle belongs to a machine state discarded by Reset")
	// ErrForeignHandle is returned when combining handles of different machines
	ErrForeignHandle = errors.New("handle belongs to another machine")
	// ErrWidthMismatch is returned when comparing bit vectors of different widths
	ErrWidthMismatch = errors.New("bit vectors have different widths")
)
