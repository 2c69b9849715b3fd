package engine

import (
	"github.com/cmdgrid/cmdgrid/command"
	"github.com/cmdgrid/cmdgrid/result"
)

// Status distinguishes the three successful ways a parse can end.
type Status int

const (
	// StatusParsed: the whole input was consumed into a result tree.
	StatusParsed Status = iota
	// StatusHelp: --help was seen; the parse stopped intentionally.
	StatusHelp
	// StatusVersion: --version was seen; the parse stopped intentionally.
	StatusVersion
)

// Outcome is the non-error return of Parse. Exactly one shape applies:
// Result is set for StatusParsed, Origin for StatusHelp and StatusVersion.
// Modeling help/version as outcome variants rather than errors keeps the
// propagation path through the recursion an ordinary early return.
type Outcome struct {
	Status Status

	// Result is the root of the result tree when Status is StatusParsed.
	Result *result.Node

	// Origin is the node whose option phase resolved --help or --version,
	// so the caller can render that subtree's usage.
	Origin *command.Command
}
