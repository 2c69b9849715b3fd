package engine

import "fmt"

// ErrorKind identifies the parse failure class.
type ErrorKind int

const (
	// UnknownOption: an option token resolved against no declared option.
	UnknownOption ErrorKind = iota
	// UnknownSubcommand: the dispatch token matched no child command name.
	UnknownSubcommand
	// MissingPositional: input ran out before a declared positional was
	// satisfied.
	MissingPositional
	// MissingValue: a value-taking option was the last token of the input.
	MissingValue
	// AlreadyPresent: a single-occurrence option was given twice.
	AlreadyPresent
)

// Error is a parse-time failure. It aborts the entire Parse call; the
// engine never retries or recovers internally.
type Error struct {
	Kind    ErrorKind
	Command string // path of the node that was parsing, e.g. "foo cat"
	Subject string // the offending token or name
}

func (e *Error) Error() string {
	switch e.Kind {
	case UnknownOption:
		return fmt.Sprintf("%s: unknown option %q", e.Command, e.Subject)
	case UnknownSubcommand:
		return fmt.Sprintf("%s: unknown subcommand %q", e.Command, e.Subject)
	case MissingPositional:
		return fmt.Sprintf("%s: missing required argument %q", e.Command, e.Subject)
	case MissingValue:
		return fmt.Sprintf("%s: option %q requires a value", e.Command, e.Subject)
	case AlreadyPresent:
		return fmt.Sprintf("%s: option %q may only be given once", e.Command, e.Subject)
	default:
		return fmt.Sprintf("%s: cannot parse %q", e.Command, e.Subject)
	}
}
