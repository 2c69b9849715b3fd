package command

import "fmt"

// BuildErrorKind identifies which structural invariant a builder call broke.
type BuildErrorKind int

const (
	// ErrOptionAfterPositional: options must be fully declared before any
	// positional is added to the same node.
	ErrOptionAfterPositional BuildErrorKind = iota
	// ErrOptionAfterSubcommand: options must be fully declared before any
	// subcommand is added to the same node.
	ErrOptionAfterSubcommand
	// ErrPositionalWithSubcommands: a node may declare either positionals or
	// subcommands, never both.
	ErrPositionalWithSubcommands
	// ErrSubcommandWithPositionals is the same exclusivity broken from the
	// other direction.
	ErrSubcommandWithPositionals
	// ErrVariadicNotLast: only the last positional of a node may be variadic.
	ErrVariadicNotLast
	// ErrDefaultOnMultiple: a repeatable option cannot carry a default value.
	ErrDefaultOnMultiple
	// ErrDuplicateName: the name is already declared on this node.
	ErrDuplicateName
	// ErrDuplicateShort: the short alias is already bound on this node.
	ErrDuplicateShort
	// ErrInvalidName: option names must be spelled "--name"; positional and
	// command names must not start with a dash.
	ErrInvalidName
)

// BuildError reports a construction-time invariant violation. Construction
// fails fast: the offending call returns the error and leaves the node
// unchanged.
type BuildError struct {
	Kind    BuildErrorKind
	Command string // full path of the node being built, e.g. "foo cat"
	Subject string // the offending name or alias
}

func (e *BuildError) Error() string {
	switch e.Kind {
	case ErrOptionAfterPositional:
		return fmt.Sprintf("command %q: option %q declared after a positional", e.Command, e.Subject)
	case ErrOptionAfterSubcommand:
		return fmt.Sprintf("command %q: option %q declared after a subcommand", e.Command, e.Subject)
	case ErrPositionalWithSubcommands:
		return fmt.Sprintf("command %q: positional %q declared on a node with subcommands", e.Command, e.Subject)
	case ErrSubcommandWithPositionals:
		return fmt.Sprintf("command %q: subcommand %q declared on a node with positionals", e.Command, e.Subject)
	case ErrVariadicNotLast:
		return fmt.Sprintf("command %q: positional %q declared after a variadic positional", e.Command, e.Subject)
	case ErrDefaultOnMultiple:
		return fmt.Sprintf("command %q: repeatable option %q cannot have a default value", e.Command, e.Subject)
	case ErrDuplicateName:
		return fmt.Sprintf("command %q: name %q is already declared", e.Command, e.Subject)
	case ErrDuplicateShort:
		return fmt.Sprintf("command %q: short alias %q is already bound", e.Command, e.Subject)
	case ErrInvalidName:
		return fmt.Sprintf("command %q: invalid name %q", e.Command, e.Subject)
	default:
		return fmt.Sprintf("command %q: invalid declaration of %q", e.Command, e.Subject)
	}
}
