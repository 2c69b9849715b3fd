package result

import (
	"errors"
	"fmt"

	"github.com/cmdgrid/cmdgrid/command"
)

var (
	// ErrNotDeclared is returned when an accessor is asked about a name the
	// underlying command node never declared.
	ErrNotDeclared = errors.New("argument not declared")
	// ErrWrongKind is returned when an accessor's shape does not match the
	// declared kind, e.g. ValueOf on a flag or on a repeatable option.
	ErrWrongKind = errors.New("wrong argument kind")
)

// Node is the parse output for one visited command node. Accessors take the
// name as declared: the canonical long spelling for options ("--verbose"),
// the bare name for positionals ("food").
type Node struct {
	cmd *command.Command

	counts  map[string]uint32
	singles map[string]*string
	multis  map[string][]string

	subName string
	sub     *Node
}

// NewNode initializes the result for one command node: flag counts at zero,
// single values at their declared default (or absent), sequences empty.
func NewNode(cmd *command.Command) *Node {
	n := &Node{
		cmd:     cmd,
		counts:  make(map[string]uint32),
		singles: make(map[string]*string),
		multis:  make(map[string][]string),
	}
	for _, opt := range cmd.Options() {
		switch opt.Kind() {
		case command.SingleFlag, command.MultiFlag:
			n.counts[opt.Name()] = 0
		case command.SingleValue:
			n.singles[opt.Name()] = opt.Default()
		case command.MultiValue:
			n.multis[opt.Name()] = nil
		}
	}
	for _, pos := range cmd.Positionals() {
		if pos.Multiple() {
			n.multis[pos.Name()] = nil
		} else {
			n.singles[pos.Name()] = nil
		}
	}
	return n
}

// Command returns the definition node this result was parsed against.
func (n *Node) Command() *command.Command { return n.cmd }

// Increment records one occurrence of a flag. Engine use only.
func (n *Node) Increment(name string) {
	n.counts[name]++
}

// SetValue records the value of a single-value option or positional,
// replacing any seeded default. Engine use only.
func (n *Node) SetValue(name, value string) {
	n.singles[name] = &value
}

// Append adds one value to a multi-value sequence. Engine use only.
func (n *Node) Append(name, value string) {
	n.multis[name] = append(n.multis[name], value)
}

// SetSubcommand records the dispatched child result. Engine use only.
func (n *Node) SetSubcommand(name string, child *Node) {
	n.subName = name
	n.sub = child
}

// IsPresent reports whether name was seen on the input or carries a default.
// It fails with ErrNotDeclared when the command node never declared name.
func (n *Node) IsPresent(name string) (bool, error) {
	if opt, ok := n.cmd.LookupOption(name); ok {
		switch opt.Kind() {
		case command.SingleFlag, command.MultiFlag:
			return n.counts[name] > 0, nil
		case command.SingleValue:
			return n.singles[name] != nil, nil
		default:
			return len(n.multis[name]) > 0, nil
		}
	}
	if pos, ok := n.cmd.LookupPositional(name); ok {
		if pos.Multiple() {
			return len(n.multis[name]) > 0, nil
		}
		return n.singles[name] != nil, nil
	}
	return false, fmt.Errorf("%w: %q on command %q", ErrNotDeclared, name, n.cmd.Path())
}

// OccurrencesOf returns the flag count, 0 or 1 for a single value depending
// on presence, or the length of a multi-value sequence. It fails with
// ErrNotDeclared when name is unknown to the command node.
func (n *Node) OccurrencesOf(name string) (uint32, error) {
	if opt, ok := n.cmd.LookupOption(name); ok {
		switch opt.Kind() {
		case command.SingleFlag, command.MultiFlag:
			return n.counts[name], nil
		case command.SingleValue:
			if n.singles[name] != nil {
				return 1, nil
			}
			return 0, nil
		default:
			return uint32(len(n.multis[name])), nil
		}
	}
	if pos, ok := n.cmd.LookupPositional(name); ok {
		if pos.Multiple() {
			return uint32(len(n.multis[name])), nil
		}
		if n.singles[name] != nil {
			return 1, nil
		}
		return 0, nil
	}
	return 0, fmt.Errorf("%w: %q on command %q", ErrNotDeclared, name, n.cmd.Path())
}

// ValueOf returns the single string value of name, or nil when it is absent.
// It fails with ErrWrongKind when name denotes a flag or a multi-value
// option/positional, and with ErrNotDeclared when name is unknown.
func (n *Node) ValueOf(name string) (*string, error) {
	if opt, ok := n.cmd.LookupOption(name); ok {
		if opt.Kind() != command.SingleValue {
			return nil, fmt.Errorf("%w: %q does not hold a single value", ErrWrongKind, name)
		}
		return copyValue(n.singles[name]), nil
	}
	if pos, ok := n.cmd.LookupPositional(name); ok {
		if pos.Multiple() {
			return nil, fmt.Errorf("%w: %q does not hold a single value", ErrWrongKind, name)
		}
		return copyValue(n.singles[name]), nil
	}
	return nil, fmt.Errorf("%w: %q on command %q", ErrNotDeclared, name, n.cmd.Path())
}

// ValuesOf returns the ordered value sequence of name. It fails with
// ErrWrongKind when name denotes a flag or a single-value option/positional,
// and with ErrNotDeclared when name is unknown.
func (n *Node) ValuesOf(name string) ([]string, error) {
	if opt, ok := n.cmd.LookupOption(name); ok {
		if opt.Kind() != command.MultiValue {
			return nil, fmt.Errorf("%w: %q does not hold a value sequence", ErrWrongKind, name)
		}
		return n.multis[name], nil
	}
	if pos, ok := n.cmd.LookupPositional(name); ok {
		if !pos.Multiple() {
			return nil, fmt.Errorf("%w: %q does not hold a value sequence", ErrWrongKind, name)
		}
		return n.multis[name], nil
	}
	return nil, fmt.Errorf("%w: %q on command %q", ErrNotDeclared, name, n.cmd.Path())
}

// Subcommand returns the dispatched child name and result; ok is false when
// no subcommand was selected.
func (n *Node) Subcommand() (name string, child *Node, ok bool) {
	if n.sub == nil {
		return "", nil, false
	}
	return n.subName, n.sub, true
}

func copyValue(v *string) *string {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}
