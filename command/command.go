package command

import "strings"

// Every node answers --help/-h; --version exists only where a version string
// was supplied. Both are injected by the builder, never declared by callers.
const (
	HelpOptionName    = "--help"
	HelpOptionShort   = 'h'
	VersionOptionName = "--version"
)

// Command is one node of the definition tree. Nodes are assembled through
// New, AddOption, AddPositional, and AddSubcommand, and are read-only once
// construction is complete.
type Command struct {
	name    string
	help    string
	version string

	// path is the usage prefix composed at build time ("foo cat"). Storing
	// the composed string instead of a parent pointer keeps the tree free of
	// parent/child reference cycles; nothing traverses upwards at parse time.
	path string

	options     []*Option
	positionals []*Positional
	children    []*Command

	byName      map[string]*Option
	byShort     map[rune]*Option
	childByName map[string]*Command
}

// New creates a root command node. The implicit --help/-h option is declared
// immediately; --version is declared as well when version is non-empty.
// Passing empty strings omits the help text and the version.
func New(name, help, version string) *Command {
	c := newNode(name, help, name)
	c.version = version

	// Injection cannot fail on a fresh node.
	_ = c.AddOption(OptionSpec{
		Name:  HelpOptionName,
		Short: HelpOptionShort,
		Help:  "print usage information and exit",
	})
	if version != "" {
		_ = c.AddOption(OptionSpec{
			Name: VersionOptionName,
			Help: "print the version and exit",
		})
	}
	return c
}

func newNode(name, help, path string) *Command {
	return &Command{
		name:        name,
		help:        help,
		path:        path,
		byName:      make(map[string]*Option),
		byShort:     make(map[rune]*Option),
		childByName: make(map[string]*Command),
	}
}

// AddOption declares an option on the node. It fails fast with a BuildError
// when the declaration breaks an invariant; the node is left unchanged.
func (c *Command) AddOption(spec OptionSpec) error {
	if spec.Default != nil {
		// Declaring any default forces value arity.
		spec.TakesValue = true
	}

	switch {
	case len(c.positionals) > 0:
		return &BuildError{Kind: ErrOptionAfterPositional, Command: c.path, Subject: spec.Name}
	case len(c.children) > 0:
		return &BuildError{Kind: ErrOptionAfterSubcommand, Command: c.path, Subject: spec.Name}
	case !strings.HasPrefix(spec.Name, "--") || len(spec.Name) <= 2:
		return &BuildError{Kind: ErrInvalidName, Command: c.path, Subject: spec.Name}
	case spec.Default != nil && spec.Multiple:
		return &BuildError{Kind: ErrDefaultOnMultiple, Command: c.path, Subject: spec.Name}
	}

	if _, exists := c.byName[spec.Name]; exists {
		return &BuildError{Kind: ErrDuplicateName, Command: c.path, Subject: spec.Name}
	}
	if spec.Short != 0 {
		if _, exists := c.byShort[spec.Short]; exists {
			return &BuildError{Kind: ErrDuplicateShort, Command: c.path, Subject: string(spec.Short)}
		}
	}

	opt := &Option{spec: spec}
	c.options = append(c.options, opt)
	c.byName[spec.Name] = opt
	if spec.Short != 0 {
		c.byShort[spec.Short] = opt
	}
	return nil
}

// AddPositional declares a positional argument on the node. Positionals are
// filled strictly in declaration order at parse time.
func (c *Command) AddPositional(spec PositionalSpec) error {
	switch {
	case len(c.children) > 0:
		return &BuildError{Kind: ErrPositionalWithSubcommands, Command: c.path, Subject: spec.Name}
	case spec.Name == "" || strings.HasPrefix(spec.Name, "-"):
		return &BuildError{Kind: ErrInvalidName, Command: c.path, Subject: spec.Name}
	}

	if n := len(c.positionals); n > 0 && c.positionals[n-1].Multiple() {
		return &BuildError{Kind: ErrVariadicNotLast, Command: c.path, Subject: spec.Name}
	}
	for _, p := range c.positionals {
		if p.Name() == spec.Name {
			return &BuildError{Kind: ErrDuplicateName, Command: c.path, Subject: spec.Name}
		}
	}

	c.positionals = append(c.positionals, &Positional{spec: spec})
	return nil
}

// AddSubcommand declares a child command and returns it for further building.
// The child owns its own implicit --help; it never carries a version string,
// so only the root answers --version.
func (c *Command) AddSubcommand(name, help string) (*Command, error) {
	switch {
	case len(c.positionals) > 0:
		return nil, &BuildError{Kind: ErrSubcommandWithPositionals, Command: c.path, Subject: name}
	case name == "" || strings.HasPrefix(name, "-"):
		return nil, &BuildError{Kind: ErrInvalidName, Command: c.path, Subject: name}
	}
	if _, exists := c.childByName[name]; exists {
		return nil, &BuildError{Kind: ErrDuplicateName, Command: c.path, Subject: name}
	}

	child := newNode(name, help, c.path+" "+name)
	_ = child.AddOption(OptionSpec{
		Name:  HelpOptionName,
		Short: HelpOptionShort,
		Help:  "print usage information and exit",
	})

	c.children = append(c.children, child)
	c.childByName[name] = child
	return child, nil
}

// Name returns the node's own name.
func (c *Command) Name() string { return c.name }

// Help returns the node's help text.
func (c *Command) Help() string { return c.help }

// Version returns the version string, or "" when none was set.
func (c *Command) Version() string { return c.version }

// Path returns the space-joined usage prefix from the root to this node.
func (c *Command) Path() string { return c.path }

// Options returns the declared options in declaration order, implicit ones
// included. The returned slice is shared; callers must treat it as read-only.
func (c *Command) Options() []*Option { return c.options }

// Positionals returns the declared positionals in declaration order.
func (c *Command) Positionals() []*Positional { return c.positionals }

// Children returns the declared subcommands in declaration order.
func (c *Command) Children() []*Command { return c.children }

// LookupOption resolves a canonical long spelling ("--verbose") against the
// node's options.
func (c *Command) LookupOption(name string) (*Option, bool) {
	opt, ok := c.byName[name]
	return opt, ok
}

// LookupShort resolves a short alias character against the node's options.
func (c *Command) LookupShort(alias rune) (*Option, bool) {
	opt, ok := c.byShort[alias]
	return opt, ok
}

// LookupPositional resolves a positional by name.
func (c *Command) LookupPositional(name string) (*Positional, bool) {
	for _, p := range c.positionals {
		if p.Name() == name {
			return p, true
		}
	}
	return nil, false
}

// LookupChild resolves a subcommand by its exact name.
func (c *Command) LookupChild(name string) (*Command, bool) {
	child, ok := c.childByName[name]
	return child, ok
}
