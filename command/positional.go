package command

// PositionalSpec is the caller-facing declaration of one positional argument.
type PositionalSpec struct {
	// Name identifies the positional in results and usage text. It must not
	// start with a dash.
	Name string
	// Multiple marks the positional as variadic: it absorbs every remaining
	// token. Only the last positional of a node may be variadic.
	Multiple bool
	// Help is the one-line description shown by the usage renderer.
	Help string
}

// Positional is a declared positional argument, immutable once its node is
// built.
type Positional struct {
	spec PositionalSpec
}

// Name returns the declared name.
func (p *Positional) Name() string { return p.spec.Name }

// Multiple reports whether the positional is variadic.
func (p *Positional) Multiple() bool { return p.spec.Multiple }

// Help returns the declared help text.
func (p *Positional) Help() string { return p.spec.Help }
