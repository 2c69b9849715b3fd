package command

// OptionKind is the derived classification of an option, combining its arity
// (does it consume a value token) with its multiplicity (may it repeat). The
// engine dispatches on this classification when applying a resolved option.
type OptionKind int

const (
	// SingleFlag takes no value and may appear at most once.
	SingleFlag OptionKind = iota
	// MultiFlag takes no value and counts every occurrence.
	MultiFlag
	// SingleValue consumes the next token as its value and may appear at
	// most once.
	SingleValue
	// MultiValue consumes the next token per occurrence, appending to an
	// ordered sequence.
	MultiValue
)

// OptionSpec is the caller-facing declaration of one option.
type OptionSpec struct {
	// Name is the canonical long spelling, dashes included, e.g. "--verbose".
	Name string
	// Short is an optional single-character alias; 0 means none.
	Short rune
	// TakesValue selects value arity. Declaring a Default implies it.
	TakesValue bool
	// Default is the value a single-value option assumes when it never
	// appears on the input. Nil means the value stays absent.
	Default *string
	// Multiple permits the option to appear more than once.
	Multiple bool
	// Help is the one-line description shown by the usage renderer.
	Help string
}

// Option is a declared option, immutable once its node is built.
type Option struct {
	spec OptionSpec
}

// Name returns the canonical long spelling, dashes included.
func (o *Option) Name() string { return o.spec.Name }

// Short returns the single-character alias, or 0 when none is bound.
func (o *Option) Short() rune { return o.spec.Short }

// Help returns the declared help text.
func (o *Option) Help() string { return o.spec.Help }

// Default returns a copy of the declared default value, or nil.
func (o *Option) Default() *string {
	if o.spec.Default == nil {
		return nil
	}
	v := *o.spec.Default
	return &v
}

// Kind returns the derived arity/multiplicity classification.
func (o *Option) Kind() OptionKind {
	switch {
	case o.spec.TakesValue && o.spec.Multiple:
		return MultiValue
	case o.spec.TakesValue:
		return SingleValue
	case o.spec.Multiple:
		return MultiFlag
	default:
		return SingleFlag
	}
}

// TakesValue reports whether the option consumes a value token.
func (o *Option) TakesValue() bool { return o.spec.TakesValue }

// Multiple reports whether the option may appear more than once.
func (o *Option) Multiple() bool { return o.spec.Multiple }
