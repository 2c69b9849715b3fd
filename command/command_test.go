package command

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNew_InjectsImplicitOptions(t *testing.T) {
	t.Parallel()

	root := New("foo", "a friendly tool", "0.3.1")

	help, ok := root.LookupOption(HelpOptionName)
	require.True(t, ok, "every node owns an implicit --help")
	require.Equal(t, SingleFlag, help.Kind())

	short, ok := root.LookupShort(HelpOptionShort)
	require.True(t, ok)
	require.Same(t, help, short, "-h must alias --help")

	_, ok = root.LookupOption(VersionOptionName)
	require.True(t, ok, "--version exists when a version string is set")

	bare := New("bare", "", "")
	_, ok = bare.LookupOption(VersionOptionName)
	require.False(t, ok, "--version must not exist without a version string")
}

func TestAddSubcommand_ChildHasHelpButNoVersion(t *testing.T) {
	t.Parallel()

	root := New("foo", "", "0.3.1")
	child, err := root.AddSubcommand("cat", "feed the cat")
	require.NoError(t, err)

	_, ok := child.LookupOption(HelpOptionName)
	require.True(t, ok)
	_, ok = child.LookupOption(VersionOptionName)
	require.False(t, ok)

	require.Equal(t, "foo cat", child.Path(), "path prefix is composed at build time")
	require.Equal(t, "foo", root.Path())
}

func TestOption_KindDerivation(t *testing.T) {
	t.Parallel()

	def := "10000"
	cases := []struct {
		name string
		spec OptionSpec
		want OptionKind
	}{
		{"flag", OptionSpec{Name: "--auto"}, SingleFlag},
		{"repeatable flag", OptionSpec{Name: "--verbose", Multiple: true}, MultiFlag},
		{"value", OptionSpec{Name: "--rate", TakesValue: true}, SingleValue},
		{"repeatable value", OptionSpec{Name: "--tag", TakesValue: true, Multiple: true}, MultiValue},
		{"default forces value arity", OptionSpec{Name: "--rate", Default: &def}, SingleValue},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			c := New("foo", "", "")
			require.NoError(t, c.AddOption(tc.spec))
			opt, ok := c.LookupOption(tc.spec.Name)
			require.True(t, ok)
			require.Equal(t, tc.want, opt.Kind())
		})
	}
}

func TestBuilder_InvariantViolations(t *testing.T) {
	t.Parallel()

	def := "x"
	cases := []struct {
		name string
		kind BuildErrorKind
		err  func() error
	}{
		{
			name: "option after positional",
			kind: ErrOptionAfterPositional,
			err: func() error {
				c := New("foo", "", "")
				require.NoError(t, c.AddPositional(PositionalSpec{Name: "food"}))
				return c.AddOption(OptionSpec{Name: "--late"})
			},
		},
		{
			name: "option after subcommand",
			kind: ErrOptionAfterSubcommand,
			err: func() error {
				c := New("foo", "", "")
				_, err := c.AddSubcommand("cat", "")
				require.NoError(t, err)
				return c.AddOption(OptionSpec{Name: "--late"})
			},
		},
		{
			name: "positional on a node with subcommands",
			kind: ErrPositionalWithSubcommands,
			err: func() error {
				c := New("foo", "", "")
				_, err := c.AddSubcommand("cat", "")
				require.NoError(t, err)
				return c.AddPositional(PositionalSpec{Name: "food"})
			},
		},
		{
			name: "subcommand on a node with positionals",
			kind: ErrSubcommandWithPositionals,
			err: func() error {
				c := New("foo", "", "")
				require.NoError(t, c.AddPositional(PositionalSpec{Name: "food"}))
				_, err := c.AddSubcommand("cat", "")
				return err
			},
		},
		{
			name: "positional after a variadic one",
			kind: ErrVariadicNotLast,
			err: func() error {
				c := New("foo", "", "")
				require.NoError(t, c.AddPositional(PositionalSpec{Name: "banana", Multiple: true}))
				return c.AddPositional(PositionalSpec{Name: "late"})
			},
		},
		{
			name: "default on a repeatable option",
			kind: ErrDefaultOnMultiple,
			err: func() error {
				c := New("foo", "", "")
				return c.AddOption(OptionSpec{Name: "--tag", Default: &def, Multiple: true})
			},
		},
		{
			name: "duplicate option name",
			kind: ErrDuplicateName,
			err: func() error {
				c := New("foo", "", "")
				require.NoError(t, c.AddOption(OptionSpec{Name: "--auto"}))
				return c.AddOption(OptionSpec{Name: "--auto"})
			},
		},
		{
			name: "duplicate short alias",
			kind: ErrDuplicateShort,
			err: func() error {
				c := New("foo", "", "")
				require.NoError(t, c.AddOption(OptionSpec{Name: "--auto", Short: 'a'}))
				return c.AddOption(OptionSpec{Name: "--all", Short: 'a'})
			},
		},
		{
			name: "short alias colliding with implicit -h",
			kind: ErrDuplicateShort,
			err: func() error {
				c := New("foo", "", "")
				return c.AddOption(OptionSpec{Name: "--hard", Short: 'h'})
			},
		},
		{
			name: "option name without double dash",
			kind: ErrInvalidName,
			err: func() error {
				c := New("foo", "", "")
				return c.AddOption(OptionSpec{Name: "verbose"})
			},
		},
		{
			name: "positional name with a dash",
			kind: ErrInvalidName,
			err: func() error {
				c := New("foo", "", "")
				return c.AddPositional(PositionalSpec{Name: "-food"})
			},
		},
		{
			name: "duplicate subcommand name",
			kind: ErrDuplicateName,
			err: func() error {
				c := New("foo", "", "")
				_, err := c.AddSubcommand("cat", "")
				require.NoError(t, err)
				_, err = c.AddSubcommand("cat", "")
				return err
			},
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			err := tc.err()
			require.Error(t, err)

			var buildErr *BuildError
			require.ErrorAs(t, err, &buildErr)
			require.Equal(t, tc.kind, buildErr.Kind)
		})
	}
}

func TestBuilder_FailedCallLeavesNodeUnchanged(t *testing.T) {
	t.Parallel()

	c := New("foo", "", "")
	require.NoError(t, c.AddOption(OptionSpec{Name: "--auto", Short: 'a'}))

	before := len(c.Options())
	err := c.AddOption(OptionSpec{Name: "--all", Short: 'a'})
	require.Error(t, err)
	require.Len(t, c.Options(), before, "a rejected declaration must not be recorded")
}

func TestOption_DefaultIsCopied(t *testing.T) {
	t.Parallel()

	def := "10000"
	c := New("foo", "", "")
	require.NoError(t, c.AddOption(OptionSpec{Name: "--rate", Default: &def}))

	opt, _ := c.LookupOption("--rate")
	got := opt.Default()
	require.NotNil(t, got)
	require.Equal(t, "10000", *got)

	*got = "changed"
	again := opt.Default()
	require.Equal(t, "10000", *again, "Default must hand out copies, the declaration is immutable")
}
