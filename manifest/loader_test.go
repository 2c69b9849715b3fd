package manifest

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cmdgrid/cmdgrid/command"
	"github.com/cmdgrid/cmdgrid/engine"
)

const fooManifest = `
command "foo" {
  help    = "a friendly tool"
  version = "0.3.1"

  flag "verbose" {
    short    = "v"
    multiple = true
    help     = "increase verbosity"
  }

  command "cat" {
    help = "feed the cat"

    flag "auto" { short = "a" }
    option "rate" { default = 10000 }
    positional "food" {}
  }

  command "monkey" {
    option "height" { default = "80" }
    positional "banana" { multiple = true }
  }
}
`

func TestLoadString_BuildsExpectedTree(t *testing.T) {
	t.Parallel()

	root, err := LoadString(context.Background(), fooManifest, "foo.hcl")
	require.NoError(t, err)

	require.Equal(t, "foo", root.Name())
	require.Equal(t, "a friendly tool", root.Help())
	require.Equal(t, "0.3.1", root.Version())

	verbose, ok := root.LookupOption("--verbose")
	require.True(t, ok)
	require.Equal(t, command.MultiFlag, verbose.Kind())
	short, ok := root.LookupShort('v')
	require.True(t, ok)
	require.Same(t, verbose, short)

	cat, ok := root.LookupChild("cat")
	require.True(t, ok)
	require.Equal(t, "foo cat", cat.Path())

	// A numeric HCL default is converted to its string form.
	rate, ok := cat.LookupOption("--rate")
	require.True(t, ok)
	require.Equal(t, command.SingleValue, rate.Kind())
	def := rate.Default()
	require.NotNil(t, def)
	require.Equal(t, "10000", *def)

	monkey, ok := root.LookupChild("monkey")
	require.True(t, ok)
	require.Len(t, monkey.Positionals(), 1)
	require.True(t, monkey.Positionals()[0].Multiple())
}

func TestLoadString_TreeParsesLikeAHandBuiltOne(t *testing.T) {
	t.Parallel()

	root, err := LoadString(context.Background(), fooManifest, "foo.hcl")
	require.NoError(t, err)

	outcome, err := engine.Parse(context.Background(), root, []string{"foo", "cat", "--auto", "rat"})
	require.NoError(t, err)
	require.Equal(t, engine.StatusParsed, outcome.Status)

	_, cat, ok := outcome.Result.Subcommand()
	require.True(t, ok)
	food, err := cat.ValueOf("food")
	require.NoError(t, err)
	require.Equal(t, "rat", *food)
}

func TestLoad_ReadsFromDisk(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "foo.hcl")
	require.NoError(t, os.WriteFile(path, []byte(fooManifest), 0o600))

	root, err := Load(context.Background(), path)
	require.NoError(t, err)
	require.Equal(t, "foo", root.Name())
}

func TestLoad_MissingFile(t *testing.T) {
	t.Parallel()

	_, err := Load(context.Background(), filepath.Join(t.TempDir(), "absent.hcl"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to parse manifest")
}

func TestLoadString_Failures(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name        string
		src         string
		errContains string
	}{
		{
			name:        "syntax error",
			src:         `command "foo" {`,
			errContains: "failed to parse manifest",
		},
		{
			name:        "no command block",
			src:         ``,
			errContains: "must declare one top-level command block",
		},
		{
			name: "short alias longer than one character",
			src: `
			command "foo" {
			  flag "verbose" { short = "vv" }
			}
			`,
			errContains: "must be a single character",
		},
		{
			name: "version on a child command",
			src: `
			command "foo" {
			  command "cat" {
			    version = "1.0"
			  }
			}
			`,
			errContains: "version may only be set on the root command",
		},
		{
			name: "default on a repeatable option",
			src: `
			command "foo" {
			  option "tag" {
			    default  = "x"
			    multiple = true
			  }
			}
			`,
			errContains: "cannot have a default value",
		},
		{
			name: "positional after a variadic one",
			src: `
			command "foo" {
			  positional "rest" { multiple = true }
			  positional "late" {}
			}
			`,
			errContains: "declared after a variadic positional",
		},
		{
			name: "positionals mixed with subcommands",
			src: `
			command "foo" {
			  positional "food" {}
			  command "cat" {}
			}
			`,
			errContains: "declared on a node with positionals",
		},
		{
			name: "duplicate option",
			src: `
			command "foo" {
			  flag "auto" {}
			  option "auto" {}
			}
			`,
			errContains: "already declared",
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			_, err := LoadString(context.Background(), tc.src, "bad.hcl")
			require.Error(t, err)
			require.Contains(t, err.Error(), tc.errContains)
		})
	}
}
