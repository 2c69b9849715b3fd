// Package command defines the declarative model of a command-line interface:
// a tree of command nodes, each declaring its options, its positionals, and
// its child commands. Trees are built once through the builder methods, which
// enforce the structural invariants at construction time, and are read-only
// afterwards, so a single tree may back arbitrarily many concurrent parses.
//
// Why enforce invariants at build time?
//
// Every rule that can be checked while the tree is assembled (option ordering,
// positional/subcommand exclusivity, variadic placement, defaults on
// repeatable options) is checked there and reported as a BuildError. The
// parsing engine can then walk the tree without re-validating it, which keeps
// the per-parse work proportional to the input vector alone.
package command
