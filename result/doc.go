// Package result holds the output model of a parse: one Node per visited
// command node, carrying occurrence counts for flags, single or multi string
// values for value options and positionals, and the dispatched subcommand
// pair. A Node is populated by the engine during one parse call and is
// read-only once the parse returns.
package result
