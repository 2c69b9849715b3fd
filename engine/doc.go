// Package engine implements the recursive-descent parse over a command
// definition tree. One Parse call walks the tree from the root, consuming a
// single shared token reader: per node it resolves leading options (long
// spellings, bundled short aliases, the "--" terminator), then either
// dispatches into a matched subcommand or fills the node's positionals.
//
// Help and version requests are not errors. They abort the whole recursion
// and surface as explicit Outcome variants carrying the originating node, so
// the caller can render the right subtree's usage. Malformed input aborts the
// parse with a typed Error; no partial result is ever returned.
package engine
