// Package token provides the cursor over the input token vector that the
// parsing engine threads through the whole command tree. A single Reader is
// shared across all nodes of one parse, so tokens are consumed exactly once,
// left to right, regardless of how deep the subcommand recursion goes.
package token
