// Package usage renders the human-facing text for a command node: the usage
// line built from the node's path prefix, the option table, and the
// subcommand or argument summary. It is pure string assembly over the
// read-only surface of the command package; the parsing engine never
// depends on it.
package usage
