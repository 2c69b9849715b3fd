// Package cli is responsible for parsing the binary's own command-line
// arguments, validating user input, and handling process-level concerns like
// exit codes. The binary's interface is declared with the command builder
// and parsed by the engine, so the library exercises its own parser.
package cli
