// Package manifest loads a command definition tree from an HCL file, so a
// binary's whole interface can be declared as data instead of builder calls.
//
// A manifest holds one top-level command block; flag, option, positional,
// and command blocks nest inside it:
//
//	command "foo" {
//	  help    = "a friendly tool"
//	  version = "0.3.1"
//
//	  flag "verbose" {
//	    short    = "v"
//	    multiple = true
//	  }
//
//	  command "cat" {
//	    flag "auto" { short = "a" }
//	    option "rate" { default = 10000 }
//	    positional "food" {}
//	  }
//	}
//
// The loader decodes the blocks into an HCL-specific schema and a translate
// layer drives the command builder, so every build-time invariant applies to
// declarative trees exactly as it does to programmatic ones. Option and flag
// labels are bare names; the translate layer derives the canonical "--name"
// spelling.
package manifest
