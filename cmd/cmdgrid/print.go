package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/cmdgrid/cmdgrid/command"
	"github.com/cmdgrid/cmdgrid/result"
)

// printResult walks the result tree in declaration order and writes one line
// per declared name, then recurses into the dispatched subcommand.
func printResult(w io.Writer, node *result.Node, indent string) {
	cmd := node.Command()
	fmt.Fprintf(w, "%s%s:\n", indent, cmd.Path())

	inner := indent + "  "
	for _, opt := range cmd.Options() {
		printName(w, node, inner, opt.Name(), opt.Kind())
	}
	for _, pos := range cmd.Positionals() {
		kind := command.SingleValue
		if pos.Multiple() {
			kind = command.MultiValue
		}
		printName(w, node, inner, pos.Name(), kind)
	}

	if name, child, ok := node.Subcommand(); ok {
		fmt.Fprintf(w, "%ssubcommand: %s\n", inner, name)
		printResult(w, child, inner)
	}
}

func printName(w io.Writer, node *result.Node, indent, name string, kind command.OptionKind) {
	switch kind {
	case command.SingleFlag, command.MultiFlag:
		count, err := node.OccurrencesOf(name)
		if err != nil {
			return
		}
		fmt.Fprintf(w, "%s%s = %d\n", indent, name, count)
	case command.SingleValue:
		val, err := node.ValueOf(name)
		if err != nil {
			return
		}
		if val == nil {
			fmt.Fprintf(w, "%s%s = (absent)\n", indent, name)
			return
		}
		fmt.Fprintf(w, "%s%s = %q\n", indent, name, *val)
	default:
		vals, err := node.ValuesOf(name)
		if err != nil {
			return
		}
		quoted := make([]string, len(vals))
		for i, v := range vals {
			quoted[i] = fmt.Sprintf("%q", v)
		}
		fmt.Fprintf(w, "%s%s = [%s]\n", indent, name, strings.Join(quoted, ", "))
	}
}
