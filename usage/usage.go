package usage

import (
	"fmt"
	"io"
	"strings"

	"github.com/cmdgrid/cmdgrid/command"
)

// Write renders the usage text for one command node to w. The caller picks
// the node: on a help request that is the node whose option phase resolved
// --help, so nested subcommands print their own subtree.
func Write(w io.Writer, c *command.Command) {
	if c.Help() != "" {
		fmt.Fprintf(w, "%s\n\n", c.Help())
	}

	fmt.Fprintf(w, "Usage:\n  %s", c.Path())
	if len(c.Options()) > 0 {
		fmt.Fprint(w, " [options]")
	}
	if len(c.Children()) > 0 {
		fmt.Fprint(w, " <command>")
	}
	for _, pos := range c.Positionals() {
		if pos.Multiple() {
			fmt.Fprintf(w, " <%s>...", pos.Name())
		} else {
			fmt.Fprintf(w, " <%s>", pos.Name())
		}
	}
	fmt.Fprint(w, "\n")

	writeOptions(w, c.Options())
	writeCommands(w, c.Children())
	writeArguments(w, c.Positionals())
}

// WriteVersion renders the one-line version banner for a node.
func WriteVersion(w io.Writer, c *command.Command) {
	fmt.Fprintf(w, "%s %s\n", c.Name(), c.Version())
}

func writeOptions(w io.Writer, options []*command.Option) {
	if len(options) == 0 {
		return
	}

	// Left column first, so the help texts can be aligned on the widest one.
	left := make([]string, len(options))
	width := 0
	for i, opt := range options {
		left[i] = optionColumn(opt)
		if len(left[i]) > width {
			width = len(left[i])
		}
	}

	fmt.Fprint(w, "\nOptions:\n")
	for i, opt := range options {
		fmt.Fprintf(w, "  %-*s  %s", width, left[i], opt.Help())
		if def := opt.Default(); def != nil {
			fmt.Fprintf(w, " (default %q)", *def)
		}
		if opt.Multiple() {
			fmt.Fprint(w, " (repeatable)")
		}
		fmt.Fprint(w, "\n")
	}
}

// optionColumn formats the flag column: "-a, --auto" or "    --rate <value>".
func optionColumn(opt *command.Option) string {
	var b strings.Builder
	if opt.Short() != 0 {
		b.WriteString("-")
		b.WriteRune(opt.Short())
		b.WriteString(", ")
	} else {
		b.WriteString("    ")
	}
	b.WriteString(opt.Name())
	if opt.TakesValue() {
		b.WriteString(" <value>")
	}
	return b.String()
}

func writeCommands(w io.Writer, children []*command.Command) {
	if len(children) == 0 {
		return
	}

	width := 0
	for _, child := range children {
		if len(child.Name()) > width {
			width = len(child.Name())
		}
	}

	fmt.Fprint(w, "\nCommands:\n")
	for _, child := range children {
		fmt.Fprintf(w, "  %-*s  %s\n", width, child.Name(), child.Help())
	}
}

func writeArguments(w io.Writer, positionals []*command.Positional) {
	if len(positionals) == 0 {
		return
	}

	left := make([]string, len(positionals))
	width := 0
	for i, pos := range positionals {
		left[i] = "<" + pos.Name() + ">"
		if pos.Multiple() {
			left[i] += "..."
		}
		if len(left[i]) > width {
			width = len(left[i])
		}
	}

	fmt.Fprint(w, "\nArguments:\n")
	for i, pos := range positionals {
		fmt.Fprintf(w, "  %-*s  %s\n", width, left[i], pos.Help())
	}
}
