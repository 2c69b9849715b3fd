package engine

import (
	"context"
	"strings"

	"github.com/cmdgrid/cmdgrid/command"
	"github.com/cmdgrid/cmdgrid/internal/ctxlog"
	"github.com/cmdgrid/cmdgrid/result"
	"github.com/cmdgrid/cmdgrid/token"
)

// endOfOptions terminates the option phase of the current node when it
// appears as a complete token. It is consumed and never re-emitted.
const endOfOptions = "--"

// Parse runs the argument vector against the definition tree rooted at root.
// Token 0 of argv is the program name and is skipped. The context is used
// for logging only; a parse is a finite, synchronous computation.
//
// Exactly one of the two returns is non-nil. The error, when set, is an
// *Error; no partial result tree survives a failed parse.
func Parse(ctx context.Context, root *command.Command, argv []string) (*Outcome, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Parse: starting.", "command", root.Name(), "tokens", len(argv))

	rd := token.NewReader(argv)
	node, term, err := parseNode(ctx, root, rd)
	if err != nil {
		return nil, err
	}
	if term != nil {
		logger.Debug("Parse: short-circuited.", "origin", term.Origin.Path())
		return term, nil
	}

	logger.Debug("Parse: finished.", "command", root.Name())
	return &Outcome{Status: StatusParsed, Result: node}, nil
}

// parseNode executes the per-node state machine: option phase, then either
// subcommand dispatch or the positional phase. A non-nil *Outcome return
// means --help or --version short-circuited somewhere below; it propagates
// unchanged to the top of the recursion.
func parseNode(ctx context.Context, cmd *command.Command, rd *token.Reader) (*result.Node, *Outcome, error) {
	logger := ctxlog.FromContext(ctx)

	node := result.NewNode(cmd)
	// Tracks single-occurrence options resolved at this node. Kept outside
	// the result so a seeded default stays distinguishable from an explicit
	// occurrence.
	seen := make(map[string]bool)

options:
	for {
		tok, ok := rd.Next()
		switch {
		case !ok:
			break options
		case tok == endOfOptions:
			break options
		case !strings.HasPrefix(tok, "-"):
			// Not an option: it belongs to the subcommand or positionals.
			rd.Rewind()
			break options
		case strings.HasPrefix(tok, "--"):
			opt, found := cmd.LookupOption(tok)
			if !found {
				return nil, nil, &Error{Kind: UnknownOption, Command: cmd.Path(), Subject: tok}
			}
			if term := builtinOutcome(cmd, opt); term != nil {
				return nil, term, nil
			}
			if err := applyOption(cmd, opt, node, seen, rd); err != nil {
				return nil, nil, err
			}
		default:
			// Short bundle: every character expands independently through
			// the node's alias table, so -vvv equals -v -v -v.
			for _, alias := range tok[1:] {
				opt, found := cmd.LookupShort(alias)
				if !found {
					return nil, nil, &Error{Kind: UnknownOption, Command: cmd.Path(), Subject: "-" + string(alias)}
				}
				if term := builtinOutcome(cmd, opt); term != nil {
					return nil, term, nil
				}
				if err := applyOption(cmd, opt, node, seen, rd); err != nil {
					return nil, nil, err
				}
			}
		}
	}
	logger.Debug("Parse: option phase complete.", "command", cmd.Path())

	if len(cmd.Children()) > 0 {
		tok, ok := rd.Next()
		if !ok {
			// End of input: no subcommand selected.
			return node, nil, nil
		}
		child, found := cmd.LookupChild(tok)
		if !found {
			return nil, nil, &Error{Kind: UnknownSubcommand, Command: cmd.Path(), Subject: tok}
		}
		logger.Debug("Parse: dispatching.", "command", cmd.Path(), "subcommand", tok)
		sub, term, err := parseNode(ctx, child, rd)
		if err != nil {
			return nil, nil, err
		}
		if term != nil {
			return nil, term, nil
		}
		node.SetSubcommand(tok, sub)
		return node, nil, nil
	}

	for _, pos := range cmd.Positionals() {
		val, ok := rd.Next()
		if !ok {
			return nil, nil, &Error{Kind: MissingPositional, Command: cmd.Path(), Subject: pos.Name()}
		}
		if !pos.Multiple() {
			node.SetValue(pos.Name(), val)
			continue
		}
		// A variadic positional requires one token, then absorbs the rest
		// of the input. It is always last, enforced at build time.
		node.Append(pos.Name(), val)
		for {
			val, ok = rd.Next()
			if !ok {
				break
			}
			node.Append(pos.Name(), val)
		}
	}
	return node, nil, nil
}

// builtinOutcome maps the implicit help/version options onto their
// short-circuit outcomes. Both abort the whole parse from any depth.
func builtinOutcome(cmd *command.Command, opt *command.Option) *Outcome {
	switch opt.Name() {
	case command.HelpOptionName:
		return &Outcome{Status: StatusHelp, Origin: cmd}
	case command.VersionOptionName:
		return &Outcome{Status: StatusVersion, Origin: cmd}
	default:
		return nil
	}
}

// applyOption records one resolved occurrence of opt, consuming a value
// token when its arity demands one.
func applyOption(cmd *command.Command, opt *command.Option, node *result.Node, seen map[string]bool, rd *token.Reader) error {
	name := opt.Name()
	switch opt.Kind() {
	case command.SingleFlag:
		if seen[name] {
			return &Error{Kind: AlreadyPresent, Command: cmd.Path(), Subject: name}
		}
		seen[name] = true
		node.Increment(name)
	case command.MultiFlag:
		node.Increment(name)
	case command.SingleValue:
		if seen[name] {
			return &Error{Kind: AlreadyPresent, Command: cmd.Path(), Subject: name}
		}
		val, ok := rd.Next()
		if !ok {
			return &Error{Kind: MissingValue, Command: cmd.Path(), Subject: name}
		}
		seen[name] = true
		node.SetValue(name, val)
	case command.MultiValue:
		val, ok := rd.Next()
		if !ok {
			return &Error{Kind: MissingValue, Command: cmd.Path(), Subject: name}
		}
		node.Append(name, val)
	}
	return nil
}
