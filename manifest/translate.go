package manifest

import (
	"fmt"

	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"

	"github.com/cmdgrid/cmdgrid/command"
)

// translate turns the decoded schema into a built command tree, driving the
// builder so all of its invariants apply to declarative trees too.
func translate(root *commandBlock) (*command.Command, error) {
	cmd := command.New(root.Name, root.Help, root.Version)
	if err := populate(cmd, root); err != nil {
		return nil, err
	}
	return cmd, nil
}

func populate(cmd *command.Command, block *commandBlock) error {
	for _, fb := range block.Flags {
		short, err := shortAlias(block.Name, fb.Name, fb.Short)
		if err != nil {
			return err
		}
		if err := cmd.AddOption(command.OptionSpec{
			Name:     "--" + fb.Name,
			Short:    short,
			Multiple: fb.Multiple,
			Help:     fb.Help,
		}); err != nil {
			return err
		}
	}

	for _, ob := range block.Options {
		short, err := shortAlias(block.Name, ob.Name, ob.Short)
		if err != nil {
			return err
		}
		def, err := defaultValue(block.Name, ob)
		if err != nil {
			return err
		}
		if err := cmd.AddOption(command.OptionSpec{
			Name:       "--" + ob.Name,
			Short:      short,
			TakesValue: true,
			Default:    def,
			Multiple:   ob.Multiple,
			Help:       ob.Help,
		}); err != nil {
			return err
		}
	}

	for _, pb := range block.Positionals {
		if err := cmd.AddPositional(command.PositionalSpec{
			Name:     pb.Name,
			Multiple: pb.Multiple,
			Help:     pb.Help,
		}); err != nil {
			return err
		}
	}

	for _, cb := range block.Commands {
		if cb.Version != "" {
			return fmt.Errorf("command %q: version may only be set on the root command", cb.Name)
		}
		child, err := cmd.AddSubcommand(cb.Name, cb.Help)
		if err != nil {
			return err
		}
		if err := populate(child, cb); err != nil {
			return err
		}
	}

	return nil
}

// shortAlias validates and converts the optional short attribute; "" means
// no alias.
func shortAlias(cmdName, optName, short string) (rune, error) {
	if short == "" {
		return 0, nil
	}
	runes := []rune(short)
	if len(runes) != 1 {
		return 0, fmt.Errorf("command %q: option %q: short alias %q must be a single character", cmdName, optName, short)
	}
	return runes[0], nil
}

// defaultValue evaluates the default expression, if any, and converts the
// result to a string. A null default counts as no default.
func defaultValue(cmdName string, ob *optionBlock) (*string, error) {
	if ob.Default == nil {
		return nil, nil
	}

	val, diags := ob.Default.Value(nil)
	if diags.HasErrors() {
		return nil, fmt.Errorf("command %q: option %q: evaluating default: %w", cmdName, ob.Name, diags)
	}
	if val.IsNull() {
		return nil, nil
	}

	converted, err := convert.Convert(val, cty.String)
	if err != nil {
		return nil, fmt.Errorf("command %q: option %q: default is not a string: %w", cmdName, ob.Name, err)
	}
	s := converted.AsString()
	return &s, nil
}
