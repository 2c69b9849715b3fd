package manifest

import "github.com/hashicorp/hcl/v2"

// rootSchema is the top-level structure of a manifest file: exactly one
// command block.
type rootSchema struct {
	Command *commandBlock `hcl:"command,block"`
}

// commandBlock is one `command` block. Child command blocks nest recursively.
type commandBlock struct {
	Name        string             `hcl:"name,label"`
	Help        string             `hcl:"help,optional"`
	Version     string             `hcl:"version,optional"`
	Flags       []*flagBlock       `hcl:"flag,block"`
	Options     []*optionBlock     `hcl:"option,block"`
	Positionals []*positionalBlock `hcl:"positional,block"`
	Commands    []*commandBlock    `hcl:"command,block"`
}

// flagBlock declares a value-less option. The label is the bare long name.
type flagBlock struct {
	Name     string `hcl:"name,label"`
	Short    string `hcl:"short,optional"`
	Multiple bool   `hcl:"multiple,optional"`
	Help     string `hcl:"help,optional"`
}

// optionBlock declares a value-taking option. The default is kept as an
// expression so the translate layer can evaluate and convert it to a string.
type optionBlock struct {
	Name     string         `hcl:"name,label"`
	Short    string         `hcl:"short,optional"`
	Default  hcl.Expression `hcl:"default,optional"`
	Multiple bool           `hcl:"multiple,optional"`
	Help     string         `hcl:"help,optional"`
}

// positionalBlock declares one positional argument.
type positionalBlock struct {
	Name     string `hcl:"name,label"`
	Multiple bool   `hcl:"multiple,optional"`
	Help     string `hcl:"help,optional"`
}
