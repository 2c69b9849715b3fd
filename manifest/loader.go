package manifest

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/cmdgrid/cmdgrid/command"
	"github.com/cmdgrid/cmdgrid/internal/ctxlog"
)

// Load parses the manifest file at path and returns the built command tree.
func Load(ctx context.Context, path string) (*command.Command, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Loading command manifest.", "path", path)

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse manifest %s: %w", path, diags)
	}

	return decode(ctx, file, path)
}

// LoadString parses an inline manifest; filename is used in diagnostics only.
func LoadString(ctx context.Context, src, filename string) (*command.Command, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL([]byte(src), filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse manifest %s: %w", filename, diags)
	}

	return decode(ctx, file, filename)
}

func decode(ctx context.Context, file *hcl.File, name string) (*command.Command, error) {
	logger := ctxlog.FromContext(ctx)

	var root rootSchema
	if diags := gohcl.DecodeBody(file.Body, nil, &root); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode manifest %s: %w", name, diags)
	}
	if root.Command == nil {
		return nil, fmt.Errorf("manifest %s must declare one top-level command block", name)
	}

	cmd, err := translate(root.Command)
	if err != nil {
		return nil, fmt.Errorf("manifest %s: %w", name, err)
	}

	logger.Debug("Command manifest loaded.", "command", cmd.Name(), "subcommands", len(cmd.Children()))
	return cmd, nil
}
