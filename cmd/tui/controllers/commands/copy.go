package commands

import (
	"context"

	"github.com/mintgate/mintterm/cmd/tui/types"
)

type CopyCommand struct {
	BaseCommand
	ctx *CommandContext
	// lastOutput returns the most recent command output text, empty when
	// there is nothing to copy
	lastOutput func() string
}

func NewCopyCommand(ctx *CommandContext, lastOutput func() string) *CopyCommand {
	return &CopyCommand{
		BaseCommand: BaseCommand{
			Name:        "copy",
			Description: "Copy the last command output to the clipboard",
			Usage:       "copy",
			Examples:    []string{"copy"},
			Category:    CategoryTools,
		},
		ctx:        ctx,
		lastOutput: lastOutput,
	}
}

func (c *CopyCommand) Execute(ctx context.Context, args []string, emit EmitFunc) ([]types.OutputItem, error) {
	t := c.ctx.Translator

	text := c.lastOutput()
	if text == "" {
		return []types.OutputItem{types.Warning(t.T("copy.empty"))}, nil
	}

	if err := c.ctx.Clipboard.Copy(text); err != nil {
		return []types.OutputItem{types.Error(t.T("copy.failed"))}, nil
	}

	return []types.OutputItem{types.Success(t.T("copy.done"))}, nil
}
