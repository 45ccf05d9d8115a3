package commands

import (
	"context"

	"github.com/mintgate/mintterm/cmd/tui/types"
)

type ClearCommand struct {
	BaseCommand
	ctx *CommandContext
}

func NewClearCommand(ctx *CommandContext) *ClearCommand {
	return &ClearCommand{
		BaseCommand: BaseCommand{
			Name:        "clear",
			Description: "Clear the terminal, keeping the banner",
			Usage:       "clear",
			Examples:    []string{"clear"},
			Aliases:     []string{"cls"},
			Category:    CategoryCore,
		},
		ctx: ctx,
	}
}

func (c *ClearCommand) Execute(ctx context.Context, args []string, emit EmitFunc) ([]types.OutputItem, error) {
	c.ctx.EventBus.Emit("terminal.clear", "")
	return nil, nil
}
