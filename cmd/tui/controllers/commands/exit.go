package commands

import (
	"context"

	"github.com/mintgate/mintterm/cmd/tui/types"
)

type ExitCommand struct {
	BaseCommand
	ctx *CommandContext
}

func NewExitCommand(ctx *CommandContext) *ExitCommand {
	return &ExitCommand{
		BaseCommand: BaseCommand{
			Name:        "exit",
			Description: "Close the terminal",
			Usage:       "exit",
			Examples:    []string{"exit"},
			Aliases:     []string{"quit"},
			Category:    CategoryOther,
		},
		ctx: ctx,
	}
}

func (c *ExitCommand) Execute(ctx context.Context, args []string, emit EmitFunc) ([]types.OutputItem, error) {
	emit(types.Text(c.ctx.Translator.T("exit.bye")))

	if c.ctx.Exit != nil {
		return nil, c.ctx.Exit()
	}
	return nil, nil
}
