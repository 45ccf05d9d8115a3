package commands

import (
	"context"

	"github.com/mintgate/mintterm/cmd/tui/types"
	"github.com/mintgate/mintterm/pkg/version"
)

type AboutCommand struct {
	BaseCommand
	ctx *CommandContext
}

func NewAboutCommand(ctx *CommandContext) *AboutCommand {
	return &AboutCommand{
		BaseCommand: BaseCommand{
			Name:        "about",
			Description: "What this terminal is",
			Usage:       "about",
			Examples:    []string{"about"},
			Category:    CategoryInfo,
		},
		ctx: ctx,
	}
}

func (c *AboutCommand) Execute(ctx context.Context, args []string, emit EmitFunc) ([]types.OutputItem, error) {
	items := make([]types.OutputItem, 0, 4)
	for _, line := range c.ctx.Translator.TSlice("about.lines") {
		items = append(items, types.Text(line))
	}
	items = append(items, types.OutputItem{Kind: types.KindMenu, Content: version.GetInfo().String()})
	return items, nil
}
