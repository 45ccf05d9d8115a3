package commands

import (
	"context"

	"github.com/mintgate/mintterm/cmd/tui/types"
)

// BannerArt is the block shown by the greeting and the banner command
const BannerArt = `
 __  __ ___ _   _ _____ ____    _  _____ _____
|  \/  |_ _| \ | |_   _/ ___|  / \|_   _| ____|
| |\/| || ||  \| | | || |  _  / _ \ | | |  _|
| |  | || || |\  | | || |_| |/ ___ \| | | |___
|_|  |_|___|_| \_| |_| \____/_/   \_\_| |_____|
`

type BannerCommand struct {
	BaseCommand
	ctx *CommandContext
}

func NewBannerCommand(ctx *CommandContext) *BannerCommand {
	return &BannerCommand{
		BaseCommand: BaseCommand{
			Name:        "banner",
			Description: "Print the terminal banner",
			Usage:       "banner",
			Examples:    []string{"banner"},
			Category:    CategoryInfo,
		},
		ctx: ctx,
	}
}

func (c *BannerCommand) Execute(ctx context.Context, args []string, emit EmitFunc) ([]types.OutputItem, error) {
	t := c.ctx.Translator
	return []types.OutputItem{
		types.Banner(BannerArt),
		types.Text(t.T("terminal.greeting")),
		types.OutputItem{Kind: types.KindMenu, Content: t.T("terminal.subtitle")},
	}, nil
}
