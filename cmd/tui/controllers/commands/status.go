package commands

import (
	"context"
	"strconv"

	"github.com/mintgate/mintterm/cmd/tui/types"
)

type StatusCommand struct {
	BaseCommand
	ctx *CommandContext
}

func NewStatusCommand(ctx *CommandContext) *StatusCommand {
	return &StatusCommand{
		BaseCommand: BaseCommand{
			Name:        "status",
			Description: "Show the drop contract status",
			Usage:       "status",
			Examples:    []string{"status"},
			Category:    CategoryWeb3,
		},
		ctx: ctx,
	}
}

func (c *StatusCommand) Execute(ctx context.Context, args []string, emit EmitFunc) ([]types.OutputItem, error) {
	t := c.ctx.Translator

	status, err := c.ctx.Wallet.Status(ctx)
	if err != nil {
		return []types.OutputItem{
			types.Error(t.T("errors.command_failed", map[string]string{"reason": err.Error()})),
		}, nil
	}

	items := []types.OutputItem{
		types.Text(t.T("wallet.status.header")),
		types.Text(t.T("wallet.status.network", map[string]string{
			"chain": strconv.FormatUint(status.ChainID, 10),
			"block": strconv.FormatUint(status.Block, 10),
		})),
		types.Text(t.T("wallet.status.supply", map[string]string{
			"minted": strconv.FormatUint(status.Minted, 10),
			"total":  strconv.FormatUint(status.Supply, 10),
		})),
		types.Text(t.T("wallet.status.price", map[string]string{"price": status.Price})),
	}

	if status.Paused {
		items = append(items, types.Warning(t.T("wallet.status.paused")))
	} else {
		items = append(items, types.Success(t.T("wallet.status.open")))
	}
	return items, nil
}
