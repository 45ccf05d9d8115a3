package commands

import (
	"context"

	"github.com/mintgate/mintterm/cmd/tui/types"
)

type ConnectCommand struct {
	BaseCommand
	ctx *CommandContext
}

func NewConnectCommand(ctx *CommandContext) *ConnectCommand {
	return &ConnectCommand{
		BaseCommand: BaseCommand{
			Name:        "connect",
			Description: "Connect a wallet session",
			Usage:       "connect",
			Examples:    []string{"connect"},
			Category:    CategoryWeb3,
		},
		ctx: ctx,
	}
}

func (c *ConnectCommand) Execute(ctx context.Context, args []string, emit EmitFunc) ([]types.OutputItem, error) {
	t := c.ctx.Translator

	emit(types.Text(t.T("wallet.connecting")))

	account, err := c.ctx.Wallet.Connect(ctx)
	if err != nil {
		return []types.OutputItem{
			types.Error(t.T("wallet.connect_failed", map[string]string{"reason": err.Error()})),
		}, nil
	}

	c.ctx.EventBus.Emit("wallet.connected", account)
	return []types.OutputItem{
		types.Success(t.T("wallet.connected", map[string]string{"address": account.Address})),
	}, nil
}
