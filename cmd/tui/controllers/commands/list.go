package commands

import (
	"context"
	"strconv"

	"github.com/mintgate/mintterm/cmd/tui/types"
	"github.com/mintgate/mintterm/pkg/wallet"
)

type ListCommand struct {
	BaseCommand
	ctx *CommandContext
}

func NewListCommand(ctx *CommandContext) *ListCommand {
	return &ListCommand{
		BaseCommand: BaseCommand{
			Name:        "list",
			Description: "List tokens owned by an address",
			Usage:       "list [address]",
			Examples: []string{
				"list",
				"list 0x1234567890abcdef1234567890abcdef12345678",
			},
			Aliases:  []string{"ls"},
			Category: CategoryWeb3,
		},
		ctx: ctx,
	}
}

func (c *ListCommand) Execute(ctx context.Context, args []string, emit EmitFunc) ([]types.OutputItem, error) {
	t := c.ctx.Translator

	var address string
	if len(args) > 0 {
		address = args[0]
		if !wallet.IsHexAddress(address) {
			return []types.OutputItem{
				types.Error(t.T("wallet.verify.invalid_address", map[string]string{"address": address})),
			}, nil
		}
	} else {
		account, connected := c.ctx.Wallet.Account()
		if !connected {
			return []types.OutputItem{types.Error(t.T("wallet.not_connected"))}, nil
		}
		address = account.Address
	}

	tokens, err := c.ctx.Wallet.Tokens(ctx, address)
	if err != nil {
		return []types.OutputItem{
			types.Error(t.T("errors.command_failed", map[string]string{"reason": err.Error()})),
		}, nil
	}

	if len(tokens) == 0 {
		return []types.OutputItem{
			types.Text(t.T("wallet.list.empty", map[string]string{"address": address})),
		}, nil
	}

	items := []types.OutputItem{
		types.Text(t.T("wallet.list.header", map[string]string{"address": address})),
	}
	for _, id := range tokens {
		items = append(items, types.OutputItem{Kind: types.KindMenu, Content: "  #" + strconv.FormatUint(id, 10)})
	}
	return items, nil
}
