package commands

import (
	"context"
	"strconv"

	"github.com/mintgate/mintterm/cmd/tui/types"
	"github.com/mintgate/mintterm/pkg/wallet"
)

type VerifyCommand struct {
	BaseCommand
	ctx *CommandContext
}

func NewVerifyCommand(ctx *CommandContext) *VerifyCommand {
	return &VerifyCommand{
		BaseCommand: BaseCommand{
			Name:        "verify",
			Description: "Check whether an address holds tokens",
			Usage:       "verify <address>",
			Examples: []string{
				"verify 0x1234567890abcdef1234567890abcdef12345678",
			},
			Category: CategoryWeb3,
		},
		ctx: ctx,
	}
}

func (c *VerifyCommand) Execute(ctx context.Context, args []string, emit EmitFunc) ([]types.OutputItem, error) {
	t := c.ctx.Translator

	if len(args) == 0 {
		return []types.OutputItem{
			types.Text(t.T("help.usage") + ": " + c.GetUsage()),
		}, nil
	}

	address := args[0]
	if !wallet.IsHexAddress(address) {
		return []types.OutputItem{
			types.Error(t.T("wallet.verify.invalid_address", map[string]string{"address": address})),
		}, nil
	}

	tokens, err := c.ctx.Wallet.Tokens(ctx, address)
	if err != nil {
		return []types.OutputItem{
			types.Error(t.T("errors.command_failed", map[string]string{"reason": err.Error()})),
		}, nil
	}

	if len(tokens) == 0 {
		return []types.OutputItem{
			types.Text(t.T("wallet.verify.not_holder", map[string]string{"address": address})),
		}, nil
	}
	return []types.OutputItem{
		types.Success(t.T("wallet.verify.holder", map[string]string{
			"address": address,
			"count":   strconv.Itoa(len(tokens)),
		})),
	}, nil
}
