package commands

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/mintgate/mintterm/cmd/tui/types"
	"github.com/mintgate/mintterm/pkg/wallet"
)

const (
	maxMintPerTx = 10
	// slowMintAfter is when a pending mint gets a "still waiting" note
	slowMintAfter = 10 * time.Second
)

type MintCommand struct {
	BaseCommand
	ctx       *CommandContext
	slowAfter time.Duration
}

func NewMintCommand(ctx *CommandContext) *MintCommand {
	return &MintCommand{
		BaseCommand: BaseCommand{
			Name:        "mint",
			Description: "Mint tokens to the connected wallet",
			Usage:       "mint [quantity]",
			Examples: []string{
				"mint",
				"mint 3",
			},
			Category: CategoryWeb3,
		},
		ctx:       ctx,
		slowAfter: slowMintAfter,
	}
}

func (c *MintCommand) Execute(ctx context.Context, args []string, emit EmitFunc) ([]types.OutputItem, error) {
	t := c.ctx.Translator

	quantity := 1
	if len(args) > 0 {
		parsed, err := strconv.Atoi(args[0])
		if err != nil || parsed < 1 {
			return []types.OutputItem{
				types.Error(t.T("wallet.mint.invalid_quantity", map[string]string{"quantity": args[0]})),
			}, nil
		}
		quantity = parsed
	}
	if quantity > maxMintPerTx {
		return []types.OutputItem{
			types.Error(t.T("wallet.mint.max_per_tx", map[string]string{"max": strconv.Itoa(maxMintPerTx)})),
		}, nil
	}

	if _, connected := c.ctx.Wallet.Account(); !connected {
		return []types.OutputItem{
			types.Error(t.T("wallet.not_connected")),
		}, nil
	}

	emit(types.Text(t.T("wallet.mint.submitting", map[string]string{"quantity": strconv.Itoa(quantity)})))

	slowTimer := time.AfterFunc(c.slowAfter, func() {
		emit(types.Warning(t.T("wallet.mint.slow")))
	})
	defer slowTimer.Stop()

	receipt, err := c.ctx.Wallet.Mint(ctx, quantity, func(e wallet.MintEvent) {
		if e.Kind == wallet.MintSubmitted {
			emit(types.Text(t.T("wallet.mint.submitted", map[string]string{"tx": e.TxHash})))
		}
	})
	if err != nil {
		if errors.Is(err, wallet.ErrNotConnected) {
			return []types.OutputItem{types.Error(t.T("wallet.not_connected"))}, nil
		}
		return []types.OutputItem{
			types.Error(t.T("wallet.mint.failed", map[string]string{"reason": err.Error()})),
		}, nil
	}

	tokens := make([]string, len(receipt.TokenIDs))
	for i, id := range receipt.TokenIDs {
		tokens[i] = "#" + strconv.FormatUint(id, 10)
	}

	c.ctx.EventBus.Emit("wallet.minted", receipt)
	return []types.OutputItem{
		types.Success(t.T("wallet.mint.confirmed", map[string]string{"tokens": strings.Join(tokens, ", ")})),
	}, nil
}
