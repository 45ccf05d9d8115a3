package commands

import (
	"context"
	"strings"

	"github.com/mintgate/mintterm/cmd/tui/types"
)

var cursorStyles = []types.CursorStyle{types.CursorBlock, types.CursorUnderscore, types.CursorPipe}

type CursorCommand struct {
	BaseCommand
	ctx *CommandContext
}

func NewCursorCommand(ctx *CommandContext) *CursorCommand {
	return &CursorCommand{
		BaseCommand: BaseCommand{
			Name:        "cursor",
			Description: "Switch the cursor style",
			Usage:       "cursor <block|underscore|pipe>",
			Examples: []string{
				"cursor block",
				"cursor pipe",
			},
			Category: CategoryTools,
		},
		ctx: ctx,
	}
}

func (c *CursorCommand) Execute(ctx context.Context, args []string, emit EmitFunc) ([]types.OutputItem, error) {
	t := c.ctx.Translator

	names := make([]string, len(cursorStyles))
	for i, s := range cursorStyles {
		names[i] = string(s)
	}
	available := strings.Join(names, ", ")

	if len(args) == 0 {
		return []types.OutputItem{
			types.Text(t.T("cursor.available", map[string]string{"styles": available})),
		}, nil
	}

	style := types.CursorStyle(strings.ToLower(args[0]))
	valid := false
	for _, s := range cursorStyles {
		if s == style {
			valid = true
			break
		}
	}
	if !valid {
		return []types.OutputItem{
			types.Error(t.T("cursor.unknown", map[string]string{"style": string(style)})),
			types.Text(t.T("cursor.available", map[string]string{"styles": available})),
		}, nil
	}

	if err := c.ctx.Config.UpdateConfig(func(cfg *types.Config) {
		cfg.CursorStyle = style
	}, true); err != nil {
		return nil, err
	}

	c.ctx.EventBus.Emit("cursor.style.changed", style)
	return []types.OutputItem{
		types.Success(t.T("cursor.changed", map[string]string{"style": string(style)})),
	}, nil
}
