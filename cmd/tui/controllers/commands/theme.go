package commands

import (
	"context"
	"strings"

	"github.com/mintgate/mintterm/cmd/tui/presentation"
	"github.com/mintgate/mintterm/cmd/tui/types"
)

type ThemeCommand struct {
	BaseCommand
	ctx *CommandContext
}

func NewThemeCommand(ctx *CommandContext) *ThemeCommand {
	return &ThemeCommand{
		BaseCommand: BaseCommand{
			Name:        "theme",
			Description: "Show or switch the terminal theme",
			Usage:       "theme [name]",
			Examples: []string{
				"theme",
				"theme amber",
			},
			Category: CategoryTools,
		},
		ctx: ctx,
	}
}

func (c *ThemeCommand) Execute(ctx context.Context, args []string, emit EmitFunc) ([]types.OutputItem, error) {
	t := c.ctx.Translator

	if len(args) == 0 {
		current := c.ctx.Config.GetConfig().Theme
		return []types.OutputItem{
			types.Text(t.T("theme.current", map[string]string{"theme": current})),
			types.Text(t.T("theme.available", map[string]string{"themes": strings.Join(presentation.GetThemeNames(), ", ")})),
		}, nil
	}

	name := strings.ToLower(args[0])
	if !presentation.IsValidTheme(name) {
		return []types.OutputItem{
			types.Error(t.T("theme.unknown", map[string]string{"theme": name})),
			types.Text(t.T("theme.available", map[string]string{"themes": strings.Join(presentation.GetThemeNames(), ", ")})),
		}, nil
	}

	if err := c.ctx.Config.UpdateConfig(func(cfg *types.Config) {
		cfg.Theme = name
	}, true); err != nil {
		return nil, err
	}

	c.ctx.EventBus.Emit("theme.changed", name)
	return []types.OutputItem{
		types.Success(t.T("theme.changed", map[string]string{"theme": name})),
	}, nil
}
