package commands

import (
	"context"
	"strings"

	"github.com/mintgate/mintterm/cmd/tui/types"
)

type LangCommand struct {
	BaseCommand
	ctx *CommandContext
}

func NewLangCommand(ctx *CommandContext) *LangCommand {
	return &LangCommand{
		BaseCommand: BaseCommand{
			Name:        "lang",
			Description: "Show or switch the terminal language",
			Usage:       "lang [code]",
			Examples: []string{
				"lang",
				"lang fr",
			},
			Category: CategoryTools,
		},
		ctx: ctx,
	}
}

func (c *LangCommand) Execute(ctx context.Context, args []string, emit EmitFunc) ([]types.OutputItem, error) {
	t := c.ctx.Translator
	available := strings.Join(t.SupportedLanguages(), ", ")

	if len(args) == 0 {
		return []types.OutputItem{
			types.Text(t.T("lang.current", map[string]string{"language": t.Language()})),
			types.Text(t.T("lang.available", map[string]string{"languages": available})),
		}, nil
	}

	code := args[0]
	if err := t.SetLanguage(code); err != nil {
		// The message stays in the still-active language
		return []types.OutputItem{
			types.Error(t.T("lang.unsupported", map[string]string{"language": code})),
			types.Text(t.T("lang.available", map[string]string{"languages": available})),
		}, nil
	}

	if err := c.ctx.Config.UpdateConfig(func(cfg *types.Config) {
		cfg.Language = t.Language()
	}, true); err != nil {
		return nil, err
	}

	c.ctx.EventBus.Emit("language.changed", t.Language())
	// Confirmation arrives already translated into the new language
	return []types.OutputItem{
		types.Success(t.T("lang.changed", map[string]string{"language": t.Language()})),
	}, nil
}
