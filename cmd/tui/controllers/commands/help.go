package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/mintgate/mintterm/cmd/tui/types"
)

// RegistryAccessor is the slice of the command registry help needs
type RegistryAccessor interface {
	GetCommandsByCategory() map[string][]Command
	GetCommand(name string) Command
}

type HelpCommand struct {
	BaseCommand
	ctx      *CommandContext
	registry RegistryAccessor
}

func NewHelpCommand(ctx *CommandContext, registry RegistryAccessor) *HelpCommand {
	return &HelpCommand{
		BaseCommand: BaseCommand{
			Name:        "help",
			Description: "List available commands",
			Usage:       "help [command]",
			Examples: []string{
				"help",
				"help mint",
			},
			Aliases:  []string{"?"},
			Category: CategoryCore,
		},
		ctx:      ctx,
		registry: registry,
	}
}

func (c *HelpCommand) Execute(ctx context.Context, args []string, emit EmitFunc) ([]types.OutputItem, error) {
	if len(args) > 0 {
		return c.commandHelp(args[0])
	}
	return c.overview()
}

func (c *HelpCommand) overview() ([]types.OutputItem, error) {
	t := c.ctx.Translator
	byCategory := c.registry.GetCommandsByCategory()

	var md strings.Builder
	md.WriteString("# " + t.T("help.title") + "\n")

	for _, category := range CategoryOrder {
		group, ok := byCategory[category]
		if !ok {
			continue
		}
		md.WriteString("\n## " + t.T("help.categories."+category) + "\n\n")
		for _, cmd := range group {
			name := cmd.GetName()
			if aliases := cmd.GetAliases(); len(aliases) > 0 {
				name = name + " (" + strings.Join(aliases, ", ") + ")"
			}
			md.WriteString(fmt.Sprintf("- **%s**: %s\n", name, cmd.GetDescription()))
		}
	}

	return []types.OutputItem{types.Markup(md.String())}, nil
}

func (c *HelpCommand) commandHelp(name string) ([]types.OutputItem, error) {
	t := c.ctx.Translator

	cmd := c.registry.GetCommand(name)
	if cmd == nil || cmd.IsHidden() {
		return []types.OutputItem{
			types.Error(t.T("errors.unknown_command", map[string]string{"command": name})),
			types.Text(t.T("errors.unknown_command_hint")),
		}, nil
	}

	var md strings.Builder
	md.WriteString("## " + cmd.GetName() + "\n\n")
	md.WriteString(cmd.GetDescription() + "\n\n")
	md.WriteString("**" + t.T("help.usage") + ":** `" + cmd.GetUsage() + "`\n")
	if examples := cmd.GetExamples(); len(examples) > 0 {
		md.WriteString("\n")
		for _, example := range examples {
			md.WriteString("- `" + example + "`\n")
		}
	}

	return []types.OutputItem{types.Markup(md.String())}, nil
}
