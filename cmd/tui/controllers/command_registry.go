package controllers

import (
	"sort"
	"strings"

	"github.com/mintgate/mintterm/cmd/tui/controllers/commands"
)

// CommandRegistry manages command registration and metadata. Names and
// aliases are normalized to lowercase; registering a name twice silently
// replaces the earlier command.
type CommandRegistry struct {
	commands       map[string]commands.Command // Primary name -> Command
	aliasToCommand map[string]commands.Command // Alias -> Command
}

func NewCommandRegistry() *CommandRegistry {
	return &CommandRegistry{
		commands:       make(map[string]commands.Command),
		aliasToCommand: make(map[string]commands.Command),
	}
}

func normalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// Register adds a command under its name and aliases
func (r *CommandRegistry) Register(cmd commands.Command) {
	name := normalizeName(cmd.GetName())
	if name == "" {
		return
	}

	r.commands[name] = cmd
	for _, alias := range cmd.GetAliases() {
		if alias = normalizeName(alias); alias != "" {
			r.aliasToCommand[alias] = cmd
		}
	}
}

// Unregister removes a command and its aliases
func (r *CommandRegistry) Unregister(name string) {
	name = normalizeName(name)
	cmd, ok := r.commands[name]
	if !ok {
		return
	}
	delete(r.commands, name)
	for _, alias := range cmd.GetAliases() {
		if r.aliasToCommand[normalizeName(alias)] == cmd {
			delete(r.aliasToCommand, normalizeName(alias))
		}
	}
}

// GetCommand returns a command by name or alias, nil when unknown
func (r *CommandRegistry) GetCommand(name string) commands.Command {
	name = normalizeName(name)

	if cmd, ok := r.commands[name]; ok {
		return cmd
	}
	if cmd, ok := r.aliasToCommand[name]; ok {
		return cmd
	}
	return nil
}

// GetAllCommands returns all registered commands (excluding hidden),
// sorted by name
func (r *CommandRegistry) GetAllCommands() []commands.Command {
	var result []commands.Command
	for _, cmd := range r.commands {
		if !cmd.IsHidden() {
			result = append(result, cmd)
		}
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].GetName() < result[j].GetName()
	})
	return result
}

// GetCommandsByCategory returns visible commands grouped by category,
// sorted by name within each group
func (r *CommandRegistry) GetCommandsByCategory() map[string][]commands.Command {
	result := make(map[string][]commands.Command)

	for _, cmd := range r.commands {
		if cmd.IsHidden() {
			continue
		}
		category := cmd.GetCategory()
		if category == "" {
			category = commands.CategoryOther
		}
		result[category] = append(result[category], cmd)
	}

	for _, group := range result {
		sort.Slice(group, func(i, j int) bool {
			return group[i].GetName() < group[j].GetName()
		})
	}
	return result
}

// GetCommandNames returns all visible command names and aliases, sorted
func (r *CommandRegistry) GetCommandNames() []string {
	var names []string
	for name, cmd := range r.commands {
		if !cmd.IsHidden() {
			names = append(names, name)
		}
	}
	for alias, cmd := range r.aliasToCommand {
		if !cmd.IsHidden() {
			names = append(names, alias)
		}
	}
	sort.Strings(names)
	return names
}
