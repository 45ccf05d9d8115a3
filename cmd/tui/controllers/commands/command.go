package commands

import (
	"context"

	"github.com/mintgate/mintterm/cmd/tui/types"
	"github.com/mintgate/mintterm/pkg/events"
	"github.com/mintgate/mintterm/pkg/i18n"
	"github.com/mintgate/mintterm/pkg/wallet"
)

// EmitFunc streams output to the terminal while a command is still
// running. Anything returned from Execute is rendered after it.
type EmitFunc func(items ...types.OutputItem)

// Command represents a terminal command
type Command interface {
	// Metadata
	GetName() string
	GetDescription() string
	GetUsage() string
	GetExamples() []string
	GetAliases() []string
	GetCategory() string
	IsHidden() bool

	// Execution
	Execute(ctx context.Context, args []string, emit EmitFunc) ([]types.OutputItem, error)
}

// BaseCommand provides common functionality for all commands
type BaseCommand struct {
	Name        string
	Description string
	Usage       string
	Examples    []string
	Aliases     []string
	Category    string
	Hidden      bool
}

func (c *BaseCommand) GetName() string        { return c.Name }
func (c *BaseCommand) GetDescription() string { return c.Description }
func (c *BaseCommand) GetUsage() string       { return c.Usage }
func (c *BaseCommand) GetExamples() []string  { return c.Examples }
func (c *BaseCommand) GetAliases() []string   { return c.Aliases }
func (c *BaseCommand) GetCategory() string    { return c.Category }
func (c *BaseCommand) IsHidden() bool         { return c.Hidden }

// Command categories, in the order help prints them
const (
	CategoryCore  = "core"
	CategoryInfo  = "info"
	CategoryWeb3  = "web3"
	CategoryTools = "tools"
	CategoryOther = "other"
)

// CategoryOrder fixes the help grouping order
var CategoryOrder = []string{CategoryCore, CategoryInfo, CategoryWeb3, CategoryTools, CategoryOther}

// CommandContext provides access to app components for commands
type CommandContext struct {
	GuiCommon    types.Gui
	Notification types.Notification
	EventBus     *events.EventBus
	Translator   i18n.Translator
	Wallet       wallet.Wallet
	Config       ConfigHelper
	Clipboard    ClipboardHelper
	Exit         func() error
}

// Helper interfaces to avoid circular dependencies
type ConfigHelper interface {
	GetConfig() *types.Config
	UpdateConfig(fn func(*types.Config), save bool) error
}

type ClipboardHelper interface {
	Copy(text string) error
}
