package tui

import (
	"io"
	"log"
	"path/filepath"

	"github.com/awesome-gocui/gocui"
	"github.com/mitchellh/go-homedir"

	"github.com/mintgate/mintterm/cmd/tui/component"
	"github.com/mintgate/mintterm/cmd/tui/controllers"
	"github.com/mintgate/mintterm/cmd/tui/controllers/commands"
	"github.com/mintgate/mintterm/cmd/tui/helpers"
	"github.com/mintgate/mintterm/cmd/tui/presentation"
	"github.com/mintgate/mintterm/cmd/tui/state"
	"github.com/mintgate/mintterm/cmd/tui/types"
	"github.com/mintgate/mintterm/pkg/events"
	"github.com/mintgate/mintterm/pkg/i18n"
	"github.com/mintgate/mintterm/pkg/logging"
	"github.com/mintgate/mintterm/pkg/wallet"
)

const inputHeight = 3

// Options configures a terminal app instance
type Options struct {
	Wallet     wallet.Wallet
	AccessCode string
	OutputMode *gocui.OutputMode
}

type App struct {
	gui           *gocui.Gui
	configManager *helpers.ConfigManager
	eventBus      *events.EventBus
	translator    i18n.Translator
	wallet        wallet.Wallet

	terminalState *state.TerminalState
	outputState   *state.OutputState

	outputComponent *component.OutputComponent
	inputComponent  *component.InputComponent

	registry   *controllers.CommandRegistry
	controller *controllers.TerminalController

	keybindingsSetup bool
}

func NewApp(opts Options) (*App, error) {
	// The TUI owns the screen; anything written to standard logging would
	// tear the frame apart
	log.SetOutput(io.Discard)
	logging.SetGlobalLogger(logging.NewFileLoggerFromEnv("mintterm-debug.log"))

	configManager, err := helpers.NewConfigManager()
	if err != nil {
		return nil, err
	}
	config := configManager.GetConfig()

	translator, err := i18n.NewTranslator(config.Language)
	if err != nil {
		return nil, err
	}

	var outputMode gocui.OutputMode
	if opts.OutputMode != nil {
		outputMode = *opts.OutputMode
	} else {
		outputMode = configManager.GetGocuiOutputMode(config.OutputMode)
	}
	g, err := gocui.NewGui(outputMode, true)
	if err != nil {
		return nil, err
	}

	app := &App{
		gui:           g,
		configManager: configManager,
		eventBus:      events.NewEventBus(),
		translator:    translator,
		wallet:        opts.Wallet,
		terminalState: state.NewTerminalState(config.Prompt),
		outputState:   state.NewOutputState(500),
	}

	guiCommon := &guiCommon{app: app}

	home, err := homedir.Dir()
	if err != nil {
		g.Close()
		return nil, err
	}
	historyPath := filepath.Join(home, ".mintterm", "history")

	app.outputComponent = component.NewOutputComponent(guiCommon, configManager, app.eventBus, app.outputState)
	app.inputComponent = component.NewInputComponent(guiCommon, configManager, app.eventBus, historyPath)

	app.eventBus.Subscribe("terminal.clear", func(interface{}) {
		app.outputComponent.ClearOutput()
	})

	ctx := &commands.CommandContext{
		GuiCommon:    guiCommon,
		Notification: app.outputComponent,
		EventBus:     app.eventBus,
		Translator:   translator,
		Wallet:       opts.Wallet,
		Config:       configManager,
		Clipboard:    helpers.NewSystemClipboard(),
		Exit:         app.exit,
	}

	app.registry = controllers.NewCommandRegistry()
	app.registry.Register(commands.NewHelpCommand(ctx, app.registry))
	app.registry.Register(commands.NewClearCommand(ctx))
	app.registry.Register(commands.NewAboutCommand(ctx))
	app.registry.Register(commands.NewBannerCommand(ctx))
	app.registry.Register(commands.NewConnectCommand(ctx))
	app.registry.Register(commands.NewMintCommand(ctx))
	app.registry.Register(commands.NewListCommand(ctx))
	app.registry.Register(commands.NewStatusCommand(ctx))
	app.registry.Register(commands.NewVerifyCommand(ctx))
	app.registry.Register(commands.NewThemeCommand(ctx))
	app.registry.Register(commands.NewLangCommand(ctx))
	app.registry.Register(commands.NewCursorCommand(ctx))
	app.registry.Register(commands.NewCopyCommand(ctx, app.lastOutput))
	app.registry.Register(commands.NewExitCommand(ctx))

	app.controller = controllers.NewTerminalController(
		app.eventBus,
		app.outputComponent,
		app.registry,
		app.terminalState,
		translator,
		controllers.NewAuthenticator(opts.AccessCode),
		app.inputComponent,
		configManager,
	)

	g.Cursor = false
	theme := presentation.GetTheme(config.Theme)
	g.FrameColor = presentation.ConvertColorToGocuiColor(theme.BorderDefault)
	g.SelFrameColor = presentation.ConvertColorToGocuiColor(theme.BorderFocused)
	g.Mouse = config.IsMouseEnabled()

	g.SetManagerFunc(func(gui *gocui.Gui) error {
		if err := app.layout(gui); err != nil {
			return err
		}
		if !app.keybindingsSetup {
			if err := app.setupKeybindings(); err != nil {
				return err
			}
			app.keybindingsSetup = true
		}
		return nil
	})

	return app, nil
}

// Run shows the greeting and enters the main loop
func (app *App) Run() error {
	app.showGreeting()
	app.controller.Start()
	app.inputComponent.StartCursorBlink()

	if err := app.gui.MainLoop(); err != nil && err != gocui.ErrQuit {
		return err
	}
	return nil
}

func (app *App) Stop() {
	app.inputComponent.StopCursorBlink()
	app.outputComponent.Close()
	app.gui.Close()
}

// layout places the transcript on top and the command line underneath
func (app *App) layout(g *gocui.Gui) error {
	maxX, maxY := g.Size()

	outputView, err := g.SetView("output", 0, 0, maxX-1, maxY-inputHeight-1, 0)
	if err != nil {
		if err != gocui.ErrUnknownView {
			return err
		}
		props := app.outputComponent.GetWindowProperties()
		outputView.Wrap = props.Wrap
		outputView.Autoscroll = props.Autoscroll
		outputView.Frame = props.Frame
		app.outputComponent.SetView(outputView)
		app.outputComponent.Render()
	}

	inputView, err := g.SetView("input", 0, maxY-inputHeight, maxX-1, maxY-1, 0)
	if err != nil {
		if err != gocui.ErrUnknownView {
			return err
		}
		inputView.Editable = true
		inputView.Editor = app.inputComponent.Editor()
		inputView.Frame = true
		app.inputComponent.SetView(inputView)
		app.inputComponent.Render()

		if _, err := g.SetCurrentView("input"); err != nil {
			return err
		}
	}

	return nil
}

func (app *App) setupKeybindings() error {
	for _, kb := range app.inputComponent.GetKeybindings() {
		if err := app.gui.SetKeybinding(kb.View, kb.Key, kb.Mod, kb.Handler); err != nil {
			return err
		}
	}
	return nil
}

// showGreeting plays the scramble reveal and pins the banner above the
// scrollback
func (app *App) showGreeting() {
	app.outputComponent.AddOutput(
		types.OutputItem{Kind: types.KindGreeting, Content: commands.BannerArt},
		types.Text(app.translator.T("terminal.greeting")),
		types.OutputItem{Kind: types.KindMenu, Content: app.translator.T("terminal.subtitle")},
	)
}

// lastOutput finds the newest copyable line for the copy command
func (app *App) lastOutput() string {
	items := app.outputState.GetItems()
	for i := len(items) - 1; i >= 0; i-- {
		switch items[i].Kind {
		case types.KindEcho, types.KindGreeting, types.KindBanner, types.KindPrompt:
			continue
		}
		return items[i].Content
	}
	return ""
}

func (app *App) exit() error {
	app.gui.Update(func(*gocui.Gui) error {
		return gocui.ErrQuit
	})
	return nil
}
