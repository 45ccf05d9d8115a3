package component

import (
	"strings"
	"sync"
	"time"

	"github.com/awesome-gocui/gocui"

	"github.com/mintgate/mintterm/cmd/tui/helpers"
	"github.com/mintgate/mintterm/cmd/tui/presentation"
	"github.com/mintgate/mintterm/cmd/tui/types"
	"github.com/mintgate/mintterm/pkg/events"
	"github.com/mintgate/mintterm/pkg/history"
)

// InputComponent owns the command line: an internal edit buffer, the
// spliced-in cursor, history navigation and password mode. The view is a
// pure projection of the buffer, redrawn after every edit, so masked
// input never reaches the screen or the history file.
type InputComponent struct {
	*BaseComponent
	eventBus *events.EventBus
	history  history.CommandHistory
	buffer   *LineBuffer
	cursor   *Cursor

	mu           sync.Mutex
	prompt       string
	passwordMode bool
	stopBlink    chan struct{}
}

func NewInputComponent(gui types.Gui, configManager *helpers.ConfigManager, eventBus *events.EventBus, historyPath string) *InputComponent {
	config := configManager.GetConfig()

	c := &InputComponent{
		BaseComponent: NewBaseComponent("input", "input", gui, configManager),
		eventBus:      eventBus,
		history:       history.NewCommandHistory(historyPath, config.HistorySize, true),
		buffer:        NewLineBuffer(),
		cursor:        NewCursor(config.CursorStyle),
		prompt:        config.Prompt,
	}

	// Missing or unreadable history is not fatal on startup
	_ = c.history.Load()

	c.SetTitle("")
	c.SetWindowProperties(types.WindowProperties{
		Focusable:  true,
		Editable:   true,
		Wrap:       false,
		Autoscroll: false,
		Highlight:  false,
		Frame:      true,
	})

	eventBus.Subscribe("theme.changed", func(e interface{}) {
		c.gui.PostUIUpdate(func() {
			c.RefreshThemeColors()
			c.Render()
		})
	})

	eventBus.Subscribe("prompt.changed", func(e interface{}) {
		if prompt, ok := e.(string); ok {
			c.SetPrompt(prompt)
		}
	})

	eventBus.Subscribe("cursor.style.changed", func(e interface{}) {
		if style, ok := e.(types.CursorStyle); ok {
			c.cursor.SetStyle(style)
			c.gui.PostUIUpdate(func() { c.Render() })
		}
	})

	return c
}

func (c *InputComponent) GetKeybindings() []*types.KeyBinding {
	return []*types.KeyBinding{
		{View: c.viewName, Key: gocui.KeyEnter, Handler: c.handleSubmit},
		{View: c.viewName, Key: gocui.KeyArrowUp, Handler: c.navigateHistoryUp},
		{View: c.viewName, Key: gocui.KeyArrowDown, Handler: c.navigateHistoryDown},
		{View: c.viewName, Key: gocui.KeyCtrlC, Handler: c.handleInterrupt},
		{View: c.viewName, Key: gocui.KeyCtrlL, Handler: c.handleClearScreen},
	}
}

// Editor decodes editing keys into buffer operations. Submit, history and
// control keys are regular keybindings and never reach the editor.
func (c *InputComponent) Editor() gocui.Editor {
	return gocui.EditorFunc(func(v *gocui.View, key gocui.Key, ch rune, mod gocui.Modifier) {
		c.mu.Lock()
		switch {
		case key == gocui.KeySpace:
			c.buffer.Insert(' ')
		case key == gocui.KeyBackspace || key == gocui.KeyBackspace2:
			c.buffer.Backspace()
		case key == gocui.KeyDelete:
			c.buffer.Delete()
		case key == gocui.KeyArrowLeft:
			c.buffer.MoveLeft()
		case key == gocui.KeyArrowRight:
			c.buffer.MoveRight()
		case key == gocui.KeyHome || key == gocui.KeyCtrlA:
			c.buffer.MoveHome()
		case key == gocui.KeyEnd || key == gocui.KeyCtrlE:
			c.buffer.MoveEnd()
		case key == gocui.KeyCtrlU:
			c.buffer.Clear()
		case ch != 0:
			c.buffer.Insert(ch)
		default:
			c.mu.Unlock()
			return
		}
		c.mu.Unlock()

		c.syncCursor()
		c.Render()
	})
}

// SetPasswordMode switches the line into masked entry. History navigation
// is disabled while active and nothing typed is recorded.
func (c *InputComponent) SetPasswordMode(enabled bool) {
	c.mu.Lock()
	c.passwordMode = enabled
	c.buffer.Clear()
	c.mu.Unlock()

	c.history.ResetNavigation()
	c.syncCursor()
}

func (c *InputComponent) IsPasswordMode() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.passwordMode
}

func (c *InputComponent) SetPrompt(prompt string) {
	c.mu.Lock()
	c.prompt = prompt
	c.mu.Unlock()
	c.gui.PostUIUpdate(func() { c.Render() })
}

func (c *InputComponent) Cursor() *Cursor {
	return c.cursor
}

func (c *InputComponent) handleSubmit(g *gocui.Gui, v *gocui.View) error {
	c.mu.Lock()
	input := strings.TrimSpace(c.buffer.String())
	password := c.passwordMode
	c.buffer.Clear()
	c.mu.Unlock()

	c.syncCursor()
	c.Render()

	if input == "" {
		return nil
	}

	if !password {
		c.history.Add(input)
		c.history.ResetNavigation()
	}

	c.eventBus.Emit("user.input.submitted", input)
	return nil
}

func (c *InputComponent) navigateHistoryUp(g *gocui.Gui, v *gocui.View) error {
	if c.IsPasswordMode() {
		return nil
	}
	command, _ := c.history.Navigate(history.DirectionUp)
	if command != "" {
		c.setBuffer(command)
	}
	return nil
}

func (c *InputComponent) navigateHistoryDown(g *gocui.Gui, v *gocui.View) error {
	if c.IsPasswordMode() {
		return nil
	}
	command, _ := c.history.Navigate(history.DirectionDown)
	c.setBuffer(command)
	return nil
}

// handleInterrupt clears the line, or quits when it is already empty
func (c *InputComponent) handleInterrupt(g *gocui.Gui, v *gocui.View) error {
	c.mu.Lock()
	empty := c.buffer.Len() == 0
	c.buffer.Clear()
	c.mu.Unlock()

	if empty && !c.IsPasswordMode() {
		return gocui.ErrQuit
	}

	c.history.ResetNavigation()
	c.eventBus.Emit("user.input.cancel", "")
	c.syncCursor()
	c.Render()
	return nil
}

func (c *InputComponent) handleClearScreen(g *gocui.Gui, v *gocui.View) error {
	c.eventBus.Emit("terminal.clear", "")
	return nil
}

func (c *InputComponent) setBuffer(value string) {
	c.mu.Lock()
	c.buffer.Set(value)
	c.mu.Unlock()
	c.syncCursor()
	c.Render()
}

func (c *InputComponent) syncCursor() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.passwordMode {
		masked := c.buffer.Masked(c.GetConfig().MaskChar)
		c.cursor.SyncWithValue(masked, len([]rune(masked)))
		return
	}
	c.cursor.SyncWithValue(c.buffer.String(), c.buffer.Pos())
}

// Render projects prompt, buffer and cursor into the view
func (c *InputComponent) Render() error {
	view := c.GetView()
	if view == nil {
		return nil
	}

	c.mu.Lock()
	prompt := c.prompt
	c.mu.Unlock()

	theme := c.GetTheme()
	line := presentation.ConvertColorToAnsi(theme.Primary) + prompt + "\033[0m " +
		presentation.ConvertColorToAnsi(theme.TextEcho) + c.cursor.Frame() + "\033[0m"

	c.gui.PostUIUpdate(func() {
		view.Clear()
		view.SetCursor(0, 0)
		view.Write([]byte(line))
	})
	return nil
}

// StartCursorBlink drives the caret until StopCursorBlink or app exit
func (c *InputComponent) StartCursorBlink() {
	c.mu.Lock()
	if c.stopBlink != nil {
		c.mu.Unlock()
		return
	}
	stop := make(chan struct{})
	c.stopBlink = stop
	c.mu.Unlock()

	go func() {
		ticker := time.NewTicker(DefaultBlinkInterval)
		defer ticker.Stop()
		for {
			select {
			case <-stop:
				return
			case <-ticker.C:
				if c.GetConfig().IsShowCursorEnabled() {
					c.cursor.Blink()
					c.Render()
				}
			}
		}
	}()
}

func (c *InputComponent) StopCursorBlink() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.stopBlink != nil {
		close(c.stopBlink)
		c.stopBlink = nil
	}
}

// History exposes the backing history for the controller's echo handling
func (c *InputComponent) History() history.CommandHistory {
	return c.history
}
