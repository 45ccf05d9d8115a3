package component

import (
	"sync"

	"github.com/awesome-gocui/gocui"

	"github.com/mintgate/mintterm/cmd/tui/helpers"
	"github.com/mintgate/mintterm/cmd/tui/presentation"
	"github.com/mintgate/mintterm/cmd/tui/types"
)

type BaseComponent struct {
	key           string
	viewName      string
	view          *gocui.View
	gui           types.Gui
	configManager *helpers.ConfigManager

	onFocus     func() error
	onFocusLost func() error

	title            string
	windowProperties types.WindowProperties

	mu sync.RWMutex
}

func NewBaseComponent(key, viewName string, gui types.Gui, configManager *helpers.ConfigManager) *BaseComponent {
	return &BaseComponent{
		key:           key,
		viewName:      viewName,
		configManager: configManager,
		gui:           gui,
		windowProperties: types.WindowProperties{
			Focusable:  true,
			Editable:   false,
			Wrap:       true,
			Autoscroll: false,
			Highlight:  true,
			Frame:      true,
		},
	}
}

func (c *BaseComponent) GetKey() string {
	return c.key
}

func (c *BaseComponent) GetViewName() string {
	return c.viewName
}

func (c *BaseComponent) GetView() *gocui.View {
	if c.view == nil && c.gui != nil && c.gui.GetGui() != nil {
		c.view, _ = c.gui.GetGui().View(c.viewName)
	}
	return c.view
}

func (c *BaseComponent) SetView(v *gocui.View) {
	c.view = v
}

func (c *BaseComponent) GetConfig() *types.Config {
	return c.configManager.GetConfig()
}

func (c *BaseComponent) GetTheme() *types.Theme {
	return presentation.GetTheme(c.configManager.GetConfig().Theme)
}

func (c *BaseComponent) HandleFocus() error {
	c.applyThemeBorderColors(true)

	if c.onFocus != nil {
		return c.onFocus()
	}
	return nil
}

func (c *BaseComponent) HandleFocusLost() error {
	c.applyThemeBorderColors(false)

	if c.onFocusLost != nil {
		return c.onFocusLost()
	}
	return nil
}

func (c *BaseComponent) GetKeybindings() []*types.KeyBinding {
	return []*types.KeyBinding{}
}

func (c *BaseComponent) Render() error {
	c.applyThemeBorderColors(false)
	return nil
}

func (c *BaseComponent) SetOnFocus(fn func() error) {
	c.onFocus = fn
}

func (c *BaseComponent) SetOnFocusLost(fn func() error) {
	c.onFocusLost = fn
}

func (c *BaseComponent) GetWindowProperties() types.WindowProperties {
	return c.windowProperties
}

func (c *BaseComponent) SetWindowProperties(props types.WindowProperties) {
	c.windowProperties = props
}

func (c *BaseComponent) GetTitle() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.title
}

func (c *BaseComponent) SetTitle(title string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.title = title
}

// applyThemeBorderColors overrides the global frame colors for this view
func (c *BaseComponent) applyThemeBorderColors(focused bool) {
	view := c.GetView()
	if view == nil || !c.windowProperties.Frame {
		return
	}

	theme := c.GetTheme()

	borderHexColor := theme.BorderDefault
	if focused {
		borderHexColor = theme.BorderFocused
	}

	view.FrameColor = presentation.ConvertColorToGocuiColor(borderHexColor)
	view.TitleColor = view.FrameColor
}

// RefreshThemeColors updates border colors based on current theme
func (c *BaseComponent) RefreshThemeColors() {
	c.applyThemeBorderColors(false)
}
