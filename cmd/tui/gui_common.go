package tui

import (
	"github.com/awesome-gocui/gocui"

	"github.com/mintgate/mintterm/cmd/tui/presentation"
	"github.com/mintgate/mintterm/cmd/tui/types"
)

type guiCommon struct {
	app *App
}

func (g *guiCommon) GetGui() *gocui.Gui {
	return g.app.gui
}

func (g *guiCommon) GetConfig() *types.Config {
	return g.app.configManager.GetConfig()
}

func (g *guiCommon) GetTheme() *types.Theme {
	return presentation.GetTheme(g.app.configManager.GetConfig().Theme)
}

func (g *guiCommon) PostUIUpdate(fn func()) {
	g.app.gui.Update(func(*gocui.Gui) error {
		fn()
		return nil
	})
}
